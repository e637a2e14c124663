package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/pkg/apiErrors"
)

// ListMenuItems retorna o cardápio (dim_menu_items)
func ListMenuItems(repo repository.MenuItemRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := repo.ListMenuItems()
		if err != nil {
			logrus.Error("Erro ao buscar itens do cardápio:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar itens do cardápio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logrus.Error("Erro ao enviar resposta do cardápio:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetDashboardOverview retorna os agregados da visão geral do dashboard
func GetDashboardOverview(repo repository.MenuItemRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := repo.GetDashboardOverview()
		if err != nil {
			logrus.Error("Erro ao buscar visão geral do dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar visão geral", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logrus.Error("Erro ao enviar resposta da visão geral:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
