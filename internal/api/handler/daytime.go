package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/pkg/apiErrors"
)

// ListDaytimes retorna as faixas de horário configuradas (dim_menu_daytimes)
func ListDaytimes(repo repository.DaytimeRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		daytimes, err := repo.ListDaytimes()
		if err != nil {
			logrus.Error("Erro ao buscar faixas de horário:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar faixas de horário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(daytimes); err != nil {
			logrus.Error("Erro ao enviar resposta de faixas de horário:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
