package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
	"github.com/vfg2006/cafe-analytics-api/pkg/apiErrors"
)

// ListRecommendations retorna as recomendações de cardápio por faixa de horário
func ListRecommendations(repo repository.RecommendationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recommendations, err := repo.List()
		if err != nil {
			logrus.Error("Erro ao buscar recomendações:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar recomendações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(recommendations); err != nil {
			logrus.Error("Erro ao enviar resposta de recomendações:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateRecommendation insere uma recomendação via API
func CreateRecommendation(repo repository.RecommendationRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var recommendation *domain.Recommendation

		if err := json.NewDecoder(r.Body).Decode(&recommendation); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Validar campos obrigatórios
		if recommendation.DaytimeID == 0 || recommendation.ItemID == 0 || recommendation.Rank == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "daytime_id, menu_item_id e rank são obrigatórios", nil)
			return
		}

		if err := repo.Create(recommendation); err != nil {
			logrus.Error("Erro ao criar recomendação:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar recomendação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(recommendation); err != nil {
			logrus.Error("Erro ao enviar resposta da recomendação criada:", err)
		}
	}
}
