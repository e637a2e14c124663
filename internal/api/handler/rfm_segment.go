package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
	"github.com/vfg2006/cafe-analytics-api/pkg/apiErrors"
)

// ListRfmSegments retorna os segmentos RFM, geração mais recente primeiro
func ListRfmSegments(repo repository.RfmSegmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segments, err := repo.List()
		if err != nil {
			logrus.Error("Erro ao buscar segmentos RFM:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar segmentos RFM", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(segments); err != nil {
			logrus.Error("Erro ao enviar resposta de segmentos RFM:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateRfmSegment insere um registro de segmento RFM via API
func CreateRfmSegment(repo repository.RfmSegmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var segment *domain.RfmSegment

		if err := json.NewDecoder(r.Body).Decode(&segment); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Validar campos obrigatórios
		if segment.MobileID == "" || segment.RFMScore == "" || segment.Segment == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "mobile_id, rfm_score e segment são obrigatórios", nil)
			return
		}

		if err := repo.Create(segment); err != nil {
			logrus.Error("Erro ao criar segmento RFM:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar segmento RFM", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(segment); err != nil {
			logrus.Error("Erro ao enviar resposta do segmento criado:", err)
		}
	}
}
