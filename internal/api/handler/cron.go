package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/internal/scheduler"
	"github.com/vfg2006/cafe-analytics-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRfm             = "rfm"
	CronJobTypeRecommendations = "recommendations"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RfmSegmentationSyncService     *scheduler.RfmSegmentationSyncService
	MenuRecommendationsSyncService *scheduler.MenuRecommendationsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRfm:
			if services.RfmSegmentationSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de segmentação RFM não disponível", nil)
				return
			}
			services.RfmSegmentationSyncService.TriggerManualSync()

		case CronJobTypeRecommendations:
			if services.MenuRecommendationsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de recomendações não disponível", nil)
				return
			}
			services.MenuRecommendationsSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.RfmSegmentationSyncService != nil {
				services.RfmSegmentationSyncService.TriggerManualSync()
			}
			if services.MenuRecommendationsSyncService != nil {
				services.MenuRecommendationsSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: rfm, recommendations, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"rfm":             services.RfmSegmentationSyncService.GetStatus(),
			"recommendations": services.MenuRecommendationsSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
