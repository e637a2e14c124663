package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

type stubRecommender struct {
	calls  int32
	report *domain.SyncReport
	err    error
}

func (s *stubRecommender) RunRecommendations() (*domain.SyncReport, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.report, s.err
}

func TestMenuRecommendationsSyncService_RunRecommendationsSync(t *testing.T) {
	t.Run("Execução bem sucedida guarda o último relatório", func(t *testing.T) {
		report := &domain.SyncReport{
			InputRows:  40,
			OutputRows: 10,
			Pushed:     10,
			Unassigned: 3,
			StartedAt:  time.Date(2024, 6, 15, 2, 30, 0, 0, time.UTC),
			FinishedAt: time.Date(2024, 6, 15, 2, 30, 2, 0, time.UTC),
		}
		recommender := &stubRecommender{report: report}

		service := &MenuRecommendationsSyncService{
			recommender: recommender,
			config:      MenuRecommendationsSyncConfig{CronSchedule: "30 2 * * *", SyncEnabled: true},
		}

		err := service.RunRecommendationsSync()
		assert.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&recommender.calls))
		assert.Equal(t, report, service.lastReport)
	})

	t.Run("Erro do pipeline é propagado", func(t *testing.T) {
		recommender := &stubRecommender{err: errors.New("nenhuma faixa de horário configurada")}

		service := &MenuRecommendationsSyncService{
			recommender: recommender,
			config:      MenuRecommendationsSyncConfig{CronSchedule: "30 2 * * *", SyncEnabled: true},
		}

		err := service.RunRecommendationsSync()
		assert.Error(t, err)
		assert.Nil(t, service.lastReport)
	})

	t.Run("Execução concorrente é descartada", func(t *testing.T) {
		recommender := &stubRecommender{report: &domain.SyncReport{}}

		service := &MenuRecommendationsSyncService{
			recommender: recommender,
			config:      MenuRecommendationsSyncConfig{CronSchedule: "30 2 * * *", SyncEnabled: true},
		}

		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		service.TriggerManualSync()
		time.Sleep(50 * time.Millisecond)

		assert.Equal(t, int32(0), atomic.LoadInt32(&recommender.calls))
	})
}

func TestMenuRecommendationsSyncService_GetStatus(t *testing.T) {
	service := &MenuRecommendationsSyncService{
		config: MenuRecommendationsSyncConfig{CronSchedule: "30 2 * * *", SyncEnabled: false},
	}

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "30 2 * * *", status["sync_cron"])
	assert.NotContains(t, status, "last_report")
}
