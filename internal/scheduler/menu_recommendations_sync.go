package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/internal/config"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
	"github.com/vfg2006/cafe-analytics-api/internal/usecases/recommending"
	"github.com/vfg2006/cafe-analytics-api/pkg/utils"
)

type MenuRecommendationsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type MenuRecommendationsSyncService struct {
	scheduler           *gocron.Scheduler
	recommender         recommending.Recommender
	config              MenuRecommendationsSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.SyncReport
}

func NewMenuRecommendationsSyncService(
	recommender recommending.Recommender,
	cfg *config.Config,
) *MenuRecommendationsSyncService {
	syncConfig := MenuRecommendationsSyncConfig{
		CronSchedule: cfg.MenuRecommendationSync.CronSchedule, // Default: 2h30 da manhã todos os dias
		SyncEnabled:  cfg.MenuRecommendationSync.SyncEnabled,  // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de recomendações de cardápio carregada")

	return &MenuRecommendationsSyncService{
		scheduler:   scheduler,
		recommender: recommender,
		config:      syncConfig,
	}
}

func (s *MenuRecommendationsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recomendações de cardápio desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recomendações de cardápio")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRecommendationsSync(); err != nil {
			logrus.WithError(err).Error("Erro na execução das recomendações de cardápio")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recomendações de cardápio: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recomendações de cardápio")
		s.scheduler.Stop()
	}()

	return nil
}

// RunRecommendationsSync executa uma rodada completa do pipeline de
// recomendações. Execuções concorrentes são descartadas.
func (s *MenuRecommendationsSyncService) RunRecommendationsSync() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Recomendações de cardápio já estão em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	runID, _ := utils.GenerateID()
	logrus.WithField("run_id", runID).Info("Iniciando recomendações de cardápio")

	report, err := s.recommender.RunRecommendations()
	if err != nil {
		logrus.WithError(err).WithField("run_id", runID).Error("Recomendações de cardápio abortadas")
		return err
	}

	s.lastReport = report

	logrus.WithField("run_id", runID).
		WithFields(logrus.Fields(report.Summary())).
		Info("Recomendações de cardápio concluídas")

	return nil
}

// TriggerManualSync inicia manualmente uma execução das recomendações
func (s *MenuRecommendationsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomendações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual das recomendações de cardápio")
	go func() {
		if err := s.RunRecommendationsSync(); err != nil {
			logrus.WithError(err).Error("Erro na execução manual das recomendações de cardápio")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *MenuRecommendationsSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_report"] = s.lastReport.Summary()
	}

	return status
}
