// Package scheduler contém os serviços de agendamento dos pipelines em lote
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
	"github.com/vfg2006/cafe-analytics-api/internal/usecases/segmenting"
	"github.com/vfg2006/cafe-analytics-api/pkg/utils"
)

type RfmSegmentationSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type RfmSegmentationSyncService struct {
	scheduler           *gocron.Scheduler
	segmenter           segmenting.Segmenter
	config              RfmSegmentationSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.SyncReport
}

func NewRfmSegmentationSyncService(
	segmenter segmenting.Segmenter,
	cfg *config.Config,
) *RfmSegmentationSyncService {
	syncConfig := RfmSegmentationSyncConfig{
		CronSchedule: cfg.RfmSegmentationSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.RfmSegmentationSync.SyncEnabled,  // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de segmentação RFM carregada")

	return &RfmSegmentationSyncService{
		scheduler: scheduler,
		segmenter: segmenter,
		config:    syncConfig,
	}
}

func (s *RfmSegmentationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de segmentação RFM desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de segmentação RFM")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSegmentationSync(); err != nil {
			logrus.WithError(err).Error("Erro na execução da segmentação RFM")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar segmentação RFM: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de segmentação RFM")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSegmentationSync executa uma rodada completa do pipeline de RFM.
// Execuções concorrentes são descartadas, o pipeline roda sozinho.
func (s *RfmSegmentationSyncService) RunSegmentationSync() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Segmentação RFM já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	runID, _ := utils.GenerateID()
	logrus.WithField("run_id", runID).Info("Iniciando segmentação RFM")

	report, err := s.segmenter.RunSegmentation()
	if err != nil {
		logrus.WithError(err).WithField("run_id", runID).Error("Segmentação RFM abortada")
		return err
	}

	s.lastReport = report

	logrus.WithField("run_id", runID).
		WithFields(logrus.Fields(report.Summary())).
		Info("Segmentação RFM concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma execução da segmentação RFM
func (s *RfmSegmentationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Segmentação RFM já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual da segmentação RFM")
	go func() {
		if err := s.RunSegmentationSync(); err != nil {
			logrus.WithError(err).Error("Erro na execução manual da segmentação RFM")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *RfmSegmentationSyncService) GetStatus() map[string]any {
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
