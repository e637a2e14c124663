package segmenting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/internal/config"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

// Segmenter executa o pipeline completo de segmentação RFM
type Segmenter interface {
	RunSegmentation() (*domain.SyncReport, error)
}

type Service struct {
	transactionRepo repository.TransactionRepository
	segmentRepo     repository.RfmSegmentRepository
	minPopulation   int
	now             func() time.Time
}

func NewService(
	transactionRepo repository.TransactionRepository,
	segmentRepo repository.RfmSegmentRepository,
	cfg *config.Config,
) *Service {
	minPopulation := cfg.RfmSegmentationSync.MinPopulation
	if minPopulation < MinPopulation {
		minPopulation = MinPopulation
	}

	return &Service{
		transactionRepo: transactionRepo,
		segmentRepo:     segmentRepo,
		minPopulation:   minPopulation,
		now:             time.Now,
	}
}

// RunSegmentation busca o snapshot de transações, computa a geração nova de
// segmentos RFM e envia um registro por cliente. Falhas de pré-condição e
// entrada malformada abortam antes de qualquer escrita; rejeições individuais
// do destino são acumuladas no relatório sem abortar a execução.
func (s *Service) RunSegmentation() (*domain.SyncReport, error) {
	report := &domain.SyncReport{StartedAt: s.now().UTC()}

	transactions, err := s.transactionRepo.ListTransactions()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar transações")
	}
	report.InputRows = len(transactions)

	features, err := ExtractFeatures(transactions, report.StartedAt)
	if err != nil {
		return nil, err
	}

	if len(features) < s.minPopulation {
		return nil, fmt.Errorf("%d clientes distintos, mínimo configurado %d: %w",
			len(features), s.minPopulation, ErrInsufficientPopulation)
	}

	// Carimbo único para o lote inteiro
	segments, err := ScoreSegments(features, report.StartedAt)
	if err != nil {
		return nil, err
	}
	report.OutputRows = len(segments)

	for _, segment := range segments {
		if err := s.segmentRepo.Create(segment); err != nil {
			logrus.WithError(err).WithField("mobile_id", segment.MobileID).
				Warn("Segmento RFM rejeitado pelo destino")
			report.Failures = append(report.Failures, domain.PushFailure{
				Key:    segment.MobileID,
				Reason: err.Error(),
			})
			continue
		}
		report.Pushed++
	}

	report.FinishedAt = s.now().UTC()

	logrus.WithFields(logrus.Fields(report.Summary())).Info("Segmentação RFM concluída")

	return report, nil
}
