package recommending

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/internal/config"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

// Recommender executa o pipeline completo de recomendações de cardápio
type Recommender interface {
	RunRecommendations() (*domain.SyncReport, error)
}

type Service struct {
	transactionRepo    repository.TransactionRepository
	daytimeRepo        repository.DaytimeRepository
	recommendationRepo repository.RecommendationRepository
	topN               int
	now                func() time.Time
}

func NewService(
	transactionRepo repository.TransactionRepository,
	daytimeRepo repository.DaytimeRepository,
	recommendationRepo repository.RecommendationRepository,
	cfg *config.Config,
) *Service {
	topN := cfg.MenuRecommendationSync.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &Service{
		transactionRepo:    transactionRepo,
		daytimeRepo:        daytimeRepo,
		recommendationRepo: recommendationRepo,
		topN:               topN,
		now:                time.Now,
	}
}

// RunRecommendations busca os snapshots de transações, itens e faixas de
// horário, computa o top-N por faixa e envia um registro por posição do
// ranking. Rejeições individuais do destino não abortam a execução.
func (s *Service) RunRecommendations() (*domain.SyncReport, error) {
	report := &domain.SyncReport{StartedAt: s.now().UTC()}

	daytimes, err := s.daytimeRepo.ListDaytimes()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar faixas de horário")
	}

	windows, err := NewDaytimeWindows(daytimes)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListTransactions()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar transações")
	}

	items, err := s.transactionRepo.ListTransactionItems()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar itens de transação")
	}
	report.InputRows = len(items)

	result, err := RankTopItems(transactions, items, windows, s.topN)
	if err != nil {
		return nil, err
	}
	report.OutputRows = len(result.Recommendations)
	report.Unassigned = result.Unassigned

	if result.Orphaned > 0 {
		logrus.WithField("orphaned_items", result.Orphaned).
			Warn("Itens de venda sem transação correspondente no snapshot")
	}

	for _, recommendation := range result.Recommendations {
		if err := s.recommendationRepo.Create(recommendation); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"daytime_id": recommendation.DaytimeID,
				"item_id":    recommendation.ItemID,
			}).Warn("Recomendação rejeitada pelo destino")
			report.Failures = append(report.Failures, domain.PushFailure{
				Key:    fmt.Sprintf("daytime:%d item:%d", recommendation.DaytimeID, recommendation.ItemID),
				Reason: err.Error(),
			})
			continue
		}
		report.Pushed++
	}

	report.FinishedAt = s.now().UTC()

	logrus.WithFields(logrus.Fields(report.Summary())).Info("Recomendações de cardápio concluídas")

	return report, nil
}
