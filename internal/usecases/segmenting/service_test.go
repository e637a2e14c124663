package segmenting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC)
}

func buildTransactions(count int) []*domain.Transaction {
	transactions := make([]*domain.Transaction, 0, count)
	for i := 1; i <= count; i++ {
		transactions = append(transactions, &domain.Transaction{
			TransactionID: i,
			MobileID:      string(rune('a' + i - 1)),
			TotalAmount:   float64(i) * 10,
			CreatedAt:     time.Date(2024, 6, i, 10, 0, 0, 0, time.UTC),
		})
	}
	return transactions
}

func TestService_RunSegmentation(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(txRepo *mocks.MockTransactionRepository, segRepo *mocks.MockRfmSegmentRepository)
		validate func(t *testing.T, report *domain.SyncReport, err error)
	}{
		{
			name: "Execução completa envia um segmento por cliente",
			setup: func(txRepo *mocks.MockTransactionRepository, segRepo *mocks.MockRfmSegmentRepository) {
				txRepo.EXPECT().ListTransactions().Return(buildTransactions(6), nil)
				segRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(6)
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 6, report.InputRows)
				assert.Equal(t, 6, report.OutputRows)
				assert.Equal(t, 6, report.Pushed)
				assert.Empty(t, report.Failures)
			},
		},
		{
			name: "Rejeição individual do destino não aborta a execução",
			setup: func(txRepo *mocks.MockTransactionRepository, segRepo *mocks.MockRfmSegmentRepository) {
				txRepo.EXPECT().ListTransactions().Return(buildTransactions(5), nil)

				calls := 0
				segRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(*domain.RfmSegment) error {
					calls++
					if calls == 2 {
						return errors.New("violação de constraint")
					}
					return nil
				}).Times(5)
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 5, report.OutputRows)
				assert.Equal(t, 4, report.Pushed)
				assert.Len(t, report.Failures, 1)
				assert.Contains(t, report.Failures[0].Reason, "violação de constraint")
			},
		},
		{
			name: "População insuficiente aborta antes de qualquer escrita",
			setup: func(txRepo *mocks.MockTransactionRepository, segRepo *mocks.MockRfmSegmentRepository) {
				txRepo.EXPECT().ListTransactions().Return(buildTransactions(4), nil)
				// Nenhuma chamada a Create é esperada
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.ErrorIs(t, err, ErrInsufficientPopulation)
				assert.Nil(t, report)
			},
		},
		{
			name: "Transação malformada aborta antes de qualquer escrita",
			setup: func(txRepo *mocks.MockTransactionRepository, segRepo *mocks.MockRfmSegmentRepository) {
				transactions := buildTransactions(6)
				transactions[3].MobileID = ""
				txRepo.EXPECT().ListTransactions().Return(transactions, nil)
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.ErrorIs(t, err, ErrMalformedTransaction)
				assert.Nil(t, report)
			},
		},
		{
			name: "Erro na origem é propagado",
			setup: func(txRepo *mocks.MockTransactionRepository, segRepo *mocks.MockRfmSegmentRepository) {
				txRepo.EXPECT().ListTransactions().Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao buscar transações")
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			txRepo := mocks.NewMockTransactionRepository(ctrl)
			segRepo := mocks.NewMockRfmSegmentRepository(ctrl)

			tt.setup(txRepo, segRepo)

			service := &Service{
				transactionRepo: txRepo,
				segmentRepo:     segRepo,
				minPopulation:   MinPopulation,
				now:             fixedNow,
			}

			report, err := service.RunSegmentation()
			tt.validate(t, report, err)
		})
	}
}

func TestService_RunSegmentation_BatchTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRepo := mocks.NewMockTransactionRepository(ctrl)
	segRepo := mocks.NewMockRfmSegmentRepository(ctrl)

	txRepo.EXPECT().ListTransactions().Return(buildTransactions(5), nil)

	var computedAts []time.Time
	segRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(segment *domain.RfmSegment) error {
		computedAts = append(computedAts, segment.ComputedAt)
		return nil
	}).Times(5)

	service := &Service{
		transactionRepo: txRepo,
		segmentRepo:     segRepo,
		minPopulation:   MinPopulation,
		now:             fixedNow,
	}

	report, err := service.RunSegmentation()
	assert.NoError(t, err)

	// Todos os registros da geração compartilham o mesmo carimbo do lote
	for _, computedAt := range computedAts {
		assert.Equal(t, report.StartedAt, computedAt)
	}
}
