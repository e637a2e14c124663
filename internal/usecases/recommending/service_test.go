package recommending

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
	return time.Date(2024, 6, 15, 2, 30, 0, 0, time.UTC)
}

func seedDaytimes() []*domain.MenuDaytime {
	return []*domain.MenuDaytime{
		{DaytimeID: 1, Label: "Breakfast", StartTime: "06:00:00", EndTime: "10:59:59"},
		{DaytimeID: 2, Label: "Lunch", StartTime: "11:00:00", EndTime: "14:59:59"},
	}
}

func TestService_RunRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(txRepo *mocks.MockTransactionRepository, dtRepo *mocks.MockDaytimeRepository, recRepo *mocks.MockRecommendationRepository)
		validate func(t *testing.T, report *domain.SyncReport, err error)
	}{
		{
			name: "Execução completa envia uma recomendação por posição do ranking",
			setup: func(txRepo *mocks.MockTransactionRepository, dtRepo *mocks.MockDaytimeRepository, recRepo *mocks.MockRecommendationRepository) {
				dtRepo.EXPECT().ListDaytimes().Return(seedDaytimes(), nil)
				txRepo.EXPECT().ListTransactions().Return([]*domain.Transaction{
					{TransactionID: 1, MobileID: "aaa", CreatedAt: time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)},
					{TransactionID: 2, MobileID: "bbb", CreatedAt: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
				}, nil)
				txRepo.EXPECT().ListTransactionItems().Return([]*domain.TransactionItem{
					{TransactionID: 1, ItemID: 10, Quantity: 2},
					{TransactionID: 2, ItemID: 10, Quantity: 5},
					{TransactionID: 2, ItemID: 20, Quantity: 1},
				}, nil)
				recRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(3)
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, report.InputRows)
				assert.Equal(t, 3, report.OutputRows)
				assert.Equal(t, 3, report.Pushed)
				assert.Equal(t, 0, report.Unassigned)
				assert.Empty(t, report.Failures)
			},
		},
		{
			name: "Sem faixas configuradas aborta antes de buscar vendas",
			setup: func(txRepo *mocks.MockTransactionRepository, dtRepo *mocks.MockDaytimeRepository, recRepo *mocks.MockRecommendationRepository) {
				dtRepo.EXPECT().ListDaytimes().Return([]*domain.MenuDaytime{}, nil)
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.ErrorIs(t, err, ErrNoDaytimesConfigured)
				assert.Nil(t, report)
			},
		},
		{
			name: "Vendas fora das faixas entram no contador de não atribuídas",
			setup: func(txRepo *mocks.MockTransactionRepository, dtRepo *mocks.MockDaytimeRepository, recRepo *mocks.MockRecommendationRepository) {
				dtRepo.EXPECT().ListDaytimes().Return(seedDaytimes(), nil)
				txRepo.EXPECT().ListTransactions().Return([]*domain.Transaction{
					{TransactionID: 1, MobileID: "aaa", CreatedAt: time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)},
					{TransactionID: 2, MobileID: "bbb", CreatedAt: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
				}, nil)
				txRepo.EXPECT().ListTransactionItems().Return([]*domain.TransactionItem{
					{TransactionID: 1, ItemID: 10, Quantity: 4},
					{TransactionID: 2, ItemID: 20, Quantity: 2},
				}, nil)
				recRepo.EXPECT().Create(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, report.Unassigned)
				assert.Equal(t, 1, report.OutputRows)
				assert.Equal(t, 1, report.Pushed)
			},
		},
		{
			name: "Rejeição individual do destino não aborta a execução",
			setup: func(txRepo *mocks.MockTransactionRepository, dtRepo *mocks.MockDaytimeRepository, recRepo *mocks.MockRecommendationRepository) {
				dtRepo.EXPECT().ListDaytimes().Return(seedDaytimes(), nil)
				txRepo.EXPECT().ListTransactions().Return([]*domain.Transaction{
					{TransactionID: 1, MobileID: "aaa", CreatedAt: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
				}, nil)
				txRepo.EXPECT().ListTransactionItems().Return([]*domain.TransactionItem{
					{TransactionID: 1, ItemID: 10, Quantity: 2},
					{TransactionID: 1, ItemID: 20, Quantity: 1},
				}, nil)

				calls := 0
				recRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(*domain.Recommendation) error {
					calls++
					if calls == 1 {
						return errors.New("violação de constraint")
					}
					return nil
				}).Times(2)
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, report.OutputRows)
				assert.Equal(t, 1, report.Pushed)
				assert.Len(t, report.Failures, 1)
				assert.Contains(t, report.Failures[0].Key, "daytime:")
			},
		},
		{
			name: "Erro ao buscar faixas é propagado",
			setup: func(txRepo *mocks.MockTransactionRepository, dtRepo *mocks.MockDaytimeRepository, recRepo *mocks.MockRecommendationRepository) {
				dtRepo.EXPECT().ListDaytimes().Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, report *domain.SyncReport, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao buscar faixas de horário")
				assert.Nil(t, report)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			txRepo := mocks.NewMockTransactionRepository(ctrl)
			dtRepo := mocks.NewMockDaytimeRepository(ctrl)
			recRepo := mocks.NewMockRecommendationRepository(ctrl)

			tt.setup(txRepo, dtRepo, recRepo)

			service := &Service{
				transactionRepo:    txRepo,
				daytimeRepo:        dtRepo,
				recommendationRepo: recRepo,
				topN:               DefaultTopN,
				now:                fixedNow,
			}

			report, err := service.RunRecommendations()
			tt.validate(t, report, err)
		})
	}
}
