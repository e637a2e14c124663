package segmenting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

func TestExtractFeatures(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name         string
		transactions []*domain.Transaction
		validate     func(t *testing.T, features []RFMFeatures)
		wantErr      error
	}{
		{
			name: "Agrega frequência e monetário por cliente",
			transactions: []*domain.Transaction{
				{TransactionID: 1, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
				{TransactionID: 2, MobileID: "bbb", TotalAmount: 20.0, CreatedAt: time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)},
				{TransactionID: 3, MobileID: "aaa", TotalAmount: 5.5, CreatedAt: time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC)},
			},
			validate: func(t *testing.T, features []RFMFeatures) {
				assert.Len(t, features, 2)

				// A ordem de saída preserva a primeira aparição na entrada
				assert.Equal(t, "aaa", features[0].MobileID)
				assert.Equal(t, 2, features[0].Frequency)
				assert.Equal(t, 15.5, features[0].Monetary)
				assert.Equal(t, 1, features[0].RecencyDays)

				assert.Equal(t, "bbb", features[1].MobileID)
				assert.Equal(t, 1, features[1].Frequency)
				assert.Equal(t, 20.0, features[1].Monetary)
				assert.Equal(t, 3, features[1].RecencyDays)
			},
		},
		{
			name: "Transaction_id duplicado conta uma única vez",
			transactions: []*domain.Transaction{
				{TransactionID: 1, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
				{TransactionID: 1, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
			},
			validate: func(t *testing.T, features []RFMFeatures) {
				assert.Len(t, features, 1)
				assert.Equal(t, 1, features[0].Frequency)
				assert.Equal(t, 10.0, features[0].Monetary)
			},
		},
		{
			name: "Recência ignora o horário do dia",
			transactions: []*domain.Transaction{
				// 23:59 do dia anterior ainda conta como 1 dia de recência
				{TransactionID: 1, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 6, 14, 23, 59, 59, 0, time.UTC)},
			},
			validate: func(t *testing.T, features []RFMFeatures) {
				assert.Equal(t, 1, features[0].RecencyDays)
			},
		},
		{
			name: "Compra no mesmo dia tem recência zero",
			transactions: []*domain.Transaction{
				{TransactionID: 1, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)},
			},
			validate: func(t *testing.T, features []RFMFeatures) {
				assert.Equal(t, 0, features[0].RecencyDays)
			},
		},
		{
			name: "Recência usa a transação mais recente do cliente",
			transactions: []*domain.Transaction{
				{TransactionID: 1, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)},
				{TransactionID: 2, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC)},
				{TransactionID: 3, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
			},
			validate: func(t *testing.T, features []RFMFeatures) {
				assert.Equal(t, 2, features[0].RecencyDays)
			},
		},
		{
			name:         "Entrada vazia produz saída vazia",
			transactions: []*domain.Transaction{},
			validate: func(t *testing.T, features []RFMFeatures) {
				assert.Empty(t, features)
			},
		},
		{
			name: "Transação sem mobile_id aborta a execução",
			transactions: []*domain.Transaction{
				{TransactionID: 1, MobileID: "aaa", TotalAmount: 10.0, CreatedAt: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
				{TransactionID: 2, MobileID: "", TotalAmount: 20.0, CreatedAt: time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)},
			},
			wantErr: ErrMalformedTransaction,
		},
		{
			name: "Transação sem created_at aborta a execução",
			transactions: []*domain.Transaction{
				{TransactionID: 1, MobileID: "aaa", TotalAmount: 10.0},
			},
			wantErr: ErrMalformedTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features, err := ExtractFeatures(tt.transactions, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, features)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, features)
		})
	}
}
