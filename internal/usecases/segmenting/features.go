// Package segmenting implementa o motor de segmentação RFM
// (Recency/Frequency/Monetary) sobre o snapshot de transações.
package segmenting

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/cafe-analytics-api/internal/domain"
	"github.com/vfg2006/cafe-analytics-api/pkg/utils"
)

// ErrMalformedTransaction indica uma transação sem campos obrigatórios.
// Agregados parciais alimentariam decisões de negócio erradas, então a
// execução inteira é abortada em vez de descartar a linha.
var ErrMalformedTransaction = errors.New("transação com campos obrigatórios ausentes")

// RFMFeatures são os valores brutos de um cliente antes da pontuação
type RFMFeatures struct {
	MobileID    string
	RecencyDays int
	Frequency   int
	Monetary    float64
}

// ExtractFeatures agrega o histórico de transações em uma linha por cliente.
// A ordem de saída preserva a primeira aparição de cada cliente na entrada,
// que é o critério de desempate da pontuação. Clientes sem transações nunca
// aparecem. Toda a aritmética de datas é feita em UTC, com o horário
// descartado antes da subtração para evitar recência errada por jitter
// intradiário.
func ExtractFeatures(transactions []*domain.Transaction, now time.Time) ([]RFMFeatures, error) {
	nowDate := utils.DateOnly(now)

	features := make([]RFMFeatures, 0)
	position := make(map[string]int)
	lastDate := make(map[string]time.Time)
	seenTx := make(map[int]struct{})

	for _, transaction := range transactions {
		if transaction.MobileID == "" || transaction.CreatedAt.IsZero() {
			return nil, fmt.Errorf("transaction_id %d: %w", transaction.TransactionID, ErrMalformedTransaction)
		}

		// Frequência conta transaction_id distintos
		if _, seen := seenTx[transaction.TransactionID]; seen {
			continue
		}
		seenTx[transaction.TransactionID] = struct{}{}

		idx, exists := position[transaction.MobileID]
		if !exists {
			idx = len(features)
			position[transaction.MobileID] = idx
			features = append(features, RFMFeatures{MobileID: transaction.MobileID})
		}

		features[idx].Frequency++
		features[idx].Monetary += transaction.TotalAmount

		txDate := utils.DateOnly(transaction.CreatedAt)
		if txDate.After(lastDate[transaction.MobileID]) {
			lastDate[transaction.MobileID] = txDate
		}
	}

	for i := range features {
		features[i].RecencyDays = utils.DaysBetween(lastDate[features[i].MobileID], nowDate)
	}

	return features, nil
}
