package recommending

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

// DefaultTopN é o tamanho padrão do ranking por faixa de horário
const DefaultTopN = 5

// ErrMalformedRecord indica transação ou item sem campos obrigatórios.
// Aborta a execução inteira: agregado parcial é pior que falha visível.
var ErrMalformedRecord = errors.New("registro com campos obrigatórios ausentes")

// RankResult é a saída do ranker junto com os contadores informativos
type RankResult struct {
	Recommendations []*domain.Recommendation
	Unassigned      int // Itens vendidos fora de qualquer faixa configurada
	Orphaned        int // Itens cuja transação não está no snapshot
}

// RankTopItems junta cada item de venda ao created_at da sua transação,
// atribui a venda a uma faixa de horário, soma a quantidade por
// (faixa, item) e produz o top-N de cada faixa. Dentro da faixa o ranking é
// por quantidade decrescente com desempate por item_id crescente, o que
// torna a saída determinística.
func RankTopItems(
	transactions []*domain.Transaction,
	items []*domain.TransactionItem,
	windows DaytimeWindows,
	topN int,
) (*RankResult, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	txCreatedAt := make(map[int]time.Time, len(transactions))
	for _, transaction := range transactions {
		if transaction.CreatedAt.IsZero() {
			return nil, fmt.Errorf("transaction_id %d sem created_at: %w",
				transaction.TransactionID, ErrMalformedRecord)
		}
		txCreatedAt[transaction.TransactionID] = transaction.CreatedAt
	}

	result := &RankResult{}

	// Quantidade somada por (faixa, item)
	totals := make(map[int]map[int]int)
	for _, item := range items {
		if item.TransactionID == 0 || item.ItemID == 0 {
			return nil, fmt.Errorf("item %d/%d: %w", item.TransactionID, item.ItemID, ErrMalformedRecord)
		}

		createdAt, exists := txCreatedAt[item.TransactionID]
		if !exists {
			result.Orphaned++
			continue
		}

		daytimeID, assigned := windows.Assign(domain.SecondsOfDay(createdAt))
		if !assigned {
			result.Unassigned++
			continue
		}

		if totals[daytimeID] == nil {
			totals[daytimeID] = make(map[int]int)
		}
		totals[daytimeID][item.ItemID] += item.Quantity
	}

	daytimeIDs := make([]int, 0, len(totals))
	for daytimeID := range totals {
		daytimeIDs = append(daytimeIDs, daytimeID)
	}
	sort.Ints(daytimeIDs)

	for _, daytimeID := range daytimeIDs {
		itemIDs := make([]int, 0, len(totals[daytimeID]))
		for itemID := range totals[daytimeID] {
			itemIDs = append(itemIDs, itemID)
		}

		sort.Slice(itemIDs, func(a, b int) bool {
			qtyA := totals[daytimeID][itemIDs[a]]
			qtyB := totals[daytimeID][itemIDs[b]]
			if qtyA != qtyB {
				return qtyA > qtyB
			}
			return itemIDs[a] < itemIDs[b]
		})

		if len(itemIDs) > topN {
			itemIDs = itemIDs[:topN]
		}

		for rank, itemID := range itemIDs {
			result.Recommendations = append(result.Recommendations, &domain.Recommendation{
				DaytimeID:     daytimeID,
				ItemID:        itemID,
				Rank:          rank + 1,
				TotalQuantity: totals[daytimeID][itemID],
			})
		}
	}

	return result, nil
}
