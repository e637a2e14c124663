package domain

import "time"

// Recommendation representa uma linha da tabela menu_recommendations: a
// posição de um item no ranking de vendas de uma faixa de horário.
// Rank 1 é o item mais vendido da faixa.
type Recommendation struct {
	ID            int       `json:"id,omitempty"`
	DaytimeID     int       `json:"daytime_id"`
	ItemID        int       `json:"menu_item_id"`
	Rank          int       `json:"rank"`
	TotalQuantity int       `json:"total_quantity"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}
