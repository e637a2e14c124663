package domain

import "time"

// Segmentos atribuídos pela lista de decisão do motor de RFM
const (
	SegmentChampions       = "Champions"
	SegmentLoyalCustomers  = "Loyal Customers"
	SegmentRecentCustomers = "Recent Customers"
	SegmentFrequentBuyers  = "Frequent Buyers"
	SegmentOthers          = "Others"
)

// RfmSegment representa uma linha da tabela rfm_segments: os valores brutos de
// Recency/Frequency/Monetary de um cliente, os scores de quintil (1..5, 5
// sempre é o melhor) e o segmento atribuído. Cada execução gera uma nova
// geração completa, identificada pelo ComputedAt compartilhado do lote.
type RfmSegment struct {
	RfmID       int       `json:"rfm_id,omitempty"`
	MobileID    string    `json:"mobile_id"`
	RecencyDays int       `json:"recency_days"`
	Frequency   int       `json:"frequency"`
	Monetary    float64   `json:"monetary"`
	RScore      int       `json:"r_score"`
	FScore      int       `json:"f_score"`
	MScore      int       `json:"m_score"`
	RFMScore    string    `json:"rfm_score"` // Concatenação dos dígitos, ex: "532"
	Segment     string    `json:"segment"`
	ComputedAt  time.Time `json:"computed_at"`
}
