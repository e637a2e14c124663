package segmenting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

func TestScoreSegments(t *testing.T) {
	computedAt := time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC)

	t.Run("População abaixo do mínimo aborta sem pontuar", func(t *testing.T) {
		features := []RFMFeatures{
			{MobileID: "a", RecencyDays: 1, Frequency: 1, Monetary: 10},
			{MobileID: "b", RecencyDays: 2, Frequency: 2, Monetary: 20},
			{MobileID: "c", RecencyDays: 3, Frequency: 3, Monetary: 30},
			{MobileID: "d", RecencyDays: 4, Frequency: 4, Monetary: 40},
		}

		segments, err := ScoreSegments(features, computedAt)
		assert.ErrorIs(t, err, ErrInsufficientPopulation)
		assert.Nil(t, segments)
	})

	t.Run("Pontuação de seis clientes com dimensões alinhadas", func(t *testing.T) {
		features := []RFMFeatures{
			{MobileID: "c1", RecencyDays: 1, Frequency: 10, Monetary: 1000},
			{MobileID: "c2", RecencyDays: 5, Frequency: 8, Monetary: 800},
			{MobileID: "c3", RecencyDays: 10, Frequency: 6, Monetary: 600},
			{MobileID: "c4", RecencyDays: 15, Frequency: 4, Monetary: 400},
			{MobileID: "c5", RecencyDays: 20, Frequency: 2, Monetary: 200},
			{MobileID: "c6", RecencyDays: 25, Frequency: 1, Monetary: 100},
		}

		segments, err := ScoreSegments(features, computedAt)
		assert.NoError(t, err)
		assert.Len(t, segments, 6)

		// Score 5 sempre é o melhor: cliente mais recente, mais frequente
		// e de maior gasto recebe "555"
		assert.Equal(t, "c1", segments[0].MobileID)
		assert.Equal(t, "555", segments[0].RFMScore)
		assert.Equal(t, domain.SegmentChampions, segments[0].Segment)

		assert.Equal(t, "555", segments[1].RFMScore)
		assert.Equal(t, domain.SegmentChampions, segments[1].Segment)

		assert.Equal(t, "444", segments[2].RFMScore)
		assert.Equal(t, domain.SegmentChampions, segments[2].Segment)

		assert.Equal(t, "333", segments[3].RFMScore)
		assert.Equal(t, domain.SegmentLoyalCustomers, segments[3].Segment)

		assert.Equal(t, "222", segments[4].RFMScore)
		assert.Equal(t, domain.SegmentOthers, segments[4].Segment)

		// Pior cliente em todas as dimensões recebe "111"
		assert.Equal(t, "c6", segments[5].MobileID)
		assert.Equal(t, "111", segments[5].RFMScore)
		assert.Equal(t, domain.SegmentOthers, segments[5].Segment)

		// Carimbo do lote compartilhado por toda a geração
		for _, segment := range segments {
			assert.Equal(t, computedAt, segment.ComputedAt)
		}
	})

	t.Run("Cinco clientes cobrem os cinco quintis exatamente uma vez", func(t *testing.T) {
		features := []RFMFeatures{
			{MobileID: "a", RecencyDays: 3, Frequency: 7, Monetary: 300},
			{MobileID: "b", RecencyDays: 9, Frequency: 2, Monetary: 150},
			{MobileID: "c", RecencyDays: 1, Frequency: 9, Monetary: 900},
			{MobileID: "d", RecencyDays: 30, Frequency: 1, Monetary: 50},
			{MobileID: "e", RecencyDays: 6, Frequency: 4, Monetary: 500},
		}

		segments, err := ScoreSegments(features, computedAt)
		assert.NoError(t, err)
		assert.Len(t, segments, 5)

		rSeen := make(map[int]int)
		fSeen := make(map[int]int)
		mSeen := make(map[int]int)
		for _, segment := range segments {
			rSeen[segment.RScore]++
			fSeen[segment.FScore]++
			mSeen[segment.MScore]++
		}

		for score := 1; score <= 5; score++ {
			assert.Equal(t, 1, rSeen[score], "r_score %d", score)
			assert.Equal(t, 1, fSeen[score], "f_score %d", score)
			assert.Equal(t, 1, mSeen[score], "m_score %d", score)
		}
	})

	t.Run("Scores são monotônicos em relação aos valores brutos", func(t *testing.T) {
		features := []RFMFeatures{
			{MobileID: "a", RecencyDays: 2, Frequency: 5, Monetary: 120},
			{MobileID: "b", RecencyDays: 8, Frequency: 3, Monetary: 340},
			{MobileID: "c", RecencyDays: 4, Frequency: 9, Monetary: 80},
			{MobileID: "d", RecencyDays: 21, Frequency: 1, Monetary: 560},
			{MobileID: "e", RecencyDays: 13, Frequency: 6, Monetary: 230},
			{MobileID: "f", RecencyDays: 1, Frequency: 2, Monetary: 910},
			{MobileID: "g", RecencyDays: 17, Frequency: 8, Monetary: 45},
		}

		segments, err := ScoreSegments(features, computedAt)
		assert.NoError(t, err)

		for i := range segments {
			for j := range segments {
				if segments[i].RecencyDays < segments[j].RecencyDays {
					assert.GreaterOrEqual(t, segments[i].RScore, segments[j].RScore)
				}
				if segments[i].Frequency > segments[j].Frequency {
					assert.GreaterOrEqual(t, segments[i].FScore, segments[j].FScore)
				}
				if segments[i].Monetary > segments[j].Monetary {
					assert.GreaterOrEqual(t, segments[i].MScore, segments[j].MScore)
				}
			}
		}
	})

	t.Run("Empates não quebram o binning", func(t *testing.T) {
		features := []RFMFeatures{
			{MobileID: "a", RecencyDays: 5, Frequency: 3, Monetary: 100},
			{MobileID: "b", RecencyDays: 5, Frequency: 3, Monetary: 100},
			{MobileID: "c", RecencyDays: 5, Frequency: 3, Monetary: 100},
			{MobileID: "d", RecencyDays: 5, Frequency: 3, Monetary: 100},
			{MobileID: "e", RecencyDays: 5, Frequency: 3, Monetary: 100},
		}

		segments, err := ScoreSegments(features, computedAt)
		assert.NoError(t, err)

		// Desempate estável: com valores todos iguais a ordem de entrada
		// decide e cada quintil recebe exatamente um cliente
		assert.Equal(t, 5, segments[0].RScore)
		assert.Equal(t, 4, segments[1].RScore)
		assert.Equal(t, 3, segments[2].RScore)
		assert.Equal(t, 2, segments[3].RScore)
		assert.Equal(t, 1, segments[4].RScore)
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		rScore  int
		fScore  int
		segment string
	}{
		{"Recência e frequência altas viram Champions", 4, 4, domain.SegmentChampions},
		{"Scores máximos viram Champions", 5, 5, domain.SegmentChampions},
		{"Scores medianos viram Loyal Customers", 3, 3, domain.SegmentLoyalCustomers},
		{"Recência alta com frequência mediana casa na regra de Loyal primeiro", 4, 3, domain.SegmentLoyalCustomers},
		{"Recência alta com frequência baixa viram Recent Customers", 5, 1, domain.SegmentRecentCustomers},
		{"Frequência alta com recência baixa viram Frequent Buyers", 1, 5, domain.SegmentFrequentBuyers},
		{"Frequência alta com recência mediana casa na regra de Loyal primeiro", 3, 4, domain.SegmentLoyalCustomers},
		{"Scores baixos caem em Others", 2, 2, domain.SegmentOthers},
		{"Scores mínimos caem em Others", 1, 1, domain.SegmentOthers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.segment, classify(tt.rScore, tt.fScore))
		})
	}
}
