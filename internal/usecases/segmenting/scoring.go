package segmenting

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

// MinPopulation é o mínimo de clientes para formar 5 quintis não vazios
const MinPopulation = 5

const quintiles = 5

// ErrInsufficientPopulation indica que há clientes demais de menos para o
// binning por quintis. Falha de pré-condição: nada é gravado.
var ErrInsufficientPopulation = errors.New("população insuficiente para formar quintis")

// Lista de decisão de segmentação, avaliada de cima para baixo.
// A primeira regra que casar vence; a ordem resolve sobreposições.
var segmentRules = []struct {
	matches func(rScore, fScore int) bool
	label   string
}{
	{func(r, f int) bool { return r >= 4 && f >= 4 }, domain.SegmentChampions},
	{func(r, f int) bool { return r >= 3 && f >= 3 }, domain.SegmentLoyalCustomers},
	{func(r, f int) bool { return r >= 4 }, domain.SegmentRecentCustomers},
	{func(r, f int) bool { return f >= 4 }, domain.SegmentFrequentBuyers},
}

// ScoreSegments converte as features brutas em scores ordinais 1..5 e um
// segmento. Cada dimensão é ranqueada de forma independente e estável
// (empates mantêm a ordem de entrada) e dividida em 5 quintis de população
// igual; score 5 sempre significa "melhor". O computedAt é o carimbo único
// do lote inteiro.
func ScoreSegments(features []RFMFeatures, computedAt time.Time) ([]*domain.RfmSegment, error) {
	n := len(features)
	if n < MinPopulation {
		return nil, fmt.Errorf("%d clientes: %w", n, ErrInsufficientPopulation)
	}

	// Recency: menor recency_days = mais recente = melhor
	rScores := quintileScores(n, func(i, j int) bool {
		return features[i].RecencyDays < features[j].RecencyDays
	})
	// Frequency e Monetary: maior valor = melhor
	fScores := quintileScores(n, func(i, j int) bool {
		return features[i].Frequency > features[j].Frequency
	})
	mScores := quintileScores(n, func(i, j int) bool {
		return features[i].Monetary > features[j].Monetary
	})

	segments := make([]*domain.RfmSegment, 0, n)
	for i, feature := range features {
		segments = append(segments, &domain.RfmSegment{
			MobileID:    feature.MobileID,
			RecencyDays: feature.RecencyDays,
			Frequency:   feature.Frequency,
			Monetary:    feature.Monetary,
			RScore:      rScores[i],
			FScore:      fScores[i],
			MScore:      mScores[i],
			RFMScore:    fmt.Sprintf("%d%d%d", rScores[i], fScores[i], mScores[i]),
			Segment:     classify(rScores[i], fScores[i]),
			ComputedAt:  computedAt,
		})
	}

	return segments, nil
}

// quintileScores ranqueia os índices 0..n-1 com ordenação estável e mapeia
// cada quintil do ranking para um score: bucket = rank*5/n, score = 5-bucket.
// O desempate estável garante rank único por dimensão mesmo com valores
// iguais, então os buckets sempre têm tamanhos que diferem em no máximo 1.
func quintileScores(n int, better func(i, j int) bool) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		return better(order[a], order[b])
	})

	scores := make([]int, n)
	for rank, idx := range order {
		scores[idx] = quintiles - rank*quintiles/n
	}

	return scores
}

func classify(rScore, fScore int) string {
	for _, rule := range segmentRules {
		if rule.matches(rScore, fScore) {
			return rule.label
		}
	}
	return domain.SegmentOthers
}
