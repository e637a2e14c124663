package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

const rfmSegmentsTable = "rfm_segments rs"

type RfmSegmentRepository interface {
	Create(segment *domain.RfmSegment) error
	List() ([]*domain.RfmSegment, error)
}

type rfmSegmentRepository struct {
	conn *postgres.Connection
}

func NewRfmSegmentRepository(conn *postgres.Connection) RfmSegmentRepository {
	return &rfmSegmentRepository{
		conn: conn,
	}
}

// Create insere um registro de segmento RFM. Cada execução do pipeline grava
// uma geração nova, identificada pelo computed_at do lote.
func (r *rfmSegmentRepository) Create(segment *domain.RfmSegment) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("rfm_segments").
		Columns(
			"mobile_id", "recency_days", "frequency", "monetary",
			"r_score", "f_score", "m_score", "rfm_score", "segment", "computed_at",
		).
		Values(
			segment.MobileID,
			segment.RecencyDays,
			segment.Frequency,
			segment.Monetary,
			segment.RScore,
			segment.FScore,
			segment.MScore,
			segment.RFMScore,
			segment.Segment,
			segment.ComputedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// List retorna os segmentos RFM, com a geração mais recente primeiro
func (r *rfmSegmentRepository) List() ([]*domain.RfmSegment, error) {
	query, args, err := squirrel.
		Select(
			"rs.rfm_id, rs.mobile_id, rs.recency_days, rs.frequency, rs.monetary, " +
				"rs.r_score, rs.f_score, rs.m_score, rs.rfm_score, rs.segment, rs.computed_at",
		).
		From(rfmSegmentsTable).
		OrderBy("rs.computed_at DESC, rs.rfm_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	segments := make([]*domain.RfmSegment, 0)
	for rows.Next() {
		segment := &domain.RfmSegment{}
		err := rows.Scan(
			&segment.RfmID,
			&segment.MobileID,
			&segment.RecencyDays,
			&segment.Frequency,
			&segment.Monetary,
			&segment.RScore,
			&segment.FScore,
			&segment.MScore,
			&segment.RFMScore,
			&segment.Segment,
			&segment.ComputedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear segmento RFM: %w", err)
		}
		segments = append(segments, segment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return segments, nil
}
