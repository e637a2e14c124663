package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

const menuRecommendationsTable = "menu_recommendations mr"

type RecommendationRepository interface {
	Create(recommendation *domain.Recommendation) error
	List() ([]*domain.Recommendation, error)
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

// Create insere uma recomendação de item para uma faixa de horário
func (r *recommendationRepository) Create(recommendation *domain.Recommendation) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("menu_recommendations").
		Columns("daytime_id", "menu_item_id", "rank", "total_quantity").
		Values(
			recommendation.DaytimeID,
			recommendation.ItemID,
			recommendation.Rank,
			recommendation.TotalQuantity,
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

// List retorna as recomendações, geração mais recente primeiro, ordenadas
// por faixa de horário e posição no ranking
func (r *recommendationRepository) List() ([]*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.daytime_id, mr.menu_item_id, mr.rank, mr.total_quantity, mr.created_at").
		From(menuRecommendationsTable).
		OrderBy("mr.created_at DESC, mr.daytime_id ASC, mr.rank ASC").
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

	recommendations := make([]*domain.Recommendation, 0)
	for rows.Next() {
		recommendation := &domain.Recommendation{}
		err := rows.Scan(
			&recommendation.ID,
			&recommendation.DaytimeID,
			&recommendation.ItemID,
			&recommendation.Rank,
			&recommendation.TotalQuantity,
			&recommendation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
		}
		recommendations = append(recommendations, recommendation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return recommendations, nil
}
