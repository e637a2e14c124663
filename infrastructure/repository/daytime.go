package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

const menuDaytimesTable = "dim_menu_daytimes dmd"

type DaytimeRepository interface {
	ListDaytimes() ([]*domain.MenuDaytime, error)
}

type daytimeRepository struct {
	conn *postgres.Connection
}

func NewDaytimeRepository(conn *postgres.Connection) DaytimeRepository {
	return &daytimeRepository{
		conn: conn,
	}
}

// ListDaytimes retorna as faixas de horário configuradas, na ordem do
// daytime_id. A ordem importa: com faixas sobrepostas, a primeira vence.
func (r *daytimeRepository) ListDaytimes() ([]*domain.MenuDaytime, error) {
	query, args, err := squirrel.
		Select("dmd.daytime_id, dmd.daytime_label, dmd.start_time, dmd.end_time").
		From(menuDaytimesTable).
		OrderBy("dmd.daytime_id ASC").
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

	daytimes := make([]*domain.MenuDaytime, 0)
	for rows.Next() {
		daytime := &domain.MenuDaytime{}
		err := rows.Scan(
			&daytime.DaytimeID,
			&daytime.Label,
			&daytime.StartTime,
			&daytime.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear faixa de horário: %w", err)
		}
		daytimes = append(daytimes, daytime)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return daytimes, nil
}
