package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

const usersTable = "dim_users du"

type UserRepository interface {
	ListUsers() ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) ListUsers() ([]*domain.User, error) {
	query, args, err := squirrel.
		Select("du.mobile_id, du.notes").
		From(usersTable).
		OrderBy("du.mobile_id ASC").
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

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.MobileID, &user.Notes); err != nil {
			return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}
