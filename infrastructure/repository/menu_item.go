package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

const menuItemsTable = "dim_menu_items dmi"

type MenuItemRepository interface {
	ListMenuItems() ([]*domain.MenuItem, error)
	GetDashboardOverview() (*domain.DashboardOverview, error)
}

type menuItemRepository struct {
	conn *postgres.Connection
}

func NewMenuItemRepository(conn *postgres.Connection) MenuItemRepository {
	return &menuItemRepository{
		conn: conn,
	}
}

func (r *menuItemRepository) ListMenuItems() ([]*domain.MenuItem, error) {
	query, args, err := squirrel.
		Select("dmi.item_id, dmi.item_name, dmi.price, dmi.category").
		From(menuItemsTable).
		OrderBy("dmi.item_id ASC").
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

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		item := &domain.MenuItem{}
		err := rows.Scan(&item.ItemID, &item.ItemName, &item.Price, &item.Category)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do cardápio: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

// GetDashboardOverview agrega os números da visão geral direto no banco
func (r *menuItemRepository) GetDashboardOverview() (*domain.DashboardOverview, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(ft.total_amount), 0)",
			"COALESCE(AVG(ft.total_amount), 0)",
			"COUNT(DISTINCT ft.mobile_id)",
		).
		From(transactionsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	overview := &domain.DashboardOverview{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&overview.TotalTransactions,
		&overview.TotalRevenue,
		&overview.AverageTicket,
		&overview.TotalCustomers,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear visão geral: %w", err)
	}

	return overview, nil
}
