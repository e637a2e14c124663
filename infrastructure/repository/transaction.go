package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-analytics-api/internal/domain"
)

const (
	transactionsTable     = "fact_transactions ft"
	transactionItemsTable = "fact_transaction_items fti"
)

type TransactionRepository interface {
	ListTransactions() ([]*domain.Transaction, error)
	ListTransactionItems() ([]*domain.TransactionItem, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// ListTransactions retorna o snapshot completo de fact_transactions,
// na ordem de criação (os pipelines dependem de uma ordem de entrada estável)
func (r *transactionRepository) ListTransactions() ([]*domain.Transaction, error) {
	query, args, err := squirrel.
		Select("ft.transaction_id, ft.mobile_id, ft.total_amount, ft.created_at").
		From(transactionsTable).
		OrderBy("ft.transaction_id ASC").
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

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction := &domain.Transaction{}
		err := rows.Scan(
			&transaction.TransactionID,
			&transaction.MobileID,
			&transaction.TotalAmount,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

// ListTransactionItems retorna o snapshot completo de fact_transaction_items
func (r *transactionRepository) ListTransactionItems() ([]*domain.TransactionItem, error) {
	query, args, err := squirrel.
		Select("fti.transaction_id, fti.item_id, fti.quantity, fti.price").
		From(transactionItemsTable).
		OrderBy("fti.transaction_id ASC, fti.item_id ASC").
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

	items := make([]*domain.TransactionItem, 0)
	for rows.Next() {
		item := &domain.TransactionItem{}
		err := rows.Scan(
			&item.TransactionID,
			&item.ItemID,
			&item.Quantity,
			&item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item de transação: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
