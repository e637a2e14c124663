// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Transaction representa uma venda registrada na tabela fact_transactions
type Transaction struct {
	TransactionID int       `json:"transaction_id"`
	MobileID      string    `json:"mobile_id"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionItem representa um item de uma venda (fact_transaction_items)
type TransactionItem struct {
	TransactionID int     `json:"transaction_id"`
	ItemID        int     `json:"item_id"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}
