package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-analytics-api/infrastructure/repository"
	"github.com/vfg2006/cafe-analytics-api/pkg/apiErrors"
)

// ListTransactions retorna o snapshot de fact_transactions
func ListTransactions(repo repository.TransactionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactions, err := repo.ListTransactions()
		if err != nil {
			logrus.Error("Erro ao buscar transações:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar transações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(transactions); err != nil {
			logrus.Error("Erro ao enviar resposta de transações:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListTransactionItems retorna o snapshot de fact_transaction_items
func ListTransactionItems(repo repository.TransactionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := repo.ListTransactionItems()
		if err != nil {
			logrus.Error("Erro ao buscar itens de transação:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar itens de transação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logrus.Error("Erro ao enviar resposta de itens:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
