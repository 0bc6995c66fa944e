package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/ucb-bank/banking-core/internal/domain"
)

type TransactionEntry struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   string          `json:"timestamp"`
}

type TransactionHistoryResponse struct {
	AccountNumber string             `json:"accountNumber"`
	Transactions  []TransactionEntry `json:"transactions"`
}

func NewTransactionEntry(txn domain.Transaction) TransactionEntry {
	return TransactionEntry{
		ID:          txn.ID,
		Description: string(txn.Description),
		Amount:      txn.Amount,
		Timestamp:   txn.CreatedAt.Format(time.RFC3339),
	}
}
