package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	Append(ctx context.Context, accountNumber string, desc TransactionDesc, amount decimal.Decimal) (Transaction, error)
	ListByAccount(ctx context.Context, accountNumber string) ([]Transaction, error)
}
