package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	Exists(ctx context.Context, accountNumber string) (bool, error)
	Create(ctx context.Context, account Account) (Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (Account, error)
	// GetByAccountNumberForUpdate locks the account row for the duration of
	// the surrounding transaction. Only meaningful inside TxRunner.WithinTx.
	GetByAccountNumberForUpdate(ctx context.Context, accountNumber string) (Account, error)
	SetBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error
}
