package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionDesc string

const (
	TransactionDeposited TransactionDesc = "Deposited"
	TransactionWithdrawn TransactionDesc = "Withdrawn"
)

type Transaction struct {
	ID            int64
	AccountNumber string
	Description   TransactionDesc
	Amount        decimal.Decimal
	CreatedAt     time.Time
}
