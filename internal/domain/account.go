package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	AccountNumber string
	HolderName    string
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
