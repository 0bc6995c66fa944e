package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	HolderName     string           `json:"holderName"`
	AccountNumber  string           `json:"accountNumber"`
	InitialBalance *decimal.Decimal `json:"initialBalance,omitempty"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.HolderName) == "" {
		errs = append(errs, "holderName is required")
	}
	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CreateAccountResponse struct {
	AccountNumber string          `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     string          `json:"createdAt"`
}

type DepositRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r DepositRequest) Validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return errors.New("accountNumber is required")
	}

	return nil
}

type DepositResponse struct {
	AccountNumber   string          `json:"accountNumber"`
	DepositedAmount decimal.Decimal `json:"depositedAmount"`
	Balance         decimal.Decimal `json:"balance"`
}

type WithdrawRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return errors.New("accountNumber is required")
	}

	return nil
}

type WithdrawResponse struct {
	AccountNumber   string          `json:"accountNumber"`
	WithdrawnAmount decimal.Decimal `json:"withdrawnAmount"`
	Balance         decimal.Decimal `json:"balance"`
}

type BalanceEnquiryResponse struct {
	AccountNumber string          `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	Balance       decimal.Decimal `json:"balance"`
}
