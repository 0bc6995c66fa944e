package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ucb-bank/banking-core/internal/domain"
	"github.com/ucb-bank/banking-core/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Exists(ctx context.Context, accountNumber string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM accounts
	WHERE account_number = $1
)`

	var exists bool
	if err := q(ctx, r.db).QueryRowContext(ctx, query, accountNumber).Scan(&exists); err != nil {
		logger.Error("account repository exists check failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return false, fmt.Errorf("check account exists: %w", err)
	}

	return exists, nil
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"accountNumber": account.AccountNumber,
		"holderName":    account.HolderName,
		"balance":       account.Balance,
	})

	const query = `
INSERT INTO accounts (
	account_number,
	name,
	balance
) VALUES ($1, $2, $3)
RETURNING created_at, updated_at`

	if err := q(ctx, r.db).QueryRowContext(
		ctx,
		query,
		account.AccountNumber,
		account.HolderName,
		account.Balance,
	).Scan(&account.CreatedAt, &account.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			logger.Info("account repository duplicate account number", logger.Fields{
				"accountNumber": account.AccountNumber,
			})
			return domain.Account{}, domain.ErrRecordAlreadyExists
		}
		logger.Error("account repository create failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	logger.Info("account repository create success", logger.Fields{
		"accountNumber": account.AccountNumber,
	})

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	const query = `
SELECT account_number, name, balance, created_at, updated_at
FROM accounts
WHERE account_number = $1`

	return r.getAccount(ctx, query, accountNumber)
}

func (r *AccountRepository) GetByAccountNumberForUpdate(ctx context.Context, accountNumber string) (domain.Account, error) {
	const query = `
SELECT account_number, name, balance, created_at, updated_at
FROM accounts
WHERE account_number = $1
FOR UPDATE`

	return r.getAccount(ctx, query, accountNumber)
}

func (r *AccountRepository) SetBalance(ctx context.Context, accountNumber string, balance decimal.Decimal) error {
	logger.Info("account repository set balance", logger.Fields{
		"accountNumber": accountNumber,
		"balance":       balance,
	})

	const query = `
UPDATE accounts
SET balance = $2,
    updated_at = NOW()
WHERE account_number = $1`

	result, err := q(ctx, r.db).ExecContext(ctx, query, accountNumber, balance)
	if err != nil {
		logger.Error("account repository set balance failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"balance":       balance,
		})
		return fmt.Errorf("set account balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("account repository set balance rows affected failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return fmt.Errorf("set account balance rows affected: %w", err)
	}

	if rowsAffected == 0 {
		logger.Info("account repository record not found for set balance", logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *AccountRepository) getAccount(ctx context.Context, query, accountNumber string) (domain.Account, error) {
	var account domain.Account
	if err := q(ctx, r.db).QueryRowContext(ctx, query, accountNumber).Scan(
		&account.AccountNumber,
		&account.HolderName,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("account repository record not found", logger.Fields{
				"accountNumber": accountNumber,
			})
			return domain.Account{}, domain.ErrRecordNotFound
		}
		logger.Error("account repository get failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Account{}, fmt.Errorf("get account by account number: %w", err)
	}

	return account, nil
}
