package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ucb-bank/banking-core/internal/domain"
	"github.com/ucb-bank/banking-core/internal/logger"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Append(ctx context.Context, accountNumber string, desc domain.TransactionDesc, amount decimal.Decimal) (domain.Transaction, error) {
	logger.Info("transaction repository append", logger.Fields{
		"accountNumber": accountNumber,
		"description":   desc,
		"amount":        amount,
	})

	const query = `
INSERT INTO transactions (
	account_number,
	transaction_desc,
	amount
) VALUES ($1, $2, $3)
RETURNING id, created_at`

	txn := domain.Transaction{
		AccountNumber: accountNumber,
		Description:   desc,
		Amount:        amount,
	}

	if err := q(ctx, r.db).QueryRowContext(
		ctx,
		query,
		accountNumber,
		desc,
		amount,
	).Scan(&txn.ID, &txn.CreatedAt); err != nil {
		logger.Error("transaction repository append failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"description":   desc,
		})
		return domain.Transaction{}, fmt.Errorf("append transaction: %w", err)
	}

	logger.Info("transaction repository append success", logger.Fields{
		"transactionId": txn.ID,
		"accountNumber": accountNumber,
	})

	return txn, nil
}

// ListByAccount returns the account's transactions newest first. Rows with
// equal timestamps keep deposits ahead of withdrawals, then id order.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountNumber string) ([]domain.Transaction, error) {
	const query = `
SELECT id, account_number, transaction_desc, amount, created_at
FROM transactions
WHERE account_number = $1
ORDER BY created_at DESC,
	CASE WHEN transaction_desc = 'Deposited' THEN 0 ELSE 1 END,
	id`

	rows, err := q(ctx, r.db).QueryContext(ctx, query, accountNumber)
	if err != nil {
		logger.Error("transaction repository list failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return nil, fmt.Errorf("list transactions by account: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.AccountNumber,
			&txn.Description,
			&txn.Amount,
			&txn.CreatedAt,
		); err != nil {
			logger.Error("transaction repository scan failed", err, logger.Fields{
				"accountNumber": accountNumber,
			})
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return transactions, nil
}
