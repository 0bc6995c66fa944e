package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ucb-bank/banking-core/internal/commons"
	"github.com/ucb-bank/banking-core/internal/domain"
	"github.com/ucb-bank/banking-core/internal/logger"
	"github.com/ucb-bank/banking-core/internal/models"
)

// BankService is the facade the presentation layer calls. Every balance
// mutation and its transaction log entry run inside one datastore
// transaction via txRunner.
type BankService struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
	txRunner        domain.TxRunner
}

func NewBankService(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
	txRunner domain.TxRunner,
) *BankService {
	return &BankService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txRunner:        txRunner,
	}
}

func (s *BankService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.CreateAccountResponse], error) {
	logger.Info("bank service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service create account validation failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	holderName := strings.TrimSpace(req.HolderName)

	balance, err := parseInitialBalance(req.InitialBalance)
	if err != nil {
		logger.Error("bank service create account parse balance failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("validation failed", "initialBalance cannot be negative"), err
	}

	exists, err := s.accountRepo.Exists(ctx, accountNumber)
	if err != nil {
		logger.Error("bank service create account existing account check failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Unable to create account right now"), err
	}
	if exists {
		logger.Info("bank service create account number taken", logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.CreateAccountResponse]("Account already exists", "Please choose a different account number"), domain.ErrRecordAlreadyExists
	}

	created, err := s.accountRepo.Create(ctx, domain.Account{
		AccountNumber: accountNumber,
		HolderName:    holderName,
		Balance:       balance,
	})
	if err != nil {
		logger.Error("bank service create account repository failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		// The insert can still lose to a concurrent create after the
		// exists check; surface it the same way.
		if errors.Is(err, domain.ErrRecordAlreadyExists) {
			return commons.ErrorResponse[models.CreateAccountResponse]("Account already exists", "Please choose a different account number"), err
		}
		return commons.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	response := models.CreateAccountResponse{
		AccountNumber: created.AccountNumber,
		HolderName:    created.HolderName,
		Balance:       created.Balance,
		CreatedAt:     created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("bank service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *BankService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.DepositResponse], error) {
	logger.Info("bank service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.DepositResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	amount := req.Amount

	if amount.LessThanOrEqual(decimal.Zero) {
		logger.Info("bank service deposit invalid amount", logger.Fields{
			"accountNumber": accountNumber,
			"amount":        amount,
		})
		return commons.ErrorResponse[models.DepositResponse]("Invalid deposit amount", "amount must be greater than zero"), domain.ErrInvalidAmount
	}

	var newBalance decimal.Decimal
	err := s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetByAccountNumberForUpdate(ctx, accountNumber)
		if err != nil {
			return err
		}

		newBalance = account.Balance.Add(amount)
		if err := s.accountRepo.SetBalance(ctx, accountNumber, newBalance); err != nil {
			return err
		}

		_, err = s.transactionRepo.Append(ctx, accountNumber, domain.TransactionDeposited, amount)
		return err
	})
	if err != nil {
		logger.Error("bank service deposit failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"amount":        amount,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.DepositResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.DepositResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	response := models.DepositResponse{
		AccountNumber:   accountNumber,
		DepositedAmount: amount,
		Balance:         newBalance,
	}

	logger.Info("bank service deposit success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"amount":        response.DepositedAmount,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("funds deposited successfully", response), nil
}

func (s *BankService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.WithdrawResponse], error) {
	logger.Info("bank service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("bank service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.WithdrawResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	amount := req.Amount

	if amount.LessThanOrEqual(decimal.Zero) {
		logger.Info("bank service withdraw invalid amount", logger.Fields{
			"accountNumber": accountNumber,
			"amount":        amount,
		})
		return commons.ErrorResponse[models.WithdrawResponse]("Invalid withdrawal amount", "amount must be greater than zero"), domain.ErrInvalidAmount
	}

	var newBalance decimal.Decimal
	err := s.txRunner.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetByAccountNumberForUpdate(ctx, accountNumber)
		if err != nil {
			return err
		}

		if amount.GreaterThan(account.Balance) {
			return domain.ErrInsufficientBalance
		}

		newBalance = account.Balance.Sub(amount)
		if err := s.accountRepo.SetBalance(ctx, accountNumber, newBalance); err != nil {
			return err
		}

		_, err = s.transactionRepo.Append(ctx, accountNumber, domain.TransactionWithdrawn, amount)
		return err
	})
	if err != nil {
		logger.Error("bank service withdraw failed", err, logger.Fields{
			"accountNumber": accountNumber,
			"amount":        amount,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.WithdrawResponse]("Account not found"), err
		}
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return commons.ErrorResponse[models.WithdrawResponse]("Insufficient funds"), err
		}
		return commons.ErrorResponse[models.WithdrawResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	response := models.WithdrawResponse{
		AccountNumber:   accountNumber,
		WithdrawnAmount: amount,
		Balance:         newBalance,
	}

	logger.Info("bank service withdraw success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"amount":        response.WithdrawnAmount,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("amount withdrawn successfully", response), nil
}

func (s *BankService) BalanceEnquiry(ctx context.Context, accountNumber string) (commons.Response[models.BalanceEnquiryResponse], error) {
	logger.Info("bank service balance enquiry request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		err := errors.New("accountNumber is required")
		return commons.ErrorResponse[models.BalanceEnquiryResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("bank service balance enquiry failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceEnquiryResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.BalanceEnquiryResponse]("failed to fetch balance", "Unable to fetch balance right now"), err
	}

	response := models.BalanceEnquiryResponse{
		AccountNumber: account.AccountNumber,
		HolderName:    account.HolderName,
		Balance:       account.Balance,
	}

	logger.Info("bank service balance enquiry success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("balance fetched successfully", response), nil
}

func (s *BankService) TransactionHistory(ctx context.Context, accountNumber string) (commons.Response[models.TransactionHistoryResponse], error) {
	logger.Info("bank service transaction history request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		err := errors.New("accountNumber is required")
		return commons.ErrorResponse[models.TransactionHistoryResponse]("validation failed", err.Error()), err
	}

	exists, err := s.accountRepo.Exists(ctx, accountNumber)
	if err != nil {
		logger.Error("bank service transaction history account check failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.TransactionHistoryResponse]("failed to fetch transactions", "Unable to fetch transactions right now"), err
	}
	if !exists {
		logger.Info("bank service transaction history account not found", logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.TransactionHistoryResponse]("Account not found"), domain.ErrRecordNotFound
	}

	transactions, err := s.transactionRepo.ListByAccount(ctx, accountNumber)
	if err != nil {
		logger.Error("bank service transaction history list failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.TransactionHistoryResponse]("failed to fetch transactions", "Unable to fetch transactions right now"), err
	}

	entries := make([]models.TransactionEntry, 0, len(transactions))
	for _, txn := range transactions {
		entries = append(entries, models.NewTransactionEntry(txn))
	}

	response := models.TransactionHistoryResponse{
		AccountNumber: accountNumber,
		Transactions:  entries,
	}

	message := "transactions fetched successfully"
	if len(entries) == 0 {
		// An empty history is a valid result, distinct from a missing account.
		message = "no transactions found for this account"
	}

	logger.Info("bank service transaction history success", logger.Fields{
		"accountNumber": accountNumber,
		"count":         len(entries),
	})

	return commons.SuccessResponse(message, response), nil
}

func parseInitialBalance(raw *decimal.Decimal) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, nil
	}
	if raw.LessThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return raw.Round(2), nil
}
