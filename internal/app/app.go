package app

import (
	"database/sql"

	"github.com/ucb-bank/banking-core/internal/adapter/repository/postgres"
	"github.com/ucb-bank/banking-core/internal/usecase/services"
)

// App bundles the wired services the presentation layer consumes.
type App struct {
	db *sql.DB

	UserService *services.UserService
	BankService *services.BankService
}

// New wires the postgres repositories and the tx manager into the user and
// bank services over the given connection.
func New(db *sql.DB) *App {
	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	txManager := postgres.NewTxManager(db)

	return &App{
		db:          db,
		UserService: services.NewUserService(userRepo),
		BankService: services.NewBankService(accountRepo, transactionRepo, txManager),
	}
}

func (a *App) Close() error {
	return a.db.Close()
}
