package main

import (
	"context"
	"log"
	"time"

	"github.com/ucb-bank/banking-core/internal/adapter/repository/postgres"
	"github.com/ucb-bank/banking-core/internal/app"
	"github.com/ucb-bank/banking-core/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		_ = db.Close()
		log.Fatalf("run migrations: %v", err)
	}

	application := app.New(db)
	defer application.Close()

	log.Println("banking core initialized; account and credential services ready")
}
