package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ucb-bank/banking-core/internal/domain"
	"github.com/ucb-bank/banking-core/internal/logger"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM users
	WHERE username = $1
)`

	var exists bool
	if err := q(ctx, r.db).QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		logger.Error("user repository exists check failed", err, logger.Fields{
			"username": username,
		})
		return false, fmt.Errorf("check user exists: %w", err)
	}

	return exists, nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	logger.Info("user repository create", logger.Fields{
		"username": user.Username,
	})

	const query = `
INSERT INTO users (
	username,
	password_hash
) VALUES ($1, $2)
RETURNING created_at`

	if err := q(ctx, r.db).QueryRowContext(
		ctx,
		query,
		user.Username,
		user.PasswordHash,
	).Scan(&user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			logger.Info("user repository duplicate username", logger.Fields{
				"username": user.Username,
			})
			return domain.User{}, domain.ErrRecordAlreadyExists
		}
		logger.Error("user repository create failed", err, logger.Fields{
			"username": user.Username,
		})
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user repository create success", logger.Fields{
		"username": user.Username,
	})

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const query = `
SELECT username, password_hash, created_at
FROM users
WHERE username = $1`

	var user domain.User
	if err := q(ctx, r.db).QueryRowContext(ctx, query, username).Scan(
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("user repository record not found", logger.Fields{
				"username": username,
			})
			return domain.User{}, domain.ErrRecordNotFound
		}
		logger.Error("user repository get by username failed", err, logger.Fields{
			"username": username,
		})
		return domain.User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
