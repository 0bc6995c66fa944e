package domain

import "context"

type UserRepository interface {
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
