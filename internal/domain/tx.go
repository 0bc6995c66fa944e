package domain

import "context"

// TxRunner executes fn inside a single datastore transaction. Repository
// calls made with the context passed to fn share that transaction, so a
// balance update and its matching log entry commit or roll back together.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
