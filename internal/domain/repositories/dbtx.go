package repositories

import (
	"context"
)

// txContextKey is the type for transaction context keys
type txContextKey string

// txKey is the context key for storing the active transaction
const txKey txContextKey = "store_tx"

// SetTx stores a driver transaction (pgx.Tx or *sql.Tx) in the context
func SetTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTx retrieves the driver transaction from the context.
// Returns nil if no transaction is present; callers type-assert to their driver's Tx.
func GetTx(ctx context.Context) any {
	return ctx.Value(txKey)
}
