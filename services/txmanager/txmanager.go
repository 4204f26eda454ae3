package txmanager

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	dbtx "guildbot/db/tx"
)

// TransactionManager runs units of work inside a database transaction carried
// on the context, so repositories pick it up transparently.
type TransactionManager struct {
	db *sqlx.DB
}

func NewTransactionManager(db *sqlx.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction executes fn within a transaction. Nested calls reuse the
// transaction already on the context instead of opening a second one.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := dbtx.TransactionFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := tm.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Printf("❌ Failed to rollback after panic: %v", rollbackErr)
			}
			panic(r)
		}
	}()

	if err := fn(dbtx.WithTransaction(ctx, tx)); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("transaction failed: %w, rollback failed: %v", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
