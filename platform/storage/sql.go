package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQL stores values in the kv_store table, see persistence/v1/schema.
type SQL struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSQL uses db for every operation. The pool is owned by the caller.
func NewSQL(db *sql.DB, timeout time.Duration) *SQL {
	return &SQL{db: db, timeout: timeout}
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	dbCtx, dbCancel := withTimeout(ctx, s.timeout)
	defer dbCancel()

	var value string
	err := s.db.QueryRowContext(dbCtx, "SELECT item_value FROM kv_store WHERE item_key = ?", key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to query %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set replaces the row for key inside a single transaction.
func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	dbCtx, dbCancel := withTimeout(ctx, s.timeout)
	defer dbCancel()

	tx, err := s.db.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	if _, err := tx.ExecContext(dbCtx, "DELETE FROM kv_store WHERE item_key = ?", key); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	if _, err := tx.ExecContext(dbCtx, "INSERT INTO kv_store (item_key, item_value) VALUES (?, ?)", key, string(value)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Close() error {
	return nil
}
