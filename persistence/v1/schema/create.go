package schema

import (
	"context"
	"errors"
	"github.com/ribgsilva/notes/sys"
)

// Create builds the table backing the sql storage driver.
func Create(ctx context.Context) error {
	db := sys.R.Database
	if db == nil {
		return errors.New("create schema: database not configured")
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	_, err := db.ExecContext(dbCtx, schema)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
