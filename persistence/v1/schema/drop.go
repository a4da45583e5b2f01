package schema

import (
	"context"
	"errors"
	"github.com/ribgsilva/notes/sys"
)

func Drop(ctx context.Context) error {
	db := sys.R.Database
	if db == nil {
		return errors.New("drop schema: database not configured")
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	_, err := db.ExecContext(dbCtx, dropSchema)
	if err != nil {
		return errors.New("drop schema: " + err.Error())
	}

	return nil
}
