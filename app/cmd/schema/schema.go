package schema

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes/persistence/v1/schema"
	"github.com/ribgsilva/notes/platform/env"
	"github.com/ribgsilva/notes/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

// Command groups the commands managing the table of the sql storage driver.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the kv_store table used by the sql storage driver",
	}
	cmd.AddCommand(
		run("create", "Creates the schema", "creating schema", "created schema", schema.Create),
		run("delete", "Deletes the schema", "deleting schema", "deleted schema", schema.Drop),
	)
	return cmd
}

func run(use, short, start, done string, op func(ctx context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// empty logger
			log := zap.NewNop().Sugar()
			if err := initVars(log); err != nil {
				return err
			}
			defer func() {
				if err := sys.R.Database.Close(); err != nil {
					log.Errorf("could not close db conn gracefully: %s", err)
				}
			}()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, start)
			if err := op(cmd.Context()); err != nil {
				return fmt.Errorf("failed to %s schema: %w", use, err)
			}
			fmt.Fprintln(out, done)
			return nil
		},
	}
}

func initVars(log *zap.SugaredLogger) error {
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/note")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	// mysql
	var db *sql.DB
	if err := func() error {
		mysqlDb, err := sql.Open("mysql", sys.Configs.Database.ConnectionURL)
		if err != nil {
			return fmt.Errorf("error to connect to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := mysqlDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = mysqlDb
		return nil
	}(); err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
