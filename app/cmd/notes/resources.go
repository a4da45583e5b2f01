package notes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes/business/v1/note"
	persistence "github.com/ribgsilva/notes/persistence/v1/note"
	"github.com/ribgsilva/notes/platform/env"
	"github.com/ribgsilva/notes/platform/storage"
	"github.com/ribgsilva/notes/sys"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

var verbose bool

func newLogger() (*zap.SugaredLogger, error) {
	if !verbose {
		return zap.NewNop().Sugar(), nil
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

// initVars loads the configs and opens every resource the notes commands need.
// The returned func releases them.
func initVars(log *zap.SugaredLogger) (func(), error) {
	sys.Configs.Storage.Driver = env.OrDefault(log, "STORAGE_DRIVER", storage.DriverBlob)
	sys.Configs.Storage.Dir = env.OrDefault(log, "STORAGE_DIR", ".notes")
	sys.Configs.Storage.BucketURL = env.OrDefault(log, "STORAGE_BUCKET_URL", "")
	sys.Configs.Storage.OperationTimeout = env.DurationDefault(log, "STORAGE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Storage.CacheEnabled = env.BoolDefault(log, "STORAGE_CACHE_ENABLED", "f")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/note")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	sys.Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")

	// logger
	sys.R.Log = log

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// mysql
	if sys.NeedsDatabase() {
		db, err := sql.Open("mysql", sys.Configs.Database.ConnectionURL)
		if err != nil {
			return cleanup, fmt.Errorf("error to connect to database: %w", err)
		}
		closers = append(closers, func() { _ = db.Close() })
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := db.PingContext(dbCtx); err != nil {
			return cleanup, fmt.Errorf("could not connect to database: %w", err)
		}
		sys.R.Database = db
	}

	// redis
	if sys.NeedsCache() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     sys.Configs.Cache.ConnectionURL,
			Username: sys.Configs.Cache.User,
			Password: sys.Configs.Cache.Pass,
		})
		closers = append(closers, func() { _ = rdb.Close() })
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return cleanup, fmt.Errorf("could not connect to redis: %w", err)
		}
		sys.R.Cache = rdb
	}

	st, err := sys.OpenStorage(context.Background())
	if err != nil {
		return cleanup, fmt.Errorf("could not open storage: %w", err)
	}
	closers = append(closers, func() {
		if err := st.Close(); err != nil {
			log.Errorf("could not close storage gracefully: %s", err)
		}
	})
	sys.R.Storage = st
	sys.R.Notes = note.NewCore(log, persistence.NewStore(log, st))

	return cleanup, nil
}
