package sys

import (
	"context"
	"errors"
	"fmt"

	"github.com/ribgsilva/notes/platform/storage"
)

// NeedsDatabase reports whether the configured storage requires R.Database.
func NeedsDatabase() bool {
	return Configs.Storage.Driver == storage.DriverSQL
}

// NeedsCache reports whether the configured storage requires R.Cache.
func NeedsCache() bool {
	return Configs.Storage.Driver == storage.DriverRedis || Configs.Storage.CacheEnabled
}

// OpenStorage builds the storage selected by Configs.Storage using the
// resources already set in R.
func OpenStorage(ctx context.Context) (storage.Storage, error) {
	timeout := Configs.Storage.OperationTimeout

	var s storage.Storage
	switch Configs.Storage.Driver {
	case storage.DriverBlob:
		if Configs.Storage.BucketURL != "" {
			b, err := storage.OpenBlob(ctx, Configs.Storage.BucketURL, timeout)
			if err != nil {
				return nil, err
			}
			s = b
			break
		}
		b, err := storage.OpenDir(Configs.Storage.Dir, timeout)
		if err != nil {
			return nil, err
		}
		s = b
	case storage.DriverRedis:
		if R.Cache == nil {
			return nil, errors.New("redis storage requires a cache connection")
		}
		return storage.NewRedis(R.Cache, timeout), nil
	case storage.DriverSQL:
		if R.Database == nil {
			return nil, errors.New("sql storage requires a database connection")
		}
		s = storage.NewSQL(R.Database, timeout)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", Configs.Storage.Driver)
	}

	if Configs.Storage.CacheEnabled && R.Cache != nil {
		s = storage.NewCached(R.Log, s, R.Cache, Configs.Cache.CacheTTL, Configs.Cache.OperationTimeout)
	}
	return s, nil
}
