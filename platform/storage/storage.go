// Package storage provides the key-value store the notes collection is kept in.
//
// Every driver stores opaque values under string keys and overwrites on Set.
// A missing key is not an error: Get reports it through the found flag.
package storage

import (
	"context"
	"time"
)

// Drivers understood by sys.OpenStorage.
const (
	DriverBlob  = "blob"
	DriverRedis = "redis"
	DriverSQL   = "sql"
)

// Storage is a string keyed value store.
type Storage interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
