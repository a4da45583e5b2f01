package storage

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	_ "github.com/proullon/ramsql/driver"
)

// exercise runs the behaviour every driver must share.
func exercise(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, found, "missing key should not be found")

	require.NoError(t, s.Set(ctx, "notes", []byte(`[{"id":1}]`)))
	got, found, err := s.Get(ctx, "notes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":1}]`, string(got))

	require.NoError(t, s.Set(ctx, "notes", []byte(`[]`)))
	got, found, err = s.Get(ctx, "notes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[]`, string(got), "set should overwrite")
}

func TestBlobMem(t *testing.T) {
	b, err := OpenBlob(context.Background(), "mem://", time.Second)
	require.NoError(t, err)
	defer b.Close()

	exercise(t, b)
}

func TestBlobDir(t *testing.T) {
	dir := t.TempDir()
	b, err := OpenDir(dir+"/nested", time.Second)
	require.NoError(t, err)

	exercise(t, b)
	require.NoError(t, b.Close())

	reopened, err := OpenDir(dir+"/nested", time.Second)
	require.NoError(t, err)
	defer reopened.Close()

	got, found, err := reopened.Get(context.Background(), "notes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[]`, string(got))
}

func TestRedis(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()

	exercise(t, NewRedis(rdb, time.Second))
	assert.True(t, s.Exists("notes"))
}

func TestSQL(t *testing.T) {
	db, err := sql.Open("ramsql", fmt.Sprintf("StorageTest-%d", time.Now().UnixNano()))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE kv_store (item_key TEXT, item_value TEXT)`)
	require.NoError(t, err)

	exercise(t, NewSQL(db, time.Second))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv_store WHERE item_key = 'notes'`).Scan(&count))
	assert.Equal(t, 1, count, "set should keep a single row per key")
}

func TestCached(t *testing.T) {
	ctx := context.Background()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()

	primary, err := OpenBlob(ctx, "mem://", time.Second)
	require.NoError(t, err)

	c := NewCached(zap.NewNop().Sugar(), primary, rdb, time.Hour, time.Second)
	defer c.Close()

	exercise(t, c)
	require.True(t, s.Exists("storage.notes"), "set should populate the cache")

	// reads are served from the cache while it holds the key
	require.NoError(t, s.Set("storage.notes", `["cached"]`))
	got, found, err := c.Get(ctx, "notes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `["cached"]`, string(got))

	// a cold cache falls back to the primary and is filled again
	s.FlushAll()
	got, found, err = c.Get(ctx, "notes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[]`, string(got))
	assert.True(t, s.Exists("storage.notes"))

	// an unreachable cache never fails the operation
	s.Close()
	require.NoError(t, c.Set(ctx, "notes", []byte(`[{"id":2}]`)))
	got, found, err = c.Get(ctx, "notes")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":2}]`, string(got))
}
