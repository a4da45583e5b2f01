package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	_ "gocloud.dev/blob/memblob"
)

// Blob keeps one object per key in a gocloud bucket.
type Blob struct {
	bucket  *blob.Bucket
	timeout time.Duration
}

// NewBlob wraps an already opened bucket. Close closes the bucket.
func NewBlob(bucket *blob.Bucket, timeout time.Duration) *Blob {
	return &Blob{bucket: bucket, timeout: timeout}
}

// OpenBlob opens a bucket from a gocloud url such as mem:// or file:///var/notes.
func OpenBlob(ctx context.Context, url string, timeout time.Duration) (*Blob, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("could not open bucket %s: %w", url, err)
	}
	return NewBlob(bucket, timeout), nil
}

// OpenDir opens a bucket backed by a local directory, creating it if needed.
func OpenDir(dir string, timeout time.Duration) (*Blob, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create storage dir %s: %w", dir, err)
	}
	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("could not open storage dir %s: %w", dir, err)
	}
	return NewBlob(bucket, timeout), nil
}

func (b *Blob) Get(ctx context.Context, key string) ([]byte, bool, error) {
	opCtx, cancel := withTimeout(ctx, b.timeout)
	defer cancel()

	data, err := b.bucket.ReadAll(opCtx, key)
	switch {
	case gcerrors.Code(err) == gcerrors.NotFound:
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, true, nil
}

func (b *Blob) Set(ctx context.Context, key string, value []byte) error {
	opCtx, cancel := withTimeout(ctx, b.timeout)
	defer cancel()

	if err := b.bucket.WriteAll(opCtx, key, value, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

func (b *Blob) Close() error {
	return b.bucket.Close()
}
