package note

import (
	"context"
	"sync"
	"time"

	"github.com/ribgsilva/notes/persistence/v1/note"
	"go.uber.org/zap"
)

// Store is the persistence the Core works on.
type Store interface {
	LoadAll(ctx context.Context) ([]note.Note, error)
	SaveAll(ctx context.Context, notes []note.Note) error
}

// Core holds the note operations. Create is serialized so the duplicate
// check and the write see the same collection.
type Core struct {
	log   *zap.SugaredLogger
	store Store
	now   func() time.Time
	mu    sync.Mutex
}

type Option func(*Core)

// WithClock replaces time.Now, used for note ids.
func WithClock(now func() time.Time) Option {
	return func(c *Core) {
		c.now = now
	}
}

func NewCore(log *zap.SugaredLogger, store Store, opts ...Option) *Core {
	c := &Core{
		log:   log,
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
