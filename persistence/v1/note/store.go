package note

import (
	"github.com/ribgsilva/notes/platform/storage"
	"go.uber.org/zap"
)

// Store reads and writes the notes collection as a single json blob.
type Store struct {
	log     *zap.SugaredLogger
	storage storage.Storage
}

func NewStore(log *zap.SugaredLogger, s storage.Storage) *Store {
	return &Store{log: log, storage: s}
}
