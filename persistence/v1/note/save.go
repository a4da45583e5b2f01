package note

import (
	"context"
	"encoding/json"
	"fmt"
)

// SaveAll overwrites the stored collection with notes.
func (s *Store) SaveAll(ctx context.Context, notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}

	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", notesKey, err)
	}

	if err := s.storage.Set(ctx, notesKey, data); err != nil {
		s.log.Errorw("save notes", "key", notesKey, "count", len(notes), "ERROR", err)
		return fmt.Errorf("failed to write %s: %w", notesKey, err)
	}
	return nil
}
