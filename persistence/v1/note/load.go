package note

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadAll returns the stored collection in insertion order.
// A missing or empty value is an empty collection. A value that is not a
// json array of notes is logged and returned as an error.
func (s *Store) LoadAll(ctx context.Context) ([]Note, error) {
	data, found, err := s.storage.Get(ctx, notesKey)
	if err != nil {
		s.log.Errorw("load notes", "key", notesKey, "ERROR", err)
		return nil, fmt.Errorf("failed to read %s: %w", notesKey, err)
	}
	if !found || len(data) == 0 {
		return []Note{}, nil
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.log.Errorw("load notes", "status", "error parsing stored notes", "key", notesKey, "ERROR", err)
		return nil, fmt.Errorf("failed to parse %s: %w", notesKey, err)
	}
	if notes == nil {
		notes = []Note{}
	}

	return notes, nil
}
