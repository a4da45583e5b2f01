package note

import (
	"context"
	"strings"
)

// LoadAll returns every stored note in insertion order.
func (c *Core) LoadAll(ctx context.Context) ([]Note, error) {
	stored, err := c.store.LoadAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: OpList, Err: err}
	}

	notes := make([]Note, 0, len(stored))
	for _, n := range stored {
		notes = append(notes, Note(n))
	}
	return notes, nil
}

// List returns the stored notes whose title matches query, see Filter.
func (c *Core) List(ctx context.Context, query string) ([]Note, error) {
	notes, err := c.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(notes, query), nil
}

// Filter keeps the notes whose title contains query, ignoring case.
// Order is preserved and an empty query keeps everything.
func Filter(notes []Note, query string) []Note {
	q := strings.ToLower(query)
	filtered := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
