package note

import (
	"context"
	"strings"

	"github.com/ribgsilva/notes/persistence/v1/note"
)

// Create validates newN and appends it to the stored collection.
// The id is the creation time in milliseconds.
func (c *Core) Create(ctx context.Context, newN NewNote) (Note, error) {
	if strings.TrimSpace(newN.Title) == "" {
		return Note{}, &ValidationError{Field: "title"}
	}
	if strings.TrimSpace(newN.Content) == "" {
		return Note{}, &ValidationError{Field: "content"}
	}
	if newN.Color == "" {
		newN.Color = DefaultColor
	}
	if !ValidColor(newN.Color) {
		return Note{}, &ValidationError{Field: "color"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, err := c.store.LoadAll(ctx)
	if err != nil {
		return Note{}, &StorageError{Op: OpCreate, Err: err}
	}

	for _, e := range existing {
		if e.Title == newN.Title && e.Content == newN.Content {
			return Note{}, &DuplicateError{Title: newN.Title}
		}
	}

	created := Note{
		Id:       c.now().UnixMilli(),
		Title:    newN.Title,
		Subtitle: newN.Subtitle,
		Content:  newN.Content,
		Color:    newN.Color,
	}

	if err := c.store.SaveAll(ctx, append(existing, note.Note(created))); err != nil {
		return Note{}, &StorageError{Op: OpCreate, Err: err}
	}

	c.log.Infow("note created", "id", created.Id, "count", len(existing)+1)
	return created, nil
}
