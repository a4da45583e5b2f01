package screen

import (
	"context"

	"github.com/ribgsilva/notes/business/v1/note"
	"go.uber.org/zap"
)

// Placeholder is shown instead of the list when nothing matches.
const Placeholder = "No notes found."

// Loader reads the whole collection.
type Loader interface {
	LoadAll(ctx context.Context) ([]note.Note, error)
}

// ListView is the home screen: the loaded notes and the search query.
type ListView struct {
	log    *zap.SugaredLogger
	loader Loader
	notes  []note.Note
	query  string
}

func NewListView(log *zap.SugaredLogger, loader Loader) *ListView {
	return &ListView{log: log, loader: loader, notes: []note.Note{}}
}

func (v *ListView) Header() Header {
	return HomeHeader
}

// Focus reloads the notes. It must run every time the screen becomes active.
// When loading fails the error is logged and the previous notes are kept.
func (v *ListView) Focus(ctx context.Context) error {
	notes, err := v.loader.LoadAll(ctx)
	if err != nil {
		v.log.Errorw("list view", "status", "failed to load notes", "ERROR", err)
		return err
	}
	v.notes = notes
	return nil
}

func (v *ListView) SetQuery(q string) {
	v.query = q
}

func (v *ListView) Query() string {
	return v.query
}

// Visible returns the loaded notes matching the current query.
func (v *ListView) Visible() []note.Note {
	return note.Filter(v.notes, v.query)
}

// Empty reports whether the Placeholder should be shown.
func (v *ListView) Empty() bool {
	return len(v.Visible()) == 0
}
