package screen

import (
	"context"

	"github.com/ribgsilva/notes/business/v1/note"
)

// Creator persists a new note.
type Creator interface {
	Create(ctx context.Context, newN note.NewNote) (note.Note, error)
}

// Editor is the add note form.
type Editor struct {
	Title    string
	Subtitle string
	Content  string
	Color    string

	creator Creator
	nav     Navigator
}

func NewEditor(creator Creator, nav Navigator) *Editor {
	e := &Editor{creator: creator, nav: nav}
	e.reset()
	return e
}

func (e *Editor) Header() Header {
	return AddNoteHeader
}

// SelectColor picks one of the note.Palette colors.
func (e *Editor) SelectColor(color string) error {
	if !note.ValidColor(color) {
		return &note.ValidationError{Field: "color"}
	}
	e.Color = color
	return nil
}

// Submit stores the form as a new note, then clears it and goes back home.
// On failure the form is left as it was.
func (e *Editor) Submit(ctx context.Context) (note.Note, error) {
	created, err := e.creator.Create(ctx, note.NewNote{
		Title:    e.Title,
		Subtitle: e.Subtitle,
		Content:  e.Content,
		Color:    e.Color,
	})
	if err != nil {
		return note.Note{}, err
	}

	e.reset()
	e.nav.Navigate(RouteHome)
	return created, nil
}

// Discard clears the form and goes back home without touching storage.
func (e *Editor) Discard() {
	e.reset()
	e.nav.Navigate(RouteHome)
}

func (e *Editor) reset() {
	e.Title = ""
	e.Subtitle = ""
	e.Content = ""
	e.Color = note.DefaultColor
}
