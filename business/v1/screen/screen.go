// Package screen holds the state of the two screens of the app, the note
// list and the add note form, independent of how they are drawn.
package screen

// Routes of the app.
const (
	RouteHome    = "/"
	RouteAddNote = "/addNote"
)

// Navigator moves the app to another route.
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a func into a Navigator.
type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) {
	f(route)
}

// Header describes the bar drawn at the top of a screen.
type Header struct {
	Title           string
	BackgroundColor string
	TextColor       string
}

var (
	HomeHeader    = Header{Title: "Home", BackgroundColor: "#50C878", TextColor: "#fff"}
	AddNoteHeader = Header{Title: "Add Note", BackgroundColor: "#50C878", TextColor: "#fff"}
)
