package note

// DefaultColor is used when a note is created without picking a color.
const DefaultColor = "#ffffff"

// Palette lists the background colors a note can have, in display order.
var Palette = []string{DefaultColor, "#ffeb3b", "#8bc34a", "#03a9f4", "#e91e63", "#9c27b0"}

type Note struct {
	Id       int64  `json:"id" example:"1717171717171"`
	Title    string `json:"title" example:"Grocery List"`
	Subtitle string `json:"subtitle" example:"for the weekend"`
	Content  string `json:"content" example:"eggs, milk, bread"`
	Color    string `json:"color" example:"#ffeb3b"`
}

type NewNote struct {
	Title    string `json:"title" example:"Grocery List"`
	Subtitle string `json:"subtitle" example:"for the weekend"`
	Content  string `json:"content" example:"eggs, milk, bread"`
	Color    string `json:"color" example:"#ffeb3b"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ValidColor reports whether c is one of the Palette colors.
func ValidColor(c string) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}
