package note

// notesKey is where the whole collection lives in storage.
const notesKey = "notes"

// Note is the stored shape of a note, one element of the json array under notesKey.
type Note struct {
	Id       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
	Color    string `json:"color"`
}
