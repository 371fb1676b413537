package state

import "github.com/MKhiriev/go-notes-keeper/models"

// Theme is the colour scheme of the view layer.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a configuration value to a Theme; anything but "dark" is
// light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Mode is the edit-mode state of the active note.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

// Draft is the locally owned edit buffer of a note.
type Draft struct {
	ID      models.NoteID `json:"id"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
}

// Note converts the draft into the full field set sent on save.
func (d Draft) Note() models.Note {
	return models.Note{ID: d.ID, Title: d.Title, Content: d.Content}
}

// Snapshot is a serializable copy of the store.
type Snapshot struct {
	Notes            []models.Note `json:"notes"`
	Visible          []models.Note `json:"visible"`
	Selected         models.NoteID `json:"selected"`
	Draft            *Draft        `json:"draft,omitempty"`
	Editing          bool          `json:"editing"`
	NotesLoading     bool          `json:"notes_loading"`
	SaveInProgress   bool          `json:"save_in_progress"`
	Error            string        `json:"error"`
	Theme            Theme         `json:"theme"`
	Search           string        `json:"search"`
	SidebarCollapsed bool          `json:"sidebar_collapsed"`
	PendingDelete    models.NoteID `json:"pending_delete"`
}
