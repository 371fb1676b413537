package state

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Store is the Note State Store. The zero value is not usable; call [New].
type Store struct {
	notes    []models.Note
	selected models.NoteID
	draft    *Draft

	listInFlight int
	saveInFlight int
	lastError    string

	theme            Theme
	search           string
	sidebarCollapsed bool
	pendingDelete    models.NoteID
}

// New returns an empty store with the given initial theme.
func New(theme Theme) *Store {
	return &Store{
		notes: []models.Note{},
		theme: ParseTheme(string(theme)),
	}
}

// ── collection ──────────────────────────────────────────────────────────────

// Notes returns a copy of the collection in server order.
func (s *Store) Notes() []models.Note {
	return slices.Clone(s.notes)
}

// SetCollection replaces the entire collection. A selection or pending
// delete that no longer resolves is cleared; a draft of a vanished note is
// discarded.
func (s *Store) SetCollection(notes []models.Note) {
	s.notes = slices.Clone(notes)
	if s.notes == nil {
		s.notes = []models.Note{}
	}

	if !s.selected.IsZero() && s.indexOf(s.selected) < 0 {
		s.selected = models.NoteID{}
		s.draft = nil
	}
	if !s.pendingDelete.IsZero() && s.indexOf(s.pendingDelete) < 0 {
		s.pendingDelete = models.NoteID{}
	}
}

// AppendNote adds a server-confirmed note at the end of the collection.
func (s *Store) AppendNote(note models.Note) {
	s.notes = append(s.notes, note)
}

// ReplaceNote swaps the entry with the given id for note. It reports false
// when no entry has that id. The selection follows the replacement.
func (s *Store) ReplaceNote(id models.NoteID, note models.Note) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.notes[i] = note
	if s.selected == id {
		s.selected = note.ID
	}
	return true
}

// RemoveNote drops the note from the collection. Removing the selected note
// clears the selection, the draft and edit mode.
func (s *Store) RemoveNote(id models.NoteID) {
	s.notes = slices.DeleteFunc(s.notes, func(n models.Note) bool { return n.ID == id })
	if s.selected == id {
		s.selected = models.NoteID{}
		s.draft = nil
	}
	if s.pendingDelete == id {
		s.pendingDelete = models.NoteID{}
	}
}

// Note looks a note up by id.
func (s *Store) Note(id models.NoteID) (models.Note, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, false
	}
	return s.notes[i], true
}

func (s *Store) indexOf(id models.NoteID) int {
	if id.IsZero() {
		return -1
	}
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

// ── selection & draft ───────────────────────────────────────────────────────

// SetSelection makes id the active note. An absent or zero id yields no
// selection. The draft is always discarded and edit mode exits.
func (s *Store) SetSelection(id models.NoteID) {
	s.draft = nil
	if s.indexOf(id) < 0 {
		s.selected = models.NoteID{}
		return
	}
	s.selected = id
}

// Selected returns the selected id; the zero id means none.
func (s *Store) Selected() models.NoteID {
	return s.selected
}

// ActiveNote returns the selected note from the collection.
func (s *Store) ActiveNote() (models.Note, bool) {
	return s.Note(s.selected)
}

// BeginEdit enters edit mode with a draft copied from the active note. It
// reports false when nothing is selected. Calling it while already editing
// keeps the current draft.
func (s *Store) BeginEdit() bool {
	note, ok := s.ActiveNote()
	if !ok {
		return false
	}
	if s.draft == nil {
		s.draft = &Draft{ID: note.ID, Title: note.Title, Content: note.Content}
	}
	return true
}

// UpdateDraft overwrites the draft fields. It is a no-op outside edit mode.
func (s *Store) UpdateDraft(title, content string) {
	if s.draft == nil {
		return
	}
	s.draft.Title = title
	s.draft.Content = content
}

// DiscardDraft drops the draft and returns to viewing.
func (s *Store) DiscardDraft() {
	s.draft = nil
}

// Draft returns a copy of the draft.
func (s *Store) Draft() (Draft, bool) {
	if s.draft == nil {
		return Draft{}, false
	}
	return *s.draft, true
}

// Mode reports whether the active note is being edited.
func (s *Store) Mode() Mode {
	if s.draft != nil {
		return Editing
	}
	return Viewing
}

// ── flags ───────────────────────────────────────────────────────────────────

// BeginList and EndList bracket one in-flight list request.
func (s *Store) BeginList() { s.listInFlight++ }

func (s *Store) EndList() {
	if s.listInFlight > 0 {
		s.listInFlight--
	}
}

// NotesLoading reports whether any list request is in flight.
func (s *Store) NotesLoading() bool { return s.listInFlight > 0 }

// BeginSave and EndSave bracket one in-flight create or save request.
func (s *Store) BeginSave() { s.saveInFlight++ }

func (s *Store) EndSave() {
	if s.saveInFlight > 0 {
		s.saveInFlight--
	}
}

// SaveInProgress reports whether any create or save request is in flight.
func (s *Store) SaveInProgress() bool { return s.saveInFlight > 0 }

// SetError sets the single user-visible error; an empty message clears it.
// A new message overwrites the previous one.
func (s *Store) SetError(message string) {
	s.lastError = message
}

// Error returns the current error message, empty when none.
func (s *Store) Error() string {
	return s.lastError
}

// ── view state ──────────────────────────────────────────────────────────────

// SetSearch stores the search text. The collection is untouched.
func (s *Store) SetSearch(text string) {
	s.search = text
}

func (s *Store) Search() string { return s.search }

// Visible returns the notes whose title or content contains the search text,
// case-insensitively, in collection order. An empty search shows every note.
func (s *Store) Visible() []models.Note {
	return FilterNotes(s.notes, s.search)
}

// FilterNotes returns a new slice with the notes matching query.
func FilterNotes(notes []models.Note, query string) []models.Note {
	out := make([]models.Note, 0, len(notes))
	if query == "" {
		return append(out, notes...)
	}

	q := strings.ToLower(query)
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) ToggleTheme() {
	if s.theme == ThemeDark {
		s.theme = ThemeLight
		return
	}
	s.theme = ThemeDark
}

func (s *Store) Theme() Theme { return s.theme }

func (s *Store) ToggleSidebar() {
	s.sidebarCollapsed = !s.sidebarCollapsed
}

func (s *Store) SidebarCollapsed() bool { return s.sidebarCollapsed }

// SetPendingDelete records the note awaiting delete confirmation. A zero or
// absent id clears it.
func (s *Store) SetPendingDelete(id models.NoteID) {
	if s.indexOf(id) < 0 {
		s.pendingDelete = models.NoteID{}
		return
	}
	s.pendingDelete = id
}

// PendingDelete returns the note awaiting confirmation.
func (s *Store) PendingDelete() (models.NoteID, bool) {
	return s.pendingDelete, !s.pendingDelete.IsZero()
}

// Snapshot returns a deep copy of the state.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Notes:            s.Notes(),
		Visible:          s.Visible(),
		Selected:         s.selected,
		Editing:          s.draft != nil,
		NotesLoading:     s.NotesLoading(),
		SaveInProgress:   s.SaveInProgress(),
		Error:            s.lastError,
		Theme:            s.theme,
		Search:           s.search,
		SidebarCollapsed: s.sidebarCollapsed,
		PendingDelete:    s.pendingDelete,
	}
	if s.draft != nil {
		d := *s.draft
		snap.Draft = &d
	}
	return snap
}
