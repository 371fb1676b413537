package state

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: models.IntID(1), Title: "A", Content: "x"},
		{ID: models.IntID(2), Title: "B", Content: "y"},
	}
}

func newLoadedStore(t *testing.T) *Store {
	t.Helper()
	s := New(ThemeLight)
	s.SetCollection(sampleNotes())
	return s
}

// ── collection ──────────────────────────────────────────────────────────────

func TestSetCollection_CopiesInput(t *testing.T) {
	notes := sampleNotes()
	s := New(ThemeLight)
	s.SetCollection(notes)

	notes[0].Title = "mutated"
	assert.Equal(t, "A", s.Notes()[0].Title)
}

func TestSetCollection_ClearsMissingSelection(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(2))
	require.True(t, s.BeginEdit())

	s.SetCollection(sampleNotes()[:1])

	assert.True(t, s.Selected().IsZero())
	assert.Equal(t, Viewing, s.Mode())
}

func TestSetCollection_KeepsPresentSelectionAndDraft(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))
	require.True(t, s.BeginEdit())
	s.UpdateDraft("A-draft", "x")

	s.SetCollection([]models.Note{{ID: models.IntID(1), Title: "A-server", Content: "x"}})

	assert.Equal(t, models.IntID(1), s.Selected())
	active, ok := s.ActiveNote()
	require.True(t, ok)
	assert.Equal(t, "A-server", active.Title)

	d, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, "A-draft", d.Title)
}

func TestSetCollection_Nil(t *testing.T) {
	s := newLoadedStore(t)
	s.SetCollection(nil)
	assert.NotNil(t, s.Notes())
	assert.Empty(t, s.Notes())
}

func TestReplaceNote(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))

	ok := s.ReplaceNote(models.IntID(1), models.Note{ID: models.IntID(1), Title: "A2", Content: "x"})
	require.True(t, ok)
	assert.Equal(t, "A2", s.Notes()[0].Title)
	assert.Equal(t, models.IntID(1), s.Selected())

	assert.False(t, s.ReplaceNote(models.IntID(9), models.Note{ID: models.IntID(9)}))
	assert.Len(t, s.Notes(), 2)
}

func TestRemoveNote_Selected(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))
	require.True(t, s.BeginEdit())

	s.RemoveNote(models.IntID(1))

	assert.True(t, s.Selected().IsZero())
	_, hasDraft := s.Draft()
	assert.False(t, hasDraft)
	assert.Equal(t, Viewing, s.Mode())
	assert.Equal(t, []models.Note{sampleNotes()[1]}, s.Notes())
}

func TestRemoveNote_NotSelected(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))
	require.True(t, s.BeginEdit())

	s.RemoveNote(models.IntID(2))

	assert.Equal(t, models.IntID(1), s.Selected())
	assert.Equal(t, Editing, s.Mode())
	assert.Len(t, s.Notes(), 1)
}

// ── selection ───────────────────────────────────────────────────────────────

func TestSetSelection_AbsentIDYieldsNone(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))

	s.SetSelection(models.IntID(42))
	assert.True(t, s.Selected().IsZero())

	_, ok := s.ActiveNote()
	assert.False(t, ok)
}

func TestSetSelection_NoneIsIdempotent(t *testing.T) {
	s := newLoadedStore(t)

	s.SetSelection(models.NoteID{})
	first := s.Snapshot()
	s.SetSelection(models.NoteID{})

	assert.Equal(t, first, s.Snapshot())
}

func TestSetSelection_DiscardsDraft(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))
	require.True(t, s.BeginEdit())
	s.UpdateDraft("changed", "changed")

	s.SetSelection(models.IntID(2))

	assert.Equal(t, Viewing, s.Mode())
	assert.Equal(t, sampleNotes(), s.Notes(), "draft never reaches the collection")
}

// ── edit mode ───────────────────────────────────────────────────────────────

func TestBeginEdit_RequiresSelection(t *testing.T) {
	s := newLoadedStore(t)
	assert.False(t, s.BeginEdit())
	assert.Equal(t, Viewing, s.Mode())
}

func TestBeginEdit_ThenDiscardRestoresNote(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))
	before, _ := s.ActiveNote()

	require.True(t, s.BeginEdit())
	s.UpdateDraft("A2", "x2")
	s.DiscardDraft()

	after, _ := s.ActiveNote()
	assert.Equal(t, before, after)
	assert.Equal(t, Viewing, s.Mode())
}

func TestBeginEdit_KeepsExistingDraft(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))
	require.True(t, s.BeginEdit())
	s.UpdateDraft("kept", "x")

	require.True(t, s.BeginEdit())
	d, _ := s.Draft()
	assert.Equal(t, "kept", d.Title)
}

func TestUpdateDraft_NoopWhenViewing(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))
	s.UpdateDraft("x", "y")

	_, ok := s.Draft()
	assert.False(t, ok)
}

// ── flags ───────────────────────────────────────────────────────────────────

func TestLoadingCounters(t *testing.T) {
	s := New(ThemeLight)

	s.BeginList()
	s.BeginList()
	s.EndList()
	assert.True(t, s.NotesLoading(), "one list request is still in flight")
	s.EndList()
	s.EndList()
	assert.False(t, s.NotesLoading())

	s.BeginSave()
	assert.True(t, s.SaveInProgress())
	s.EndSave()
	assert.False(t, s.SaveInProgress())
}

func TestSetError_Overwrites(t *testing.T) {
	s := New(ThemeLight)
	s.SetError("Failed to load notes.")
	s.SetError("Failed to save note.")
	assert.Equal(t, "Failed to save note.", s.Error())

	s.SetError("")
	assert.Empty(t, s.Error())
}

// ── search ──────────────────────────────────────────────────────────────────

func TestVisible_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []models.NoteID
	}{
		{name: "empty shows all", search: "", want: []models.NoteID{models.IntID(1), models.IntID(2)}},
		{name: "title case-insensitive", search: "a", want: []models.NoteID{models.IntID(1)}},
		{name: "content match", search: "Y", want: []models.NoteID{models.IntID(2)}},
		{name: "no match", search: "zzz", want: []models.NoteID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLoadedStore(t)
			s.SetSearch(tt.search)

			got := make([]models.NoteID, 0)
			for _, n := range s.Visible() {
				got = append(got, n.ID)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, sampleNotes(), s.Notes(), "search never mutates the collection")
		})
	}
}

func TestVisible_ClearingSearchRestoresOriginalSet(t *testing.T) {
	s := newLoadedStore(t)
	s.AppendNote(models.Note{ID: models.IntID(3)})
	original := s.Visible()

	s.SetSearch("b")
	require.Len(t, s.Visible(), 1)
	s.SetSearch("")

	assert.Equal(t, original, s.Visible())
}

func TestVisible_EmptyNotesShownWithoutQuery(t *testing.T) {
	s := New(ThemeLight)
	s.SetCollection([]models.Note{{ID: models.IntID(3)}})

	assert.Len(t, s.Visible(), 1)
}

// ── view state ──────────────────────────────────────────────────────────────

func TestToggleThemeAndSidebar(t *testing.T) {
	s := New(ThemeDark)
	assert.Equal(t, ThemeDark, s.Theme())

	s.ToggleTheme()
	assert.Equal(t, ThemeLight, s.Theme())
	s.ToggleTheme()
	assert.Equal(t, ThemeDark, s.Theme())

	assert.False(t, s.SidebarCollapsed())
	s.ToggleSidebar()
	assert.True(t, s.SidebarCollapsed())
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeLight, ParseTheme(""))
}

func TestPendingDelete(t *testing.T) {
	s := newLoadedStore(t)

	s.SetPendingDelete(models.IntID(2))
	id, ok := s.PendingDelete()
	require.True(t, ok)
	assert.Equal(t, models.IntID(2), id)

	s.SetCollection(sampleNotes()[:1])
	_, ok = s.PendingDelete()
	assert.False(t, ok, "pending delete of a vanished note is dropped")

	s.SetPendingDelete(models.IntID(99))
	_, ok = s.PendingDelete()
	assert.False(t, ok)
}

func TestSnapshot_IsSerializableCopy(t *testing.T) {
	s := newLoadedStore(t)
	s.SetSelection(models.IntID(1))
	require.True(t, s.BeginEdit())
	s.SetSearch("a")

	snap := s.Snapshot()
	snap.Draft.Title = "mutated"
	snap.Notes[0].Title = "mutated"

	d, _ := s.Draft()
	assert.Equal(t, "A", d.Title)
	assert.Equal(t, "A", s.Notes()[0].Title)

	raw, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(1), decoded["selected"])
	assert.Equal(t, true, decoded["editing"])
	assert.Equal(t, "light", decoded["theme"])
	assert.Nil(t, decoded["pending_delete"])
	assert.Len(t, decoded["visible"], 1)
}
