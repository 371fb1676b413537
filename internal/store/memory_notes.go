package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/models"
)

type memoryNoteRepository struct {
	mu     sync.Mutex
	notes  []models.Note
	nextID int64
}

// NewMemoryNoteRepository returns an empty, goroutine-safe in-memory
// repository. Ids start at 1.
func NewMemoryNoteRepository() NoteRepository {
	return &memoryNoteRepository{nextID: 1}
}

func (m *memoryNoteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append(make([]models.Note, 0, len(m.notes)), m.notes...), nil
}

func (m *memoryNoteRepository) CreateNote(ctx context.Context, req models.NewNoteRequest) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	note := models.Note{ID: models.IntID(m.nextID), Title: req.Title, Content: req.Content}
	m.nextID++
	m.notes = append(m.notes, note)

	return note, nil
}

func (m *memoryNoteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.notes, func(n models.Note) bool { return n.ID == note.ID })
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: id %s", ErrNoteNotFound, note.ID)
	}
	m.notes[i] = note

	return note, nil
}

func (m *memoryNoteRepository) DeleteNote(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.notes)
	m.notes = slices.DeleteFunc(m.notes, func(n models.Note) bool { return n.ID == models.IntID(id) })
	if len(m.notes) == before {
		return fmt.Errorf("%w: id %d", ErrNoteNotFound, id)
	}

	return nil
}
