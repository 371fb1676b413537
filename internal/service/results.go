package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Operation is the I/O half of a controller call. It talks to the Remote
// Notes Service only and never touches the store, so it may run on any
// goroutine. Its Result is reconciled with [Controller.Apply].
type Operation func(ctx context.Context) Result

// Result is the outcome of an [Operation].
type Result interface {
	result()
}

// ListResult carries the collection fetched by [Controller.Load].
type ListResult struct {
	Notes []models.Note
	Err   error

	seq uint64
}

// CreateResult carries the note created by [Controller.CreateNote].
type CreateResult struct {
	Note models.Note
	Err  error
}

// SaveResult carries the server copy returned by [Controller.SaveNote].
type SaveResult struct {
	ID   models.NoteID
	Note models.Note
	Err  error

	seq uint64
}

// DeleteResult reports the outcome of [Controller.ConfirmDelete].
type DeleteResult struct {
	ID  models.NoteID
	Err error
}

func (ListResult) result()   {}
func (CreateResult) result() {}
func (SaveResult) result()   {}
func (DeleteResult) result() {}
