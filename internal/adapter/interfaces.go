// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the notes client and
// the Remote Notes Service.
//
// The primary abstraction is [NotesAdapter], which decouples the sync
// controller from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPNotesAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_adapter_mock.go -package=mock

// NotesAdapter defines the four operations of the Remote Notes Service.
// Every call is attempted once; implementations never retry.
type NotesAdapter interface {
	// List fetches the whole collection in server order.
	List(ctx context.Context) ([]models.Note, error)

	// Create asks the server for a new note with empty title and content and
	// returns the canonical note carrying the server-assigned id.
	Create(ctx context.Context) (models.Note, error)

	// Update sends the full note (id, title, content) and returns the
	// server's canonical copy.
	Update(ctx context.Context, note models.Note) (models.Note, error)

	// Delete removes the note with the given id. The response body is
	// ignored.
	Delete(ctx context.Context, id models.NoteID) error
}
