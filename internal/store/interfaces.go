// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists notes for the reference notes server.
//
// Two [NoteRepository] implementations are provided: an in-memory one
// ([NewMemoryNoteRepository]) used by default and in integration tests, and a
// SQL one ([NewNoteRepository]) that runs on SQLite or PostgreSQL through
// database/sql with queries built by squirrel.
package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_repository_mock.go -package=mock

// NoteRepository stores notes keyed by server-assigned integer ids. List
// order is ascending id, which is creation order.
type NoteRepository interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, req models.NewNoteRequest) (models.Note, error)
	// UpdateNote overwrites title and content; returns ErrNoteNotFound for
	// unknown ids.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	// DeleteNote returns ErrNoteNotFound for unknown ids.
	DeleteNote(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a driver error means the database is
// unreachable.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
