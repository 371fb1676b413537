// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the Sync Controller: it turns user intents into
// Remote Notes Service calls and reconciles the responses into the Note
// State Store.
//
// Every network-bound intent is split in two. The intent method runs the
// synchronous part (flags, sequencing, error reset) and returns an
// [Operation]; the caller runs the operation wherever it likes and hands the
// [Result] back to [Controller.Apply] on the goroutine that owns the store.
// [Controller.Run] chains both halves for callers without an event loop.
package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesController is the intent surface consumed by the view layer.
type NotesController interface {
	// Store exposes read access to the state for rendering.
	Store() *state.Store

	// Load fetches the whole collection.
	Load() Operation
	// CreateNote creates an empty note, selects it and enters edit mode.
	CreateNote() Operation
	// SaveNote sends the draft's full field set. It returns nil when there
	// is nothing to save.
	SaveNote(draft state.Draft) Operation
	// RequestDelete asks for confirmation before deleting id.
	RequestDelete(id models.NoteID)
	// ConfirmDelete sends the pending deletion. It returns nil when nothing
	// is pending.
	ConfirmDelete() Operation
	// CancelDelete drops the pending deletion without a request.
	CancelDelete()

	SelectNote(id models.NoteID)
	StartEdit() bool
	UpdateDraft(title, content string)
	CancelEdit()
	UpdateSearch(text string)
	ToggleTheme()
	ToggleSidebar()

	// Apply reconciles a result into the store and returns the controller
	// error, if any. The user-visible message has already been set.
	Apply(res Result) error
	// Run executes op and applies its result.
	Run(ctx context.Context, op Operation) error
}
