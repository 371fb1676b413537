// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used by
// the notes client and the reference notes server.
//
// The client Msg* constants are the exact user-facing error strings shown in
// the error banner. The server Msg* constants are written into the "error"
// field of non-2xx response bodies.
package app

// User-facing client messages. Exactly one of these is shown at a time.
const (
	// MsgFailedToLoadNotes is shown when fetching the collection fails.
	MsgFailedToLoadNotes = "Failed to load notes."

	// MsgFailedToCreateNote is shown when a creation request fails.
	MsgFailedToCreateNote = "Failed to create note."

	// MsgFailedToSaveNote is shown when an update request fails.
	MsgFailedToSaveNote = "Failed to save note."

	// MsgFailedToDeleteNote is shown when a deletion request fails.
	MsgFailedToDeleteNote = "Failed to delete note."
)

// View placeholders.
const (
	MsgUntitledListItem = "(Untitled Note)"
	MsgUntitled         = "(Untitled)"
	MsgNoContent        = "(No content)"
	MsgNoNotes          = "No notes"
	MsgLoadingNotes     = "Loading notes..."
	MsgNoSelection      = "Select or create a note to get started."
	MsgConfirmDelete    = "Delete this note?"
	MsgSaving           = "Saving..."
	MsgCopied           = "Copied to clipboard"
	MsgCopyFailed       = "Copy failed"
)

// Server response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or the path id does not match the body id.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidNoteID is returned when the {id} path segment is not an
	// integer.
	MsgInvalidNoteID = "invalid note id"

	// MsgNoteNotFound is returned when no note has the requested id.
	MsgNoteNotFound = "note not found"

	// MsgStorageUnavailable is returned when the backing database cannot be
	// reached.
	MsgStorageUnavailable = "storage unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
