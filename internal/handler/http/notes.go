// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	notes, err := h.notes.ListNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		h.writeStoreError(w, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// an empty body creates an empty note
	var req models.NewNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.createNote").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("invalid note")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	note, err := h.notes.CreateNote(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		h.writeStoreError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := noteIDFromPath(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidNoteID, http.StatusBadRequest)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// The body id may be omitted; when present it must name the same note.
	if !note.ID.IsZero() && note.ID.String() != strconv.FormatInt(id, 10) {
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	note.ID = models.IntID(id)

	if err := h.validator.Validate(r.Context(), note); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Int64("note_id", id).Msg("invalid note")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	updated, err := h.notes.UpdateNote(r.Context(), note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Int64("note_id", id).Msg("error updating note")
		h.writeStoreError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := noteIDFromPath(r)
	if !ok {
		utils.WriteError(w, app.MsgInvalidNoteID, http.StatusBadRequest)
		return
	}

	if err := h.notes.DeleteNote(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Int64("note_id", id).Msg("error deleting note")
		h.writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.buildInfo, http.StatusOK)
}

func noteIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
