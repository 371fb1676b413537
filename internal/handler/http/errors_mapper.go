package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

var errorStatusMap = []struct {
	err     error
	status  int
	message string
}{
	// order matters: unavailable errors also wrap the query errors below
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
	{store.ErrInvalidNoteID, http.StatusBadRequest, app.MsgInvalidNoteID},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	status, message := statusFromError(err)
	utils.WriteError(w, message, status)
}
