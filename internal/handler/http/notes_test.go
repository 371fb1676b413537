package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func newTestRouter(repo store.NoteRepository) http.Handler {
	info := models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc")
	return NewHandler(repo, "/api/notes", info, logger.Nop()).Init(0)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestNotes_Lifecycle(t *testing.T) {
	router := newTestRouter(store.NewMemoryNoteRepository())

	rr := do(t, router, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = do(t, router, http.MethodPost, "/api/notes", `{"title":"","content":""}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"","content":""}`, rr.Body.String())

	rr = do(t, router, http.MethodPut, "/api/notes/1", `{"id":1,"title":"Groceries","content":"milk"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"Groceries","content":"milk"}`, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Groceries","content":"milk"}]`, rr.Body.String())

	rr = do(t, router, http.MethodDelete, "/api/notes/1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = do(t, router, http.MethodGet, "/api/notes", "")
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestNotes_CreateWithEmptyBody(t *testing.T) {
	rr := do(t, newTestRouter(store.NewMemoryNoteRepository()), http.MethodPost, "/api/notes", "")

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"","content":""}`, rr.Body.String())
}

func TestNotes_UpdateWithoutBodyIDUsesPathID(t *testing.T) {
	repo := store.NewMemoryNoteRepository()
	router := newTestRouter(repo)
	do(t, router, http.MethodPost, "/api/notes", `{}`)

	rr := do(t, router, http.MethodPut, "/api/notes/1", `{"title":"t","content":"c"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"t","content":"c"}`, rr.Body.String())
}

func TestNotes_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		message string
	}{
		{name: "create invalid json", method: http.MethodPost, target: "/api/notes", body: `{`, message: app.MsgInvalidDataProvided},
		{name: "update non numeric id", method: http.MethodPut, target: "/api/notes/abc", body: `{}`, message: app.MsgInvalidNoteID},
		{name: "update zero id", method: http.MethodPut, target: "/api/notes/0", body: `{}`, message: app.MsgInvalidNoteID},
		{name: "update invalid json", method: http.MethodPut, target: "/api/notes/1", body: `nope`, message: app.MsgInvalidDataProvided},
		{name: "update id mismatch", method: http.MethodPut, target: "/api/notes/1", body: `{"id":2}`, message: app.MsgInvalidDataProvided},
		{name: "update title too long", method: http.MethodPut, target: "/api/notes/1", body: `{"title":"` + strings.Repeat("a", validators.MaxTitleLength+1) + `"}`, message: app.MsgInvalidDataProvided},
		{name: "delete negative id", method: http.MethodDelete, target: "/api/notes/-4", message: app.MsgInvalidNoteID},
	}

	router := newTestRouter(store.NewMemoryNoteRepository())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.message, decodeError(t, rr))
		})
	}
}

func TestNotes_UnknownIDIsNotFound(t *testing.T) {
	router := newTestRouter(store.NewMemoryNoteRepository())

	rr := do(t, router, http.MethodPut, "/api/notes/9", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgNoteNotFound, decodeError(t, rr))

	rr = do(t, router, http.MethodDelete, "/api/notes/9", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNotes_StorageErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "unavailable", err: fmt.Errorf("%w: %w", store.ErrStorageUnavailable, store.ErrExecutingQuery), status: http.StatusServiceUnavailable, message: app.MsgStorageUnavailable},
		{name: "query failure", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), status: http.StatusInternalServerError, message: app.MsgInternalServerError},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, message: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockNoteRepository(ctrl)
			repo.EXPECT().ListNotes(gomock.Any()).Return(nil, tt.err)

			rr := do(t, newTestRouter(repo), http.MethodGet, "/api/notes", "")

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.message, decodeError(t, rr))
		})
	}
}

func TestNotes_CreatePassesRequestToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	repo.EXPECT().
		CreateNote(gomock.Any(), models.NewNoteRequest{Title: "", Content: ""}).
		Return(models.Note{ID: models.IntID(7)}, nil)

	rr := do(t, newTestRouter(repo), http.MethodPost, "/api/notes", `{"title":"","content":""}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":7,"title":"","content":""}`, rr.Body.String())
}

func TestVersion(t *testing.T) {
	rr := do(t, newTestRouter(store.NewMemoryNoteRepository()), http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-01-01","commit":"abc"}`, rr.Body.String())
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	router := newTestRouter(store.NewMemoryNoteRepository())

	rr := do(t, router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, router, http.MethodPatch, "/api/notes", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_SetsTraceIDHeader(t *testing.T) {
	rr := do(t, newTestRouter(store.NewMemoryNoteRepository()), http.MethodGet, "/api/notes", "")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestStatusFromError(t *testing.T) {
	status, msg := statusFromError(fmt.Errorf("wrap: %w", store.ErrInvalidNoteID))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, app.MsgInvalidNoteID, msg)
}
