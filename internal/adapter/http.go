package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace id generated by the client.
const TraceIDHeader = "X-Trace-ID"

type httpNotesAdapter struct {
	client   *utils.HTTPClient
	basePath string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs an HTTP/REST implementation of [NotesAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpNotesAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		basePath: normalizeBasePath(adapterCfg.BasePath),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		p = config.DefaultBasePath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}

// List implements [NotesAdapter]. GET {base}.
func (h *httpNotesAdapter) List(ctx context.Context) ([]models.Note, error) {
	resp, err := h.request(ctx).Get(h.basePath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// Create implements [NotesAdapter]. POST {base} with empty title and content.
func (h *httpNotesAdapter) Create(ctx context.Context) (models.Note, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewNoteRequest{}).
		Post(h.basePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var created models.Note
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Note{}, fmt.Errorf("decode create response: %w", err)
	}
	if created.ID.IsZero() {
		return models.Note{}, fmt.Errorf("decode create response: %w", ErrEmptyNoteID)
	}

	return created, nil
}

// Update implements [NotesAdapter]. PUT {base}/{id} with the full note.
func (h *httpNotesAdapter) Update(ctx context.Context, note models.Note) (models.Note, error) {
	if note.ID.IsZero() {
		return models.Note{}, ErrEmptyNoteID
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		Put(h.notePath(note.ID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var updated models.Note
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Note{}, fmt.Errorf("decode update response: %w", err)
	}

	return updated, nil
}

// Delete implements [NotesAdapter]. DELETE {base}/{id}; the body is ignored.
func (h *httpNotesAdapter) Delete(ctx context.Context, id models.NoteID) error {
	if id.IsZero() {
		return ErrEmptyNoteID
	}

	resp, err := h.request(ctx).Delete(h.notePath(id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNotesAdapter) notePath(id models.NoteID) string {
	return h.basePath + "/" + url.PathEscape(id.String())
}

func (h *httpNotesAdapter) request(ctx context.Context) *resty.Request {
	traceID := h.traceIDs.Generate()
	h.logger.Debug().Str("trace_id", traceID).Msg("sending notes request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
}
