package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Controller is the Sync Controller. Like the store it wraps, it must only
// be used from one goroutine; the Operations it returns are the exception.
type Controller struct {
	store   *state.Store
	adapter adapter.NotesAdapter

	listIssued  uint64
	listApplied uint64
	saveIssued  map[models.NoteID]uint64

	logger *logger.Logger
}

var _ NotesController = (*Controller)(nil)

// NewController wires a controller to its store and transport.
func NewController(store *state.Store, notesAdapter adapter.NotesAdapter, logger *logger.Logger) *Controller {
	return &Controller{
		store:      store,
		adapter:    notesAdapter,
		saveIssued: make(map[models.NoteID]uint64),
		logger:     logger,
	}
}

func (c *Controller) Store() *state.Store {
	return c.store
}

// ReselectDiscardsDraft decides whether moving the selection from current to
// next may silently drop an unsaved draft. It currently always allows it.
func ReselectDiscardsDraft(current, next models.NoteID) bool {
	return true
}

// ── network-bound intents ───────────────────────────────────────────────────

func (c *Controller) Load() Operation {
	c.store.BeginList()
	c.listIssued++
	seq := c.listIssued

	return func(ctx context.Context) Result {
		notes, err := c.adapter.List(ctx)
		return ListResult{Notes: notes, Err: err, seq: seq}
	}
}

func (c *Controller) CreateNote() Operation {
	c.store.SetError("")
	c.store.BeginSave()

	return func(ctx context.Context) Result {
		note, err := c.adapter.Create(ctx)
		return CreateResult{Note: note, Err: err}
	}
}

func (c *Controller) SaveNote(draft state.Draft) Operation {
	if draft.ID.IsZero() {
		return nil
	}

	c.store.SetError("")
	c.store.BeginSave()
	c.saveIssued[draft.ID]++
	seq := c.saveIssued[draft.ID]
	note := draft.Note()

	return func(ctx context.Context) Result {
		saved, err := c.adapter.Update(ctx, note)
		return SaveResult{ID: note.ID, Note: saved, Err: err, seq: seq}
	}
}

func (c *Controller) RequestDelete(id models.NoteID) {
	c.store.SetPendingDelete(id)
}

func (c *Controller) ConfirmDelete() Operation {
	id, ok := c.store.PendingDelete()
	if !ok {
		return nil
	}

	c.store.SetPendingDelete(models.NoteID{})
	c.store.SetError("")

	return func(ctx context.Context) Result {
		return DeleteResult{ID: id, Err: c.adapter.Delete(ctx, id)}
	}
}

func (c *Controller) CancelDelete() {
	c.store.SetPendingDelete(models.NoteID{})
}

// ── local intents ───────────────────────────────────────────────────────────

func (c *Controller) SelectNote(id models.NoteID) {
	if c.store.Mode() == state.Editing && !ReselectDiscardsDraft(c.store.Selected(), id) {
		return
	}
	c.store.SetSelection(id)
}

func (c *Controller) StartEdit() bool {
	return c.store.BeginEdit()
}

func (c *Controller) UpdateDraft(title, content string) {
	c.store.UpdateDraft(title, content)
}

// CancelEdit discards the draft. No request is sent.
func (c *Controller) CancelEdit() {
	c.store.DiscardDraft()
}

func (c *Controller) UpdateSearch(text string) {
	c.store.SetSearch(text)
}

func (c *Controller) ToggleTheme() {
	c.store.ToggleTheme()
}

func (c *Controller) ToggleSidebar() {
	c.store.ToggleSidebar()
}

// ── reconciliation ──────────────────────────────────────────────────────────

func (c *Controller) Run(ctx context.Context, op Operation) error {
	if op == nil {
		return nil
	}
	return c.Apply(op(ctx))
}

func (c *Controller) Apply(res Result) error {
	switch r := res.(type) {
	case ListResult:
		return c.applyList(r)
	case CreateResult:
		return c.applyCreate(r)
	case SaveResult:
		return c.applySave(r)
	case DeleteResult:
		return c.applyDelete(r)
	default:
		return nil
	}
}

func (c *Controller) applyList(r ListResult) error {
	c.store.EndList()

	if r.seq < c.listApplied {
		c.logger.Debug().Uint64("seq", r.seq).Msg("dropping stale list response")
		return nil
	}
	if r.Err != nil {
		return c.fail(fmt.Errorf("%w: %w", ErrFetchListFailed, r.Err))
	}

	c.listApplied = r.seq
	c.store.SetCollection(r.Notes)
	return nil
}

func (c *Controller) applyCreate(r CreateResult) error {
	c.store.EndSave()

	if r.Err != nil {
		return c.fail(fmt.Errorf("%w: %w", ErrCreateFailed, r.Err))
	}

	c.store.AppendNote(r.Note)
	c.store.SetSelection(r.Note.ID)
	c.store.BeginEdit()
	return nil
}

func (c *Controller) applySave(r SaveResult) error {
	c.store.EndSave()

	if r.seq < c.saveIssued[r.ID] {
		c.logger.Debug().Str("note_id", r.ID.String()).Uint64("seq", r.seq).Msg("dropping stale save response")
		return nil
	}

	if r.Err != nil {
		return c.fail(fmt.Errorf("%w: note %s: %w", ErrSaveFailed, r.ID, r.Err))
	}

	stillSelected := c.store.Selected() == r.ID
	if !c.store.ReplaceNote(r.ID, r.Note) {
		c.logger.Warn().Str("note_id", r.ID.String()).Msg("saved note is no longer in the collection")
		return nil
	}
	if stillSelected {
		c.store.SetSelection(r.Note.ID)
	}
	return nil
}

func (c *Controller) applyDelete(r DeleteResult) error {
	if r.Err != nil {
		return c.fail(fmt.Errorf("%w: note %s: %w", ErrDeleteFailed, r.ID, r.Err))
	}

	c.store.RemoveNote(r.ID)
	return nil
}

// fail logs err and shows its fixed message.
func (c *Controller) fail(err error) error {
	c.logger.Err(err).Msg("notes request failed")
	c.store.SetError(UserMessage(err))
	return err
}
