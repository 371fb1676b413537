// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	sidebarWidth  = 32
	minPaneWidth  = 20
	chromeHeight  = 8
	minPaneHeight = 3
)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusTitle
	focusContent
)

// Options configures presentation.
type Options struct {
	// Markdown renders note content through glamour in view mode.
	Markdown  bool
	BuildInfo models.AppBuildInfo
}

// Model is the root Bubble Tea model of the notes client.
type Model struct {
	ctx        context.Context
	controller service.NotesController
	buildInfo  models.AppBuildInfo

	search   textinput.Model
	title    textinput.Model
	content  textarea.Model
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model
	markdown *markdownRenderer

	focus         focus
	editorLoaded  bool
	editorFor     models.NoteID
	viewportFor   models.NoteID
	viewportBody  string
	showBuildInfo bool
	status        string

	width  int
	height int

	logger *logger.Logger
}

func NewModel(ctx context.Context, controller service.NotesController, opts Options, logger *logger.Logger) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search notes"

	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = app.MsgUntitled

	content := textarea.New()
	content.Placeholder = app.MsgNoContent
	content.ShowLineNumbers = false

	vp := viewport.New(minPaneWidth, minPaneHeight)
	vp.KeyMap = viewport.KeyMap{PageUp: keys.pageUp, PageDown: keys.pageDown}

	m := Model{
		ctx:        ctx,
		controller: controller,
		buildInfo:  opts.BuildInfo,
		search:     search,
		title:      title,
		content:    content,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport:   vp,
		help:       help.New(),
		logger:     logger,
	}
	if opts.Markdown {
		m.markdown = newMarkdownRenderer()
	}
	return m
}

// Init fetches the collection.
func (m Model) Init() tea.Cmd {
	return m.run(m.controller.Load())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()

	case resultMsg:
		if err := m.controller.Apply(msg.res); err != nil {
			m.logger.Debug().Err(err).Msg("operation finished with error")
		}

	case copiedMsg:
		m.status = app.MsgCopied
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("copy to clipboard failed")
			m.status = app.MsgCopyFailed
		}
		cmds = append(cmds, clearStatusAfter(statusTTL))

	case clearStatusMsg:
		m.status = ""

	case spinner.TickMsg:
		// the tick chain stops once nothing is in flight
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	default:
		// cursor blinks and mouse events go to whatever has focus
		var cmd tea.Cmd
		switch m.focus {
		case focusSearch:
			m.search, cmd = m.search.Update(msg)
		case focusTitle:
			m.title, cmd = m.title.Update(msg)
		case focusContent:
			m.content, cmd = m.content.Update(msg)
		default:
			m.viewport, cmd = m.viewport.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.syncEditor())
	m.refreshViewport()

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.forceQuit) {
		return tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.cancel, keys.info) {
			m.showBuildInfo = false
		}
		return nil
	}

	if m.pendingDelete() {
		switch {
		case key.Matches(msg, keys.yes):
			return m.run(m.controller.ConfirmDelete())
		case key.Matches(msg, keys.no, keys.cancel):
			m.controller.CancelDelete()
		}
		return nil
	}

	if key.Matches(msg, keys.newNote) {
		return m.run(m.controller.CreateNote())
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusTitle, focusContent:
		return m.handleEditorKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	store := m.controller.Store()

	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.up):
		m.moveSelection(-1)
	case key.Matches(msg, keys.down):
		m.moveSelection(1)
	case key.Matches(msg, keys.edit):
		m.controller.StartEdit()
	case key.Matches(msg, keys.delete):
		if id := store.Selected(); !id.IsZero() {
			m.controller.RequestDelete(id)
		}
	case key.Matches(msg, keys.search):
		m.focus = focusSearch
		return m.search.Focus()
	case key.Matches(msg, keys.cancel):
		m.search.SetValue("")
		m.controller.UpdateSearch("")
	case key.Matches(msg, keys.theme):
		m.controller.ToggleTheme()
		m.viewportBody = ""
	case key.Matches(msg, keys.sidebar):
		m.controller.ToggleSidebar()
		m.resize()
	case key.Matches(msg, keys.copy):
		if note, ok := store.ActiveNote(); ok {
			return copyCmd(note.Content)
		}
	case key.Matches(msg, keys.reload):
		return m.run(m.controller.Load())
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.accept, keys.cancel) {
		m.focus = focusList
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.controller.UpdateSearch(m.search.Value())
	return cmd
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	store := m.controller.Store()
	if store.SaveInProgress() {
		return nil
	}

	switch {
	case key.Matches(msg, keys.save):
		draft, ok := store.Draft()
		if !ok {
			return nil
		}
		return m.run(m.controller.SaveNote(draft))
	case key.Matches(msg, keys.cancel):
		m.controller.CancelEdit()
		return nil
	case key.Matches(msg, keys.nextField):
		if m.focus == focusTitle {
			m.focus = focusContent
			m.title.Blur()
			return m.content.Focus()
		}
		m.focus = focusTitle
		m.content.Blur()
		return m.title.Focus()
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	m.controller.UpdateDraft(m.title.Value(), m.content.Value())
	return cmd
}

// moveSelection selects the visible note delta positions away from the
// current one.
func (m *Model) moveSelection(delta int) {
	store := m.controller.Store()
	visible := store.Visible()
	if len(visible) == 0 {
		return
	}

	i := slices.IndexFunc(visible, func(n models.Note) bool { return n.ID == store.Selected() })
	switch {
	case i < 0 && delta < 0:
		i = len(visible) - 1
	case i < 0:
		i = 0
	default:
		i = min(max(i+delta, 0), len(visible)-1)
	}
	m.controller.SelectNote(visible[i].ID)
}

// syncEditor loads the draft into the inputs when an edit session starts and
// returns focus to the list when it ends.
func (m *Model) syncEditor() tea.Cmd {
	draft, editing := m.controller.Store().Draft()
	if !editing {
		m.editorLoaded = false
		if m.focus == focusTitle || m.focus == focusContent {
			m.focus = focusList
			m.title.Blur()
			m.content.Blur()
		}
		return nil
	}
	if m.editorLoaded && m.editorFor == draft.ID {
		return nil
	}

	m.editorLoaded, m.editorFor = true, draft.ID
	m.title.SetValue(draft.Title)
	m.content.SetValue(draft.Content)
	m.search.Blur()
	m.content.Blur()
	m.focus = focusTitle
	return m.title.Focus()
}

func (m *Model) refreshViewport() {
	store := m.controller.Store()
	note, ok := store.ActiveNote()
	if !ok || store.Mode() == state.Editing {
		m.viewportFor = models.NoteID{}
		m.viewportBody = ""
		m.viewport.SetContent("")
		return
	}

	body := note.Content
	switch {
	case body == "":
		body = app.MsgNoContent
	case m.markdown != nil:
		body = m.markdown.render(body, m.viewport.Width, store.Theme())
	}

	if note.ID != m.viewportFor {
		m.viewportFor = note.ID
		m.viewportBody = ""
		m.viewport.GotoTop()
	}
	if body != m.viewportBody {
		m.viewportBody = body
		m.viewport.SetContent(body)
	}
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	paneWidth := m.width - 6
	if !m.controller.Store().SidebarCollapsed() {
		paneWidth -= sidebarWidth + 4
	}
	paneWidth = max(paneWidth, minPaneWidth)
	paneHeight := max(m.height-chromeHeight, minPaneHeight)

	m.search.Width = sidebarWidth - 4
	m.title.Width = paneWidth
	m.content.SetWidth(paneWidth)
	m.content.SetHeight(max(paneHeight-2, 1))
	m.viewport.Width = paneWidth
	m.viewport.Height = max(paneHeight-2, 1)
	m.help.Width = m.width
	m.viewportBody = ""
}

// run wraps op in a command and keeps the spinner going while it is in
// flight.
func (m *Model) run(op service.Operation) tea.Cmd {
	if op == nil {
		return nil
	}
	ctx := m.ctx
	return tea.Batch(
		func() tea.Msg { return resultMsg{res: op(ctx)} },
		m.spinner.Tick,
	)
}

func (m Model) busy() bool {
	store := m.controller.Store()
	return store.NotesLoading() || store.SaveInProgress()
}

func (m Model) pendingDelete() bool {
	_, ok := m.controller.Store().PendingDelete()
	return ok
}
