package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (m Model) View() string {
	store := m.controller.Store()
	st := newStyles(store.Theme())

	if m.showBuildInfo {
		return st.app.Render(st.overlay.Render(renderBuildInfoWindow(m.buildInfo)))
	}

	sections := []string{m.headerView(st)}
	if msg := store.Error(); msg != "" {
		sections = append(sections, st.banner.Render(msg))
	}

	body := m.paneView(st)
	if !store.SidebarCollapsed() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(st), body)
	}
	sections = append(sections, body)

	if id, ok := store.PendingDelete(); ok {
		sections = append(sections, m.confirmView(st, id))
	}
	if m.status != "" {
		sections = append(sections, st.muted.Render(m.status))
	}
	sections = append(sections, st.help.Render(m.help.ShortHelpView(m.bindings())))

	return st.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) headerView(st styles) string {
	store := m.controller.Store()

	parts := []string{st.header.Render("Notes")}
	if m.busy() {
		parts = append(parts, m.spinner.View())
	}
	if store.SaveInProgress() {
		parts = append(parts, st.muted.Render(app.MsgSaving))
	}
	parts = append(parts, st.muted.Render(string(store.Theme())))

	return strings.Join(parts, " ")
}

func (m Model) sidebarView(st styles) string {
	store := m.controller.Store()

	lines := []string{m.search.View(), ""}
	visible := store.Visible()
	switch {
	case len(visible) == 0 && store.NotesLoading():
		lines = append(lines, st.muted.Render(app.MsgLoadingNotes))
	case len(visible) == 0:
		lines = append(lines, st.muted.Render(app.MsgNoNotes))
	default:
		for _, n := range visible {
			label := fitText(listTitle(n), sidebarWidth-4)
			if n.ID == store.Selected() {
				lines = append(lines, st.selected.Render("› "+label))
			} else {
				lines = append(lines, st.item.Render("  "+label))
			}
		}
	}

	return st.sidebar.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) paneView(st styles) string {
	store := m.controller.Store()

	var content string
	switch note, ok := store.ActiveNote(); {
	case store.Mode() == state.Editing:
		content = lipgloss.JoinVertical(lipgloss.Left,
			st.title.Render("Title"),
			m.title.View(),
			"",
			st.title.Render("Content"),
			m.content.View(),
		)
	case ok:
		content = lipgloss.JoinVertical(lipgloss.Left,
			st.title.Render(editorTitle(note)),
			"",
			m.viewport.View(),
		)
	case store.NotesLoading():
		content = st.muted.Render(app.MsgLoadingNotes)
	default:
		content = st.muted.Render(app.MsgNoSelection)
	}

	return st.pane.Width(m.viewport.Width + 2).Render(content)
}

func (m Model) confirmView(st styles, id models.NoteID) string {
	label := app.MsgUntitledListItem
	if note, ok := m.controller.Store().Note(id); ok {
		label = listTitle(note)
	}

	return st.overlay.Render(app.MsgConfirmDelete + "\n\n" +
		st.title.Render(label) + "\n\n" +
		m.help.ShortHelpView(m.bindings()))
}

// listTitle is the sidebar label of a note.
func listTitle(n models.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return app.MsgUntitledListItem
	}
	return firstLine(n.Title)
}

// editorTitle is the heading of the note view.
func editorTitle(n models.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return app.MsgUntitled
	}
	return firstLine(n.Title)
}
