package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	pageUp    key.Binding
	pageDown  key.Binding
	newNote   key.Binding
	edit      key.Binding
	save      key.Binding
	cancel    key.Binding
	accept    key.Binding
	nextField key.Binding
	delete    key.Binding
	search    key.Binding
	theme     key.Binding
	sidebar   key.Binding
	copy      key.Binding
	reload    key.Binding
	info      key.Binding
	yes       key.Binding
	no        key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
	down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	pageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	pageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	newNote:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
	edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
	nextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
	delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	sidebar:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "sidebar")),
	copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
	reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	info:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	yes:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	no:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
	quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// bindings returns the help entries for the current focus.
func (m Model) bindings() []key.Binding {
	switch {
	case m.showBuildInfo:
		return []key.Binding{keys.cancel}
	case m.pendingDelete():
		return []key.Binding{keys.yes, keys.no}
	case m.focus == focusSearch:
		return []key.Binding{keys.accept, keys.cancel}
	case m.focus == focusTitle || m.focus == focusContent:
		return []key.Binding{keys.save, keys.cancel, keys.nextField, keys.newNote}
	default:
		return []key.Binding{
			keys.up, keys.down, keys.newNote, keys.edit, keys.delete, keys.search,
			keys.copy, keys.theme, keys.sidebar, keys.reload, keys.info, keys.quit,
		}
	}
}
