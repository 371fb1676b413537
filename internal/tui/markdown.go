package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"

	"github.com/MKhiriev/go-notes-keeper/internal/state"
)

type markdownKey struct {
	theme state.Theme
	width int
}

// markdownRenderer caches glamour renderers per theme and wrap width.
type markdownRenderer struct {
	mu        sync.Mutex
	renderers map[markdownKey]*glamour.TermRenderer
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{renderers: make(map[markdownKey]*glamour.TermRenderer)}
}

// render returns input unchanged when glamour fails.
func (r *markdownRenderer) render(input string, width int, theme state.Theme) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	tr := r.get(markdownKey{theme: theme, width: width})
	if tr == nil {
		return input
	}
	out, err := tr.Render(input)
	if err != nil {
		return input
	}
	return strings.Trim(out, "\n")
}

func (r *markdownRenderer) get(k markdownKey) *glamour.TermRenderer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.renderers[k]; ok {
		return tr
	}

	style := glamourstyles.LightStyle
	if k.theme == state.ThemeDark {
		style = glamourstyles.DarkStyle
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(k.width),
	)
	if err != nil {
		return nil
	}
	r.renderers[k] = tr
	return tr
}
