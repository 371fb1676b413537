package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

const statusTTL = 2 * time.Second

// resultMsg carries a finished controller operation back to the program.
type resultMsg struct {
	res service.Result
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
