package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type TUI struct {
	controller service.NotesController
	options    Options

	logger *logger.Logger
}

func New(controller service.NotesController, options Options, logger *logger.Logger) *TUI {
	return &TUI{controller: controller, options: options, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled. Key bindings, the
// new-note shortcut included, live only as long as the program runs.
func (t *TUI) Run(ctx context.Context) error {
	model := NewModel(ctx, t.controller, t.options, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("ui stopped by context")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
