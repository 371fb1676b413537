package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// UI is the blocking view layer run by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNilUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits. SIGINT reaches the UI as ctrl+c while the
// terminal is in raw mode, so only SIGTERM and SIGQUIT are trapped here.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	return a.ui.Run(ctx)
}
