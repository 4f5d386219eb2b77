// Package tui implements the terminal front end of the price directory:
// a browsable service list for guests and sign-in plus CRUD forms for
// administrators.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, logger: log}, nil
}

// Run blocks inside the interactive directory until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newDirectoryModel(ctx, t.services)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
