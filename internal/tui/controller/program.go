package controller

import (
	"errors"

	"custview/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoGateway is returned when the program is built without a backend client.
var ErrNoGateway = errors.New("tui: no gateway configured")

// NewProgram creates the Bubble Tea program for the customer browser.
func NewProgram(cfg model.TUIConfig) (*tea.Program, error) {
	if cfg.API == nil {
		return nil, ErrNoGateway
	}
	if cfg.StatusBarTTL == 0 {
		cfg.StatusBarTTL = model.DefaultStatusBarTTL
	}

	m := model.InitializeModel(cfg)
	app := NewAppModel(m)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	return p, nil
}
