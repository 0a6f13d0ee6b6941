package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/service"
	"github.com/gifcamp/gifcamp/models"
)

var ErrUserQuit = errors.New("user quit")

// Authenticator runs the interactive OAuth consent flow. onURL receives
// the consent URL to show the user before the call blocks on the
// browser round-trip.
type Authenticator interface {
	Authorize(ctx context.Context, onURL func(string)) (models.GoogleUserInfo, string, error)
}

type TUI struct {
	services *service.ClientServices
	auth     Authenticator
	logger   *logger.Logger
}

func New(services *service.ClientServices, auth Authenticator, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, auth: auth, logger: log}, nil
}

// Run drives one TUI session starting from session (anonymous or
// restored). It returns logout=true when the user logged out rather
// than quitting, so the caller can restart the flow from the welcome
// screen.
func (t *TUI) Run(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newAppModel(ctx, t.services, t.auth, session)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil {
		return false, result.err
	}
	return result.logout, nil
}
