// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GifCamp Authors

package client

import (
	"context"

	"github.com/gifcamp/gifcamp/internal/logger"
	"github.com/gifcamp/gifcamp/internal/service"
	"github.com/gifcamp/gifcamp/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: log}, nil
}

// Run restores the persisted session and drives the UI until the user
// quits. A logout clears the session and restarts the UI at the welcome
// screen instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()
	defer a.services.SessionService.Close()

	session := a.services.SessionService.Restore(ctx)
	if session.Valid() {
		a.logger.Debug().Str("email", session.User.Email).Msg("session restored")
	}

	for {
		logout, err := a.tui.Run(ctx, session)
		if err != nil {
			if err == tui.ErrUserQuit {
				return nil
			}
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.SessionService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout cleanup failed")
		}
		session = a.services.SessionService.Current()
	}
}
