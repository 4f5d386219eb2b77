package client

import (
	"context"
	"errors"

	"github.com/ndurmanov/medirates/internal/config"
	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/service"
	"github.com/ndurmanov/medirates/internal/tui"
	"github.com/ndurmanov/medirates/internal/workers"
	"github.com/ndurmanov/medirates/models"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	watcher  workers.ConnectivityWatcher
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, watcher workers.ConnectivityWatcher, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || watcher == nil {
		return nil, errors.New("client: services, ui and watcher are required")
	}

	return &App{services: services, ui: ui, watcher: watcher, cfg: cfg, logger: log}, nil
}

// Run starts the background workers and blocks inside the UI until the user
// exits. The app always comes up on cached data; the first refresh happens as
// soon as connectivity is confirmed.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.watcher.Start(ctx)
	defer a.watcher.Stop()

	unsubscribe := a.watcher.OnChange(func(state models.Connectivity) {
		if state != models.ConnectivityOnline {
			return
		}
		go a.services.SyncService.Trigger(ctx, models.TriggerConnectivity)
	})
	defer unsubscribe()

	outcome := a.services.SyncService.Trigger(ctx, models.TriggerAppStart)
	a.logger.Info().Str("outcome", outcome.String()).Msg("startup sync")

	a.services.SyncJob.Start(ctx, a.cfg.SyncInterval)
	defer a.services.SyncJob.Stop()

	return a.ui.Run(ctx)
}
