package app

import (
	"context"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/refresh"
	"github.com/ytget/headlines/internal/ui"
)

// refreshJobTimeout bounds a scheduled reload on top of the request timeout
const refreshJobTimeout = 2 * time.Minute

// App manages the lifecycle of the headlines window and its refresh schedule.
type App struct {
	window    fyne.Window
	root      *ui.RootUI
	scheduler *refresh.Scheduler
	settings  *config.Settings
	logger    *slog.Logger
}

// New constructs an App instance.
func New(window fyne.Window, root *ui.RootUI, scheduler *refresh.Scheduler, settings *config.Settings, logger *slog.Logger) *App {
	a := &App{
		window:    window,
		root:      root,
		scheduler: scheduler,
		settings:  settings,
		logger:    logger,
	}
	root.OnSettingsChanged = a.onSettingsChanged
	return a
}

// Run loads headlines once, starts the scheduler and blocks in the window event loop.
func (a *App) Run(ctx context.Context) error {
	a.Start(ctx)
	a.window.ShowAndRun()
	a.Stop()
	return nil
}

// Start applies the schedule, kicks off the first load and starts the scheduler.
func (a *App) Start(ctx context.Context) {
	a.applySchedule()

	if a.root.APIKeyInitialized() {
		a.logger.Info("loading headlines at startup")
		go a.root.Reload(ctx)
	}

	a.scheduler.Start()
}

// Stop halts the scheduler.
func (a *App) Stop() {
	a.scheduler.Stop()
	a.logger.Info("scheduler stopped")
}

func (a *App) applySchedule() {
	spec := a.settings.GetRefreshSchedule()
	if err := a.scheduler.Schedule(spec, a.scheduledReload); err != nil {
		a.logger.Error("invalid refresh schedule, auto-refresh disabled", "schedule", spec, "error", err)
		_ = a.scheduler.Schedule("", nil)
	}
}

func (a *App) scheduledReload() {
	if !a.root.APIKeyInitialized() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), refreshJobTimeout)
	defer cancel()
	a.root.Reload(ctx)
}

func (a *App) onSettingsChanged() {
	a.applySchedule()
	if a.root.APIKeyInitialized() {
		a.root.StartReload()
	}
}
