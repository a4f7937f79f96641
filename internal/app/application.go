package app

import (
	"context"
	"runtime"
	"sync/atomic"

	"notepad/internal/config"
	"notepad/internal/controllers"
	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/services"
	"notepad/internal/shutdown"
	"notepad/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

type Application struct {
	cfg      config.Config
	fyneApp  fyne.App
	logger   logger.Logger
	view     *views.LauncherView
	launcher *controllers.LauncherController
	shutdown *shutdown.Manager
	running  atomic.Bool
}

// NewApplication creates the fyne app with cfg.AppID so preferences persist
// under a stable identity
func NewApplication(cfg config.Config) (*Application, error) {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      cfg.AppID,
		Name:    cfg.AppName,
		Version: cfg.AppVersion,
	})
	fyneApp := fyneapp.NewWithID(cfg.AppID)

	return New(fyneApp, cfg, cfg.NewLogger()), nil
}

// New wires the launcher, editors and recent list onto an existing fyne app
func New(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	log.Info("Application", "starting application", map[string]interface{}{
		"version":    cfg.AppVersion,
		"app_id":     cfg.AppID,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
	})

	recent := models.NewRecentFiles(fyneApp.Preferences(), config.RecentFilesKey, cfg.MaxRecentFiles)
	docs := services.NewDocumentService(log)

	view := views.NewLauncherView(fyneApp, cfg.AppName, fyne.NewSize(cfg.LauncherWidth, cfg.LauncherHeight))
	editorSize := fyne.NewSize(cfg.EditorWidth, cfg.EditorHeight)
	newEditor := func(category models.Category) controllers.EditorView {
		return views.NewEditorView(fyneApp, editorSize, category == models.CategoryNotes)
	}

	launcher := controllers.NewLauncherController(view, recent, docs, newEditor, log)

	application := &Application{
		cfg:      cfg,
		fyneApp:  fyneApp,
		logger:   log,
		view:     view,
		launcher: launcher,
		shutdown: shutdown.NewManager(log),
	}
	application.setupLifecycle()

	log.Info("Application", "initialization complete", nil)
	return application
}

func (a *Application) Launcher() *controllers.LauncherController {
	return a.launcher
}

// Run shows the launcher and blocks until the fyne event loop exits
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.shutdown.Listen(ctx)

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.running.Store(true)
	a.fyneApp.Run()
	a.running.Store(false)

	a.shutdown.Shutdown()

	return nil
}
