package app

import (
	"fyne.io/fyne/v2"
)

// setupLifecycle registers shutdown steps. Steps run newest first, so open
// editor state is flushed before the event loop is asked to quit.
func (a *Application) setupLifecycle() {
	a.shutdown.Register("event loop", a.quit)
	a.shutdown.Register("editor state", func() {
		a.onUI(a.launcher.Shutdown)
	})

	a.fyneApp.Lifecycle().SetOnStopped(func() {
		a.logger.Info("Lifecycle", "event loop stopped", nil)
	})
}

// onUI runs fn on the fyne goroutine while the event loop is alive, and
// directly once it has returned
func (a *Application) onUI(fn func()) {
	if a.running.Load() {
		fyne.DoAndWait(fn)
		return
	}
	fn()
}

// quit may run on the signal goroutine; it does nothing once the event loop has returned
func (a *Application) quit() {
	if !a.running.Load() {
		return
	}
	a.logger.Debug("Lifecycle", "quitting event loop", nil)
	fyne.Do(func() {
		a.fyneApp.Quit()
	})
}

// Shutdown stops the application; it is safe to call more than once
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}
