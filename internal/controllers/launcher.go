package controllers

import (
	"fmt"

	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/services"
	"notepad/internal/views"

	"fyne.io/fyne/v2/storage"
)

const launcherComponent = "LauncherController"

// LauncherController owns the recent list and hands off to editors
type LauncherController struct {
	view      LauncherView
	recent    *models.RecentFiles
	docs      *services.DocumentService
	newEditor EditorFactory
	logger    logger.Logger

	active *EditorController
}

// NewLauncherController creates a new launcher controller
func NewLauncherController(
	view LauncherView,
	recent *models.RecentFiles,
	docs *services.DocumentService,
	newEditor EditorFactory,
	log logger.Logger,
) *LauncherController {
	lc := &LauncherController{
		view:      view,
		recent:    recent,
		docs:      docs,
		newEditor: newEditor,
		logger:    log,
	}

	view.SetActions(views.LauncherActions{
		OpenNotes:    func() { lc.OpenCategory(models.CategoryNotes) },
		OpenTodo:     func() { lc.OpenCategory(models.CategoryTodo) },
		OpenRecent:   func(path string) { lc.OpenRecent(path) },
		ClearHistory: lc.ClearHistory,
	})
	lc.refresh()

	log.Info(launcherComponent, "recent files loaded", map[string]interface{}{
		"count": recent.Len(),
	})

	return lc
}

// Active returns the editor currently shown, if any
func (lc *LauncherController) Active() *EditorController {
	return lc.active
}

// OpenCategory shows an empty editor and hides the launcher
func (lc *LauncherController) OpenCategory(category models.Category) *EditorController {
	editor := NewEditorController(category, lc.newEditor(category), lc.docs, lc, lc.logger)
	lc.present(editor)
	return editor
}

// OpenRecent opens path in a new editor. A path that no longer exists or is
// not a file is reported and dropped from the list; an unreadable file is
// reported and kept. nil is returned whenever no editor was shown.
func (lc *LauncherController) OpenRecent(path string) *EditorController {
	uri := storage.NewFileURI(path)

	if !lc.docs.Exists(uri) {
		lc.dropRecent(path, "recent file missing", fmt.Sprintf("The file %s no longer exists.", path))
		return nil
	}
	if lc.docs.IsDir(uri) {
		lc.dropRecent(path, "recent path is a directory", fmt.Sprintf("The path %s is not a file.", path))
		return nil
	}

	category := models.CategoryForPath(path)
	editor := NewEditorController(category, lc.newEditor(category), lc.docs, lc, lc.logger)
	if err := editor.load(uri); err != nil {
		editor.view.Close()
		lc.view.ShowWarning("Error", fmt.Sprintf("Could not open file: %v", err))
		return nil
	}
	lc.present(editor)
	return editor
}

func (lc *LauncherController) dropRecent(path, reason, message string) {
	lc.logger.Warning(launcherComponent, reason, map[string]interface{}{
		"path": path,
	})
	lc.view.ShowWarning("Error", message)
	lc.RemoveRecent(path)
}

func (lc *LauncherController) present(editor *EditorController) {
	lc.active = editor
	editor.Show()
	lc.view.Hide()
}

// AddRecent records path as the most recent file
func (lc *LauncherController) AddRecent(path string) {
	lc.recent.Add(path)
	lc.refresh()
}

// RemoveRecent drops path from the recent list if present
func (lc *LauncherController) RemoveRecent(path string) {
	if lc.recent.Remove(path) {
		lc.refresh()
	}
}

func (lc *LauncherController) ClearHistory() {
	lc.recent.Clear()
	lc.logger.Info(launcherComponent, "recent history cleared", nil)
	lc.refresh()
}

// RecentFiles returns the recent paths, most recent first
func (lc *LauncherController) RecentFiles() []string {
	return lc.recent.List()
}

func (lc *LauncherController) DocumentStored(path string) {
	lc.AddRecent(path)
}

func (lc *LauncherController) DocumentDeleted(path string) {
	lc.RemoveRecent(path)
}

func (lc *LauncherController) EditorClosed() {
	lc.active = nil
	lc.view.Show()
}

// Shutdown flushes unsaved changes of the open editor, if any
func (lc *LauncherController) Shutdown() {
	if lc.active != nil {
		if err := lc.active.Flush(); err != nil {
			lc.logger.Error(launcherComponent, err, map[string]interface{}{
				"operation": "shutdown",
			})
		}
	}
	lc.logger.Debug(launcherComponent, "shutdown", map[string]interface{}{
		"recent_files": lc.recent.Len(),
	})
}

func (lc *LauncherController) refresh() {
	lc.view.SetRecentFiles(lc.recent.List())
}
