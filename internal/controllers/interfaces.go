package controllers

import (
	"notepad/internal/models"
	"notepad/internal/views"

	"fyne.io/fyne/v2"
)

// EditorView is the window an EditorController drives
type EditorView interface {
	SetActions(actions views.EditorActions)
	Text() string
	SetText(text string)
	SetTitle(title string)
	ShowWarning(title, message string)
	ShowInfo(title, message string)
	Confirm(title, message string, callback func(bool))
	// callbacks receive nil when the user cancels
	ChooseOpenFile(callback func(reader fyne.URIReadCloser))
	ChooseSaveFile(callback func(writer fyne.URIWriteCloser))
	Show()
	Close()
}

// LauncherView is the window a LauncherController drives
type LauncherView interface {
	SetActions(actions views.LauncherActions)
	SetRecentFiles(paths []string)
	ShowWarning(title, message string)
	Show()
	Hide()
}

// DocumentListener receives editor outcomes that affect the recent list
type DocumentListener interface {
	DocumentStored(path string)
	DocumentDeleted(path string)
	EditorClosed()
}

// EditorFactory creates the view for a new editor of the given category
type EditorFactory func(category models.Category) EditorView
