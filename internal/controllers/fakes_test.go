package controllers

import (
	"testing"

	"notepad/internal/models"
	"notepad/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
)

// startApp registers fyne's file:// repository for the duration of a test
func startApp(t *testing.T) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
}

type message struct {
	title string
	text  string
}

type fakeEditorView struct {
	actions  views.EditorActions
	text     string
	title    string
	warnings []message
	infos    []message
	confirms []message

	confirmAnswer bool
	openPath      string
	savePath      string
	savePrompts   int

	shown  bool
	closed bool
}

func (f *fakeEditorView) SetActions(actions views.EditorActions) { f.actions = actions }
func (f *fakeEditorView) Text() string                         { return f.text }
func (f *fakeEditorView) SetText(text string)                  { f.text = text }
func (f *fakeEditorView) SetTitle(title string)                { f.title = title }

func (f *fakeEditorView) ShowWarning(title, text string) {
	f.warnings = append(f.warnings, message{title, text})
}

func (f *fakeEditorView) ShowInfo(title, text string) {
	f.infos = append(f.infos, message{title, text})
}

func (f *fakeEditorView) Confirm(title, text string, callback func(bool)) {
	f.confirms = append(f.confirms, message{title, text})
	callback(f.confirmAnswer)
}

// ChooseOpenFile behaves like a dialog that picked openPath
func (f *fakeEditorView) ChooseOpenFile(callback func(fyne.URIReadCloser)) {
	if f.openPath == "" {
		callback(nil)
		return
	}
	reader, err := storage.Reader(storage.NewFileURI(f.openPath))
	if err != nil {
		callback(nil)
		return
	}
	callback(reader)
}

// ChooseSaveFile behaves like a dialog that created savePath
func (f *fakeEditorView) ChooseSaveFile(callback func(fyne.URIWriteCloser)) {
	f.savePrompts++
	if f.savePath == "" {
		callback(nil)
		return
	}
	writer, err := storage.Writer(storage.NewFileURI(f.savePath))
	if err != nil {
		callback(nil)
		return
	}
	callback(writer)
}

func (f *fakeEditorView) Show()  { f.shown = true }
func (f *fakeEditorView) Close() { f.closed = true }

type fakeLauncherView struct {
	actions  views.LauncherActions
	recent   []string
	warnings []message
	visible  bool
}

func (f *fakeLauncherView) SetActions(actions views.LauncherActions) { f.actions = actions }
func (f *fakeLauncherView) SetRecentFiles(paths []string)            { f.recent = paths }

func (f *fakeLauncherView) ShowWarning(title, text string) {
	f.warnings = append(f.warnings, message{title, text})
}

func (f *fakeLauncherView) Show() { f.visible = true }
func (f *fakeLauncherView) Hide() { f.visible = false }

type recordingListener struct {
	stored  []string
	deleted []string
	closed  int
}

func (r *recordingListener) DocumentStored(path string)  { r.stored = append(r.stored, path) }
func (r *recordingListener) DocumentDeleted(path string) { r.deleted = append(r.deleted, path) }
func (r *recordingListener) EditorClosed()               { r.closed++ }

type memoryStore struct {
	lists map[string][]string
}

func (m *memoryStore) StringList(key string) []string { return m.lists[key] }

func (m *memoryStore) SetStringList(key string, value []string) {
	if m.lists == nil {
		m.lists = make(map[string][]string)
	}
	m.lists[key] = value
}

// editorRecorder hands out fake editor views and remembers them
type editorRecorder struct {
	created    []*fakeEditorView
	categories []models.Category
}

func (r *editorRecorder) factory(category models.Category) EditorView {
	view := &fakeEditorView{}
	r.created = append(r.created, view)
	r.categories = append(r.categories, category)
	return view
}

func (r *editorRecorder) last() *fakeEditorView {
	return r.created[len(r.created)-1]
}
