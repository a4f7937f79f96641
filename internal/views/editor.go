package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// EditorActions are the handlers a controller attaches to an editor window
type EditorActions struct {
	Back   func()
	Open   func()
	Save   func()
	Delete func()
}

// EditorView is a window with one multi-line text area and the file buttons
type EditorView struct {
	window       fyne.Window
	textArea     *widget.Entry
	backButton   *widget.Button
	openButton   *widget.Button
	saveButton   *widget.Button
	deleteButton *widget.Button

	// nil accepts every file
	filter storage.FileFilter

	actions EditorActions
}

// NewEditorView creates an editor window. When textOnly is set the file
// pickers only list .txt files.
func NewEditorView(fyneApp fyne.App, size fyne.Size, textOnly bool) *EditorView {
	ev := &EditorView{
		window: fyneApp.NewWindow("Untitled"),
	}
	if textOnly {
		ev.filter = storage.NewExtensionFileFilter([]string{".txt"})
	}

	ev.window.Resize(size)
	ev.window.CenterOnScreen()

	ev.initializeComponents()
	ev.buildLayout()

	// the window manager close button behaves like Back to Main
	ev.window.SetCloseIntercept(func() {
		ev.trigger(ev.actions.Back)
	})

	return ev
}

func (ev *EditorView) initializeComponents() {
	ev.textArea = widget.NewMultiLineEntry()
	ev.textArea.Wrapping = fyne.TextWrapWord

	ev.backButton = widget.NewButton("Back to Main", func() { ev.trigger(ev.actions.Back) })
	ev.openButton = widget.NewButton("Open File", func() { ev.trigger(ev.actions.Open) })
	ev.saveButton = widget.NewButton("Save", func() { ev.trigger(ev.actions.Save) })
	ev.deleteButton = widget.NewButton("Delete File", func() { ev.trigger(ev.actions.Delete) })
	ev.deleteButton.Importance = widget.DangerImportance
}

func (ev *EditorView) buildLayout() {
	buttons := container.NewGridWithColumns(4,
		ev.backButton,
		ev.openButton,
		ev.saveButton,
		ev.deleteButton,
	)

	ev.window.SetContent(container.NewBorder(nil, buttons, nil, nil, ev.textArea))
}

func (ev *EditorView) trigger(action func()) {
	if action != nil {
		action()
	}
}

// SetActions connects the editor to its controller
func (ev *EditorView) SetActions(actions EditorActions) {
	ev.actions = actions
}

func (ev *EditorView) Text() string {
	return ev.textArea.Text
}

func (ev *EditorView) SetText(text string) {
	ev.textArea.SetText(text)
}

func (ev *EditorView) SetTitle(title string) {
	ev.window.SetTitle(title)
}

func (ev *EditorView) Title() string {
	return ev.window.Title()
}

func (ev *EditorView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, ev.window)
}

func (ev *EditorView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, ev.window)
}

func (ev *EditorView) Confirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, ev.window)
}

// ChooseOpenFile shows a file open dialog. callback owns the reader and
// receives nil on cancel.
func (ev *EditorView) ChooseOpenFile(callback func(reader fyne.URIReadCloser)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ev.window)
			return
		}
		callback(reader)
	}, ev.window)
	if ev.filter != nil {
		fd.SetFilter(ev.filter)
	}
	fd.Show()
}

// ChooseSaveFile shows a file save dialog. callback owns the writer and
// receives nil on cancel.
func (ev *EditorView) ChooseSaveFile(callback func(writer fyne.URIWriteCloser)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ev.window)
			return
		}
		callback(writer)
	}, ev.window)
	if ev.filter != nil {
		fd.SetFilter(ev.filter)
		fd.SetFileName("untitled.txt")
	}
	fd.Show()
}

func (ev *EditorView) Show() {
	ev.window.Show()
}

func (ev *EditorView) Close() {
	ev.window.Close()
}
