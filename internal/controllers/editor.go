package controllers

import (
	"fmt"

	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/services"
	"notepad/internal/views"

	"fyne.io/fyne/v2"
)

const editorComponent = "EditorController"

// EditorController binds one document to one editor window
type EditorController struct {
	doc      *models.Document
	view     EditorView
	docs     *services.DocumentService
	listener DocumentListener
	logger   logger.Logger
}

// NewEditorController wires view actions to a fresh, unbound document
func NewEditorController(
	category models.Category,
	view EditorView,
	docs *services.DocumentService,
	listener DocumentListener,
	log logger.Logger,
) *EditorController {
	ec := &EditorController{
		doc:      models.NewDocument(category),
		view:     view,
		docs:     docs,
		listener: listener,
		logger:   log,
	}

	view.SetActions(views.EditorActions{
		Back:   ec.Back,
		Open:   ec.ChooseAndOpen,
		Save:   ec.Save,
		Delete: ec.Delete,
	})
	view.SetTitle(ec.doc.Title())

	return ec
}

// Document returns the bound document
func (ec *EditorController) Document() *models.Document {
	return ec.doc
}

func (ec *EditorController) View() EditorView {
	return ec.view
}

func (ec *EditorController) Show() {
	ec.view.Show()
}

// ChooseAndOpen prompts for a file and opens it
func (ec *EditorController) ChooseAndOpen() {
	ec.view.ChooseOpenFile(func(reader fyne.URIReadCloser) {
		if reader == nil {
			return
		}
		uri := reader.URI()
		content, err := ec.docs.Load(reader)
		if err != nil {
			ec.fail("open", uri, "Could not open file", err)
			return
		}
		ec.bindContent(uri, content)
	})
}

// Open replaces the buffer with the contents of uri and binds it.
// On failure the buffer and binding are left as they were.
func (ec *EditorController) Open(uri fyne.URI) error {
	err := ec.load(uri)
	if err != nil {
		ec.view.ShowWarning("Error", fmt.Sprintf("Could not open file: %v", err))
	}
	return err
}

// load is Open without the warning, for callers that report elsewhere
func (ec *EditorController) load(uri fyne.URI) error {
	content, err := ec.docs.Read(uri)
	if err != nil {
		ec.logger.Error(editorComponent, err, map[string]interface{}{
			"operation": "open",
			"uri":       uriString(uri),
		})
		return err
	}

	ec.bindContent(uri, content)
	return nil
}

func (ec *EditorController) bindContent(uri fyne.URI, content string) {
	ec.doc.Bind(uri)
	ec.doc.Content = content
	ec.view.SetText(content)
	ec.view.SetTitle(ec.doc.Title())

	ec.logger.Info(editorComponent, "document opened", map[string]interface{}{
		"uri":      uri.String(),
		"category": ec.doc.Category.String(),
	})
	ec.notifyStored()
}

// Save writes to the bound file, or prompts for one when unbound
func (ec *EditorController) Save() {
	if !ec.doc.IsBound() {
		ec.view.ChooseSaveFile(func(writer fyne.URIWriteCloser) {
			if writer == nil {
				return
			}
			_ = ec.SaveTo(writer)
		})
		return
	}

	uri := ec.doc.URI()
	_ = ec.persist(uri, func(content string) error {
		return ec.docs.Write(uri, content)
	})
}

// SaveAs writes the buffer to uri and binds it
func (ec *EditorController) SaveAs(uri fyne.URI) error {
	return ec.persist(uri, func(content string) error {
		return ec.docs.Write(uri, content)
	})
}

// SaveTo writes the buffer through a writer from a save dialog and binds its URI
func (ec *EditorController) SaveTo(writer fyne.URIWriteCloser) error {
	return ec.persist(writer.URI(), func(content string) error {
		return ec.docs.Store(writer, content)
	})
}

func (ec *EditorController) persist(uri fyne.URI, store func(content string) error) error {
	content := ec.view.Text()

	if err := store(content); err != nil {
		ec.fail("save", uri, "Could not save file", err)
		return err
	}

	ec.doc.Bind(uri)
	ec.doc.Content = content
	ec.view.SetTitle(ec.doc.Title())

	ec.logger.Info(editorComponent, "document saved", map[string]interface{}{
		"uri": uri.String(),
	})
	ec.notifyStored()
	return nil
}

// Flush writes unsaved changes to the bound file without prompting.
// Changes to an untitled buffer cannot be written and are only logged.
func (ec *EditorController) Flush() error {
	content := ec.view.Text()
	if content == ec.doc.Content {
		return nil
	}

	if !ec.doc.IsBound() {
		ec.logger.Warning(editorComponent, "discarding unsaved untitled buffer", map[string]interface{}{
			"category": ec.doc.Category.String(),
			"bytes":    len(content),
		})
		return nil
	}

	uri := ec.doc.URI()
	if err := ec.docs.Write(uri, content); err != nil {
		ec.logger.Error(editorComponent, err, map[string]interface{}{
			"operation": "flush",
			"uri":       uri.String(),
		})
		return err
	}

	ec.doc.Content = content
	ec.logger.Info(editorComponent, "unsaved changes flushed", map[string]interface{}{
		"uri": uri.String(),
	})
	return nil
}

// Delete asks for confirmation, then removes the bound file and resets the buffer
func (ec *EditorController) Delete() {
	if !ec.doc.IsBound() {
		ec.view.ShowWarning("Error", "No file is currently open to delete.")
		return
	}

	uri := ec.doc.URI()
	ec.view.Confirm("Delete File",
		fmt.Sprintf("Are you sure you want to delete %s?", ec.doc.Name()),
		func(confirmed bool) {
			if !confirmed {
				ec.logger.Debug(editorComponent, "delete cancelled", map[string]interface{}{
					"uri": uri.String(),
				})
				return
			}
			ec.remove(uri)
		})
}

func (ec *EditorController) remove(uri fyne.URI) {
	if err := ec.docs.Remove(uri); err != nil {
		ec.fail("delete", uri, "Could not delete file", err)
		return
	}

	ec.view.ShowInfo("Success", "File deleted successfully.")
	ec.doc.Reset()
	ec.view.SetText("")
	ec.view.SetTitle(ec.doc.Title())

	if ec.listener != nil {
		ec.listener.DocumentDeleted(uri.Path())
	}
}

// Back closes the editor and returns to the launcher
func (ec *EditorController) Back() {
	ec.logger.Debug(editorComponent, "editor closed", map[string]interface{}{
		"title": ec.doc.Title(),
	})
	ec.view.Close()
	if ec.listener != nil {
		ec.listener.EditorClosed()
	}
}

func (ec *EditorController) fail(op string, uri fyne.URI, summary string, err error) {
	ec.logger.Error(editorComponent, err, map[string]interface{}{
		"operation": op,
		"uri":       uriString(uri),
	})
	ec.view.ShowWarning("Error", fmt.Sprintf("%s: %v", summary, err))
}

func (ec *EditorController) notifyStored() {
	if ec.listener != nil {
		ec.listener.DocumentStored(ec.doc.Path())
	}
}

func uriString(uri fyne.URI) string {
	if uri == nil {
		return ""
	}
	return uri.String()
}
