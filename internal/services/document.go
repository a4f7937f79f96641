package services

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"notepad/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

var (
	// ErrNotFound wraps failures caused by a URI that does not exist
	ErrNotFound = errors.New("file not found")
	ErrNoURI    = errors.New("no file selected")
	// ErrNotText is returned for files that are not valid UTF-8; editing them
	// through a text widget would rewrite their bytes on save
	ErrNotText = errors.New("not a UTF-8 text file")
)

// DocumentService reads and writes plain text documents through fyne storage
type DocumentService struct {
	logger logger.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(log logger.Logger) *DocumentService {
	return &DocumentService{logger: log}
}

// Read opens uri and returns its contents
func (ds *DocumentService) Read(uri fyne.URI) (string, error) {
	if uri == nil {
		return "", ErrNoURI
	}

	exists, err := storage.Exists(uri)
	if err != nil {
		return "", ds.wrap("read", uri, err)
	}
	if !exists {
		return "", ds.wrap("read", uri, ErrNotFound)
	}

	reader, err := storage.Reader(uri)
	if err != nil {
		return "", ds.wrap("read", uri, err)
	}

	return ds.Load(reader)
}

// Load consumes and closes reader, returning its contents
func (ds *DocumentService) Load(reader fyne.URIReadCloser) (string, error) {
	if reader == nil {
		return "", ErrNoURI
	}
	defer reader.Close()

	uri := reader.URI()
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", ds.wrap("read", uri, err)
	}

	if !utf8.Valid(data) {
		ds.logger.Warning("DocumentService", "refusing non UTF-8 file", map[string]interface{}{
			"uri":   uri.String(),
			"bytes": len(data),
		})
		return "", ds.wrap("read", uri, ErrNotText)
	}

	ds.logger.Debug("DocumentService", "document read", map[string]interface{}{
		"uri":   uri.String(),
		"bytes": len(data),
	})
	return string(data), nil
}

// Write replaces the contents of uri, creating the file if needed
func (ds *DocumentService) Write(uri fyne.URI, content string) error {
	if uri == nil {
		return ErrNoURI
	}

	writer, err := storage.Writer(uri)
	if err != nil {
		return ds.wrap("write", uri, err)
	}

	return ds.Store(writer, content)
}

// Store writes content to writer and closes it
func (ds *DocumentService) Store(writer fyne.URIWriteCloser, content string) error {
	if writer == nil {
		return ErrNoURI
	}

	uri := writer.URI()
	_, err := io.WriteString(writer, content)
	if closeErr := writer.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return ds.wrap("write", uri, err)
	}

	ds.logger.Debug("DocumentService", "document written", map[string]interface{}{
		"uri":   uri.String(),
		"bytes": len(content),
	})
	return nil
}

// Remove deletes uri
func (ds *DocumentService) Remove(uri fyne.URI) error {
	if uri == nil {
		return ErrNoURI
	}

	if !ds.Exists(uri) {
		return ds.wrap("delete", uri, ErrNotFound)
	}

	if err := storage.Delete(uri); err != nil {
		return ds.wrap("delete", uri, err)
	}

	ds.logger.Info("DocumentService", "document deleted", map[string]interface{}{
		"uri": uri.String(),
	})
	return nil
}

// Exists reports whether anything, file or directory, lives at uri
func (ds *DocumentService) Exists(uri fyne.URI) bool {
	if uri == nil {
		return false
	}
	exists, err := storage.Exists(uri)
	return err == nil && exists
}

// IsDir reports whether uri names a listable directory
func (ds *DocumentService) IsDir(uri fyne.URI) bool {
	if uri == nil {
		return false
	}
	listable, err := storage.CanList(uri)
	return err == nil && listable
}

func (ds *DocumentService) wrap(op string, uri fyne.URI, err error) error {
	return fmt.Errorf("%s %s: %w", op, uri.Name(), err)
}
