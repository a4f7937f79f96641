package services

import (
	"os"
	"path/filepath"
	"testing"

	"notepad/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newService starts a headless fyne app so the file:// repository is registered
func newService(t *testing.T) *DocumentService {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	return NewDocumentService(logger.Nop())
}

func tempURI(t *testing.T, name string) fyne.URI {
	t.Helper()
	return storage.NewFileURI(filepath.Join(t.TempDir(), name))
}

func TestDocumentServiceWriteRead(t *testing.T) {
	ds := newService(t)
	uri := tempURI(t, "note.txt")

	require.NoError(t, ds.Write(uri, "first line\nsecond line"))
	assert.True(t, ds.Exists(uri))
	assert.False(t, ds.IsDir(uri))

	content, err := ds.Read(uri)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", content)

	require.NoError(t, ds.Write(uri, "short"))
	content, err = ds.Read(uri)
	require.NoError(t, err)
	assert.Equal(t, "short", content)
}

func TestDocumentServiceStreams(t *testing.T) {
	ds := newService(t)
	uri := tempURI(t, "stream.txt")

	writer, err := storage.Writer(uri)
	require.NoError(t, err)
	require.NoError(t, ds.Store(writer, "from a dialog"))

	reader, err := storage.Reader(uri)
	require.NoError(t, err)
	content, err := ds.Load(reader)
	require.NoError(t, err)
	assert.Equal(t, "from a dialog", content)
}

func TestDocumentServiceReadMissing(t *testing.T) {
	ds := newService(t)
	uri := tempURI(t, "gone.txt")

	_, err := ds.Read(uri)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, ds.Exists(uri))
}

func TestDocumentServiceRejectsBinary(t *testing.T) {
	ds := newService(t)
	uri := tempURI(t, "image.txt")
	require.NoError(t, os.WriteFile(uri.Path(), []byte{0xff, 0xfe, 0x00, 0x80}, 0o644))

	_, err := ds.Read(uri)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotText)
}

func TestDocumentServiceRemove(t *testing.T) {
	ds := newService(t)
	uri := tempURI(t, "todo")
	require.NoError(t, os.WriteFile(uri.Path(), []byte("x"), 0o644))

	require.NoError(t, ds.Remove(uri))
	assert.NoFileExists(t, uri.Path())

	assert.ErrorIs(t, ds.Remove(uri), ErrNotFound)
}

func TestDocumentServiceNilURI(t *testing.T) {
	ds := newService(t)

	_, err := ds.Read(nil)
	assert.ErrorIs(t, err, ErrNoURI)
	_, err = ds.Load(nil)
	assert.ErrorIs(t, err, ErrNoURI)
	assert.ErrorIs(t, ds.Write(nil, "x"), ErrNoURI)
	assert.ErrorIs(t, ds.Store(nil, "x"), ErrNoURI)
	assert.ErrorIs(t, ds.Remove(nil), ErrNoURI)
	assert.False(t, ds.Exists(nil))
	assert.False(t, ds.IsDir(nil))
}

func TestDocumentServiceDirectory(t *testing.T) {
	ds := newService(t)
	uri := storage.NewFileURI(t.TempDir())

	assert.True(t, ds.Exists(uri))
	assert.True(t, ds.IsDir(uri))
}

func TestDocumentServiceWriteIntoMissingDir(t *testing.T) {
	ds := newService(t)
	uri := storage.NewFileURI(filepath.Join(t.TempDir(), "missing", "note.txt"))

	assert.Error(t, ds.Write(uri, "x"))
}
