package upload

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	pngData := encodePNG(t, 2, 2)

	paths := []string{
		writeFile(t, dir, "photo.png", pngData),
		writeFile(t, dir, "notes.txt", []byte("just some text\n")),
		// Mislabelled extension: the header wins.
		writeFile(t, dir, "actually-png.jpg", pngData),
	}

	sel, errs := NewLoader(zaptest.NewLogger(t)).Load(paths)
	require.Empty(t, errs)
	require.Equal(t, 3, sel.Len())

	files := sel.Files()
	assert.Equal(t, "photo.png", files[0].Name)
	assert.Equal(t, "image/png", files[0].MimeType)
	assert.Equal(t, int64(len(pngData)), files[0].Size)
	assert.True(t, files[0].IsImage())

	assert.Equal(t, "text/plain", files[1].MimeType)
	assert.False(t, files[1].IsImage())

	assert.Equal(t, "image/png", files[2].MimeType)

	rc, err := files[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, pngData, got)
}

func TestLoader_LoadSkipsUnreadablePaths(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album")
	require.NoError(t, os.Mkdir(sub, 0o755))
	good := writeFile(t, dir, "good.png", encodePNG(t, 1, 1))

	sel, errs := NewLoader(zaptest.NewLogger(t)).Load([]string{
		filepath.Join(dir, "missing.png"),
		sub,
		good,
	})

	require.Len(t, errs, 2)

	var fe *Error
	require.True(t, errors.As(errs[0], &fe))
	assert.Equal(t, "missing.png", fe.File)
	assert.ErrorIs(t, errs[0], fs.ErrNotExist)

	require.True(t, errors.As(errs[1], &fe))
	assert.Equal(t, "album", fe.File)
	assert.ErrorIs(t, errs[1], ErrNotAFile)

	require.Equal(t, 1, sel.Len())
	assert.Equal(t, "good.png", sel.Files()[0].Name)
}

func TestLoader_LoadNothing(t *testing.T) {
	sel, errs := NewLoader(zaptest.NewLogger(t)).Load(nil)
	assert.Empty(t, errs)
	assert.Equal(t, 0, sel.Len())
}

func TestSelection_Reset(t *testing.T) {
	sel := NewSelection(NewFile("a.png", "image/png", nil))
	files := sel.Files()

	sel.Reset()

	assert.Equal(t, 0, sel.Len())
	assert.Len(t, files, 1, "callers keep their own copy")
}
