package upload

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"imgdrop/internal/app/preview"
	"imgdrop/internal/app/status"
	"imgdrop/internal/providers/apigateway"
	"imgdrop/internal/providers/s3"
	"imgdrop/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T, backend *testutil.FakeBackend, recorder *testutil.StatusRecorder, out *bytes.Buffer) *cli.App {
	t.Helper()

	logger := zaptest.NewLogger(t)
	renderer := preview.NewRenderer(preview.NewGallery(), logger)
	svc := NewService(
		apigateway.NewAPIGatewayProvider(backend.PresignURL(), backend.Client(), logger),
		s3.NewS3Provider(backend.Client(), logger),
		renderer,
		recorder,
		nil,
		logger,
	)

	app := cli.NewApp()
	app.Writer = out
	app.ExitErrHandler = func(*cli.Context, error) {}
	RegisterCommands(app, NewHandler(NewLoader(logger), svc, renderer, recorder, out, logger))
	return app
}

func TestHandler_Upload(t *testing.T) {
	dir := t.TempDir()
	backend := testutil.NewFakeBackend(t)
	out := &bytes.Buffer{}
	app := newTestApp(t, backend, &testutil.StatusRecorder{}, out)

	photo := writeFile(t, dir, "photo.png", encodePNG(t, 5, 4))

	err := app.RunContext(context.Background(), []string{"imgdrop", "upload", photo})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "photo.png -> uploads/photo.png")
	assert.Contains(t, out.String(), "previews:")
	assert.Contains(t, out.String(), "photo.png (png 5x4")
	assert.Len(t, backend.Calls(), 2)
}

func TestHandler_UploadPartialFailure(t *testing.T) {
	dir := t.TempDir()
	backend := testutil.NewFakeBackend(t)
	backend.FailPut("b.png", http.StatusForbidden)
	out := &bytes.Buffer{}
	app := newTestApp(t, backend, &testutil.StatusRecorder{}, out)

	a := writeFile(t, dir, "a.png", encodePNG(t, 1, 1))
	b := writeFile(t, dir, "b.png", encodePNG(t, 1, 1))

	err := app.RunContext(context.Background(), []string{"imgdrop", "upload", a, b})
	require.Error(t, err)

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "1 of 2 files failed")
}

func TestHandler_UploadNoFiles(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	recorder := &testutil.StatusRecorder{}
	app := newTestApp(t, backend, recorder, &bytes.Buffer{})

	err := app.RunContext(context.Background(), []string{"imgdrop", "upload"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files selected")
	assert.Equal(t, []status.Message{status.Error("select image files first")}, recorder.Messages())
	assert.Empty(t, backend.Calls())
}

func TestHandler_UploadMissingFile(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	recorder := &testutil.StatusRecorder{}
	app := newTestApp(t, backend, recorder, &bytes.Buffer{})

	err := app.RunContext(context.Background(), []string{"imgdrop", "upload", filepath.Join(t.TempDir(), "nope.png")})
	require.Error(t, err)

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "1 of 1 files failed")

	errs := recorder.ByKind(status.KindError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Text, `failed to read "nope.png"`)
	assert.Empty(t, backend.Calls())
}

func TestHandler_UploadContinuesPastUnreadablePath(t *testing.T) {
	dir := t.TempDir()
	backend := testutil.NewFakeBackend(t)
	recorder := &testutil.StatusRecorder{}
	out := &bytes.Buffer{}
	app := newTestApp(t, backend, recorder, out)

	photo := writeFile(t, dir, "photo.png", encodePNG(t, 2, 2))

	err := app.RunContext(context.Background(), []string{"imgdrop", "upload", dir, photo})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")

	assert.Contains(t, out.String(), "photo.png -> uploads/photo.png")
	assert.Len(t, backend.CallsFor("photo.png"), 2)

	errs := recorder.ByKind(status.KindError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Text, "is a directory")
	assert.Len(t, recorder.ByKind(status.KindSuccess), 1)
}
