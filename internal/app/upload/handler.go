package upload

import (
	"errors"
	"fmt"
	"io"

	"imgdrop/internal/app/preview"
	"imgdrop/internal/app/status"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type Handler interface {
	Upload(c *cli.Context) error
}

type handler struct {
	loader   *Loader
	service  Service
	renderer *preview.Renderer
	reporter status.Reporter
	out      io.Writer
	logger   *zap.Logger
}

// NewHandler builds the upload command handler. renderer may be nil when
// previews are disabled.
func NewHandler(
	loader *Loader,
	service Service,
	renderer *preview.Renderer,
	reporter status.Reporter,
	out io.Writer,
	logger *zap.Logger,
) Handler {
	return &handler{
		loader:   loader,
		service:  service,
		renderer: renderer,
		reporter: reporter,
		out:      out,
		logger:   logger,
	}
}

func (h *handler) Upload(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		h.reporter.Show(status.Error("select image files first"))
		return cli.Exit("no files selected", 2)
	}

	sel, loadErrs := h.loader.Load(paths)
	for _, err := range loadErrs {
		var fe *Error
		if errors.As(err, &fe) {
			h.reporter.Show(status.Error(fmt.Sprintf("failed to read %q: %v", fe.File, fe.Err)))
		} else {
			h.reporter.Show(status.Error(err.Error()))
		}
	}

	var results []Result
	if sel.Len() > 0 {
		results = h.service.UploadImages(c.Context, sel)
	}

	if h.renderer != nil {
		h.renderer.Wait()
		if items := h.renderer.Gallery().Items(); len(items) > 0 {
			fmt.Fprintln(h.out, "previews:")
			h.renderer.Gallery().Render(h.out)
		}
	}

	failed := len(loadErrs)
	for _, r := range results {
		if !r.OK() {
			failed++
		} else {
			fmt.Fprintf(h.out, "%s -> %s\n", r.File, r.ObjectKey)
		}
	}
	h.logger.Debug("Upload command finished", zap.Int("files", len(paths)), zap.Int("failed", failed))
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d files failed", failed, len(paths)), 1)
	}

	return nil
}
