package preview

import (
	"context"
	"fmt"
	"image"
	"io"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"go.uber.org/zap"
)

type OpenFunc func() (io.ReadCloser, error)

// Renderer decodes previews in the background. Each task is independent of
// the upload that started it; Wait only joins them for display.
type Renderer struct {
	gallery *Gallery
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewRenderer(gallery *Gallery, logger *zap.Logger) *Renderer {
	return &Renderer{
		gallery: gallery,
		logger:  logger,
	}
}

func (r *Renderer) Gallery() *Gallery {
	return r.gallery
}

// Clear empties the preview region.
func (r *Renderer) Clear() {
	r.gallery.Clear()
}

// Start renders a preview asynchronously. Failures are logged and dropped.
func (r *Renderer) Start(ctx context.Context, name string, open OpenFunc) {
	gen := r.gallery.current()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		p, err := Render(ctx, name, open)
		if err != nil {
			r.logger.Debug("Preview failed", zap.String("file", name), zap.Error(err))
			return
		}

		if r.gallery.append(gen, p) {
			r.logger.Debug("Preview rendered",
				zap.String("file", name),
				zap.String("format", p.Format),
				zap.Int("width", p.Width),
				zap.Int("height", p.Height),
			)
		}
	}()
}

// Wait blocks until all started previews have finished.
func (r *Renderer) Wait() {
	r.wg.Wait()
}

// Render reads the whole content and decodes the image header.
func Render(ctx context.Context, name string, open OpenFunc) (Preview, error) {
	if err := ctx.Err(); err != nil {
		return Preview{}, err
	}

	rc, err := open()
	if err != nil {
		return Preview{}, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	cr := &countingReader{r: rc}
	cfg, format, err := image.DecodeConfig(cr)
	if err != nil {
		return Preview{}, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	if _, err := io.Copy(io.Discard, cr); err != nil {
		return Preview{}, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return Preview{
		Name:   name,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   cr.n,
	}, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
