package upload

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// Loader turns command line paths into a Selection.
type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load builds a selection from paths. A path that cannot be read is left out
// and reported as an *Error; the remaining paths are still loaded.
func (l *Loader) Load(paths []string) (*Selection, []error) {
	files := make([]File, 0, len(paths))
	var errs []error
	for _, p := range paths {
		f, err := l.loadFile(p)
		if err != nil {
			l.logger.Warn("Skipped unreadable path", zap.String("path", p), zap.Error(err))
			errs = append(errs, &Error{Op: "select", File: filepath.Base(p), Err: err})
			continue
		}
		files = append(files, f)
	}

	if len(files) > 0 {
		l.logger.Info("Files selected", zap.Int("count", len(files)))
		for _, f := range files {
			l.logger.Debug("Selected file",
				zap.String("name", f.Name),
				zap.String("mime_type", f.MimeType),
				zap.Int64("size", f.Size),
			)
		}
	}

	return NewSelection(files...), errs
}

func (l *Loader) loadFile(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	if info.IsDir() {
		return File{}, ErrNotAFile
	}

	mimeType, err := DetectContentType(path)
	if err != nil {
		return File{}, err
	}

	return File{
		Name:     filepath.Base(path),
		MimeType: mimeType,
		Size:     info.Size(),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// DetectContentType sniffs the file header and falls back to the extension
// when the content is not recognised. Parameters such as charset are dropped.
func DetectContentType(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type of %s: %w", path, err)
	}

	contentType := mt.String()
	if mt.Is("application/octet-stream") {
		if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
			contentType = byExt
		}
	}

	contentType, _, _ = strings.Cut(contentType, ";")
	return strings.TrimSpace(contentType), nil
}
