package upload

import (
	"bytes"
	"io"
	"strings"
	"time"
)

// File is one entry of a selection. Content is read through Open, which
// returns a fresh reader on every call.
type File struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`

	open func() (io.ReadCloser, error)
}

func NewFile(name, mimeType string, content []byte) File {
	return File{
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(content)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func (f File) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	return f.open()
}

func (f File) IsImage() bool {
	return strings.HasPrefix(f.MimeType, "image/")
}

// Selection is the ordered set of files picked by the user.
type Selection struct {
	files []File
}

func NewSelection(files ...File) *Selection {
	return &Selection{files: files}
}

func (s *Selection) Files() []File {
	return append([]File(nil), s.files...)
}

func (s *Selection) Len() int {
	return len(s.files)
}

// Reset empties the selection.
func (s *Selection) Reset() {
	s.files = nil
}

type Credential struct {
	PresignedURL string `json:"presignedUrl"`
	FileName     string `json:"fileName"`
	ExpiresIn    int    `json:"expiresIn,omitempty"`
}

type Result struct {
	File      string `json:"file"`
	ObjectKey string `json:"object_key,omitempty"`
	Err       error  `json:"-"`
}

func (r Result) OK() bool {
	return r.Err == nil
}

// CompletedEvent is published on utils.EventUploadCompleted for every file
// that reached the object store.
type CompletedEvent struct {
	BatchID     string    `json:"batch_id"`
	FileName    string    `json:"file_name"`
	ObjectKey   string    `json:"object_key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
