package upload

import (
	"errors"
	"fmt"

	"imgdrop/internal/utils"
)

var (
	ErrInvalidFileType   = errors.New("not a valid image file")
	ErrCredentialRequest = errors.New("credential request failed")
	ErrUpload            = errors.New("upload failed")
	ErrNetwork           = utils.ErrNetwork
	ErrNotAFile          = errors.New("is a directory")
)

// Error is a per-file failure. Op names the step that failed.
type Error struct {
	Op   string
	File string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("upload.%s %q: %v", e.Op, e.File, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var se *utils.StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
