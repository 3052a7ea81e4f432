package fileops

import (
	"errors"
	"fmt"
)

// FileError is the single error kind returned by Navigator operations. It
// covers every filesystem failure: permission, missing entries, bad paths.
type FileError struct {
	msg  string
	path string
	err  error
}

// NewFileError creates a new file error
func NewFileError(msg, path string, err error) *FileError {
	return &FileError{msg: msg, path: path, err: err}
}

// Error returns the message shown to the user
func (e *FileError) Error() string {
	text := "File Error: " + e.msg
	if e.path != "" {
		text += ": " + e.path
	}
	if e.err != nil {
		text = fmt.Sprintf("%s: %v", text, e.err)
	}
	return text
}

// Unwrap returns the underlying cause
func (e *FileError) Unwrap() error {
	return e.err
}

// Path returns the path the failed operation referred to, if any
func (e *FileError) Path() string {
	return e.path
}

// IsFileError reports whether err is or wraps a *FileError.
func IsFileError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe)
}
