// Package fsx abstracts where attachment files are read from, so the same
// send code can attach files from local disk or from object storage.
package fsx

import (
	"context"
	"time"
)

// FileInfo represents information about a file
type FileInfo struct {
	Name        string
	Size        int64
	ModTime     time.Time
	IsDir       bool
	ContentType string
}

// FileReader provides read-only operations
type FileReader interface {
	// Exists reports whether path refers to a readable object. A false result
	// with a nil error means the object is absent.
	Exists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Stat(ctx context.Context, path string) (FileInfo, error)
}

// ErrNotExist is returned (possibly wrapped) by readers when a path is absent.
var ErrNotExist = notExistError{}

type notExistError struct{}

func (notExistError) Error() string { return "file does not exist" }
