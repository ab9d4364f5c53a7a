// Package ports defines interfaces (contracts) for external dependencies.
// These enable dependency injection and testability via mock implementations.
package ports

import "os"

// FileSystem abstracts the filesystem operations the lister needs.
// Production code uses the osfs adapter; tests use MockFileSystem.
type FileSystem interface {
	// ReadDir reads the named directory and returns its entries.
	ReadDir(name string) ([]os.DirEntry, error)

	// Stat returns file info for the named path, following symlinks.
	Stat(name string) (os.FileInfo, error)

	// Lstat returns file info for the named path without following symlinks.
	Lstat(name string) (os.FileInfo, error)

	// Getwd returns the current working directory.
	Getwd() (string, error)
}
