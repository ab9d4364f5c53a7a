// Package mocks provides mock implementations for testing.
package mocks

import (
	"io/fs"
	"os"
	"time"

	"github.com/mcdonaldj/bls/internal/ports"
)

// MockFileSystem implements ports.FileSystem for testing.
type MockFileSystem struct {
	// Dirs maps paths to directory entries for ReadDir
	Dirs map[string][]os.DirEntry
	// Stats maps paths to FileInfo for Stat and Lstat
	Stats map[string]os.FileInfo
	// Errors maps paths to errors (for simulating failures)
	Errors map[string]error
	// Cwd is returned by Getwd
	Cwd string
	// CwdErr makes Getwd fail
	CwdErr error
}

// NewMockFileSystem creates a new mock filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Dirs:   make(map[string][]os.DirEntry),
		Stats:  make(map[string]os.FileInfo),
		Errors: make(map[string]error),
		Cwd:    "/mock/cwd",
	}
}

// AddDir registers a directory with the given entries, visible to both
// ReadDir and Lstat.
func (m *MockFileSystem) AddDir(path string, entries ...os.DirEntry) {
	m.Dirs[path] = entries
	m.Stats[path] = NewFileInfo(path, os.ModeDir|0755, nil)
}

// ReadDir reads the named directory and returns its entries.
func (m *MockFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	if entries, ok := m.Dirs[name]; ok {
		return entries, nil
	}
	return nil, os.ErrNotExist
}

// Stat returns file info for the named path.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	return m.Lstat(name)
}

// Lstat returns file info for the named path.
func (m *MockFileSystem) Lstat(name string) (os.FileInfo, error) {
	if err, ok := m.Errors[name]; ok {
		return nil, err
	}
	if info, ok := m.Stats[name]; ok {
		return info, nil
	}
	return nil, os.ErrNotExist
}

// Getwd returns the configured working directory.
func (m *MockFileSystem) Getwd() (string, error) {
	if m.CwdErr != nil {
		return "", m.CwdErr
	}
	return m.Cwd, nil
}

// FileInfo implements os.FileInfo for testing.
type FileInfo struct {
	FName    string
	FSize    int64
	FMode    os.FileMode
	FModTime time.Time
	SysValue interface{}
}

// NewFileInfo builds a FileInfo with the given base name, mode and optional
// platform stat data for Sys().
func NewFileInfo(name string, mode os.FileMode, sys interface{}) *FileInfo {
	return &FileInfo{FName: name, FMode: mode, SysValue: sys}
}

func (fi *FileInfo) Name() string       { return fi.FName }
func (fi *FileInfo) Size() int64        { return fi.FSize }
func (fi *FileInfo) Mode() os.FileMode  { return fi.FMode }
func (fi *FileInfo) ModTime() time.Time { return fi.FModTime }
func (fi *FileInfo) IsDir() bool        { return fi.FMode.IsDir() }
func (fi *FileInfo) Sys() interface{}   { return fi.SysValue }

// DirEntry implements os.DirEntry for testing.
type DirEntry struct {
	FInfo   *FileInfo
	InfoErr error
}

// NewDirEntry builds a DirEntry whose Info carries the given mode and
// optional Sys() data.
func NewDirEntry(name string, mode os.FileMode, sys interface{}) *DirEntry {
	return &DirEntry{FInfo: NewFileInfo(name, mode, sys)}
}

func (d *DirEntry) Name() string      { return d.FInfo.FName }
func (d *DirEntry) IsDir() bool       { return d.FInfo.IsDir() }
func (d *DirEntry) Type() fs.FileMode { return d.FInfo.FMode.Type() }

func (d *DirEntry) Info() (fs.FileInfo, error) {
	if d.InfoErr != nil {
		return nil, d.InfoErr
	}
	return d.FInfo, nil
}

// Compile-time checks.
var (
	_ ports.FileSystem = (*MockFileSystem)(nil)
	_ os.FileInfo      = (*FileInfo)(nil)
	_ os.DirEntry      = (*DirEntry)(nil)
)
