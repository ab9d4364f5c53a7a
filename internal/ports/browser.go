package ports

import "github.com/mcdonaldj/bls/internal/config"

// BrowserEntry contains one directory entry prepared for display.
type BrowserEntry struct {
	Name  string
	Path  string
	Kind  string
	Dir   bool
	Perm  string
	Owner string
	Group string
}

// BrowserService provides the operations needed by the interactive browser.
// This abstraction allows the TUI to be tested without a real filesystem.
type BrowserService interface {
	// LoadConfig loads the application configuration.
	LoadConfig() (*config.Config, error)

	// ListDir returns the immediate entries of dir.
	ListDir(dir string, showHidden bool) ([]BrowserEntry, error)
}
