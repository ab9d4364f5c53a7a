package mocks

import (
	"os"

	"github.com/mcdonaldj/bls/internal/config"
	"github.com/mcdonaldj/bls/internal/ports"
)

// MockBrowserService implements ports.BrowserService for testing.
type MockBrowserService struct {
	// ConfigResult is returned by LoadConfig
	ConfigResult *config.Config
	// ConfigErr makes LoadConfig fail
	ConfigErr error
	// Entries maps directories to canned listing results
	Entries map[string][]ports.BrowserEntry
	// Errors maps directories to errors
	Errors map[string]error
	// LastShowHidden records the showHidden value of the last ListDir call
	LastShowHidden bool
}

// NewMockBrowserService creates a new mock browser service.
func NewMockBrowserService() *MockBrowserService {
	return &MockBrowserService{
		ConfigResult: config.DefaultConfig(),
		Entries:      make(map[string][]ports.BrowserEntry),
		Errors:       make(map[string]error),
	}
}

// LoadConfig loads the canned configuration.
func (m *MockBrowserService) LoadConfig() (*config.Config, error) {
	if m.ConfigErr != nil {
		return nil, m.ConfigErr
	}
	return m.ConfigResult, nil
}

// ListDir returns the canned entries for dir.
func (m *MockBrowserService) ListDir(dir string, showHidden bool) ([]ports.BrowserEntry, error) {
	m.LastShowHidden = showHidden
	if err, ok := m.Errors[dir]; ok {
		return nil, err
	}
	if entries, ok := m.Entries[dir]; ok {
		return entries, nil
	}
	return nil, os.ErrNotExist
}

// Compile-time check that MockBrowserService implements ports.BrowserService.
var _ ports.BrowserService = (*MockBrowserService)(nil)
