// Package browsersvc provides the real implementation of ports.BrowserService.
package browsersvc

import (
	"fmt"

	"github.com/mcdonaldj/bls/internal/adapters/osfs"
	"github.com/mcdonaldj/bls/internal/adapters/osid"
	"github.com/mcdonaldj/bls/internal/config"
	"github.com/mcdonaldj/bls/internal/listing"
	"github.com/mcdonaldj/bls/internal/ports"
)

// Service implements ports.BrowserService using the real filesystem.
type Service struct {
	Walker *listing.Walker
}

// New creates a browser service backed by the host OS.
func New() *Service {
	return &Service{
		Walker: &listing.Walker{FS: osfs.New(), IDs: osid.New()},
	}
}

// LoadConfig loads the application configuration.
func (s *Service) LoadConfig() (*config.Config, error) {
	return config.Load()
}

// ListDir returns the immediate entries of dir.
func (s *Service) ListDir(dir string, showHidden bool) ([]ports.BrowserEntry, error) {
	var out []ports.BrowserEntry
	var firstErr error
	s.Walker.Walk([]string{dir}, listing.Options{ShowHidden: showHidden}, listing.Callbacks{
		Entry: func(e listing.Entry) {
			out = append(out, ports.BrowserEntry{
				Name:  e.Name,
				Path:  e.Path,
				Kind:  e.Kind.String(),
				Dir:   e.Kind == listing.KindDir,
				Perm:  fmt.Sprintf("%o", uint32(e.Perm)),
				Owner: e.Owner,
				Group: e.Group,
			})
		},
		Error: func(path string, err error) {
			if firstErr == nil {
				firstErr = err
			}
		},
	})
	if firstErr != nil && out == nil {
		return nil, firstErr
	}
	return out, nil
}

// Compile-time check that Service implements ports.BrowserService.
var _ ports.BrowserService = (*Service)(nil)
