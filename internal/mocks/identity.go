package mocks

import (
	"fmt"

	"github.com/mcdonaldj/bls/internal/ports"
)

// MockIdentity implements ports.Identity for testing.
type MockIdentity struct {
	// Users maps uids to user names
	Users map[uint32]string
	// Groups maps gids to group names
	Groups map[uint32]string
	// Err, when set, fails every lookup
	Err error
}

// NewMockIdentity creates a new mock identity resolver.
func NewMockIdentity() *MockIdentity {
	return &MockIdentity{
		Users:  make(map[uint32]string),
		Groups: make(map[uint32]string),
	}
}

// LookupUser returns the user name for uid.
func (m *MockIdentity) LookupUser(uid uint32) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if name, ok := m.Users[uid]; ok {
		return name, nil
	}
	return "", fmt.Errorf("unknown uid %d", uid)
}

// LookupGroup returns the group name for gid.
func (m *MockIdentity) LookupGroup(gid uint32) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if name, ok := m.Groups[gid]; ok {
		return name, nil
	}
	return "", fmt.Errorf("unknown gid %d", gid)
}

// Compile-time check that MockIdentity implements ports.Identity.
var _ ports.Identity = (*MockIdentity)(nil)
