// Package osid resolves owner and group names through os/user.
package osid

import (
	"os/user"
	"strconv"

	"github.com/mcdonaldj/bls/internal/ports"
)

// Resolver implements ports.Identity over os/user. Results are cached so a
// recursive listing does not re-resolve the same uid/gid per entry.
type Resolver struct {
	users  map[uint32]string
	groups map[uint32]string
}

// New creates a new Resolver with empty caches.
func New() *Resolver {
	return &Resolver{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

// LookupUser returns the user name for uid.
func (r *Resolver) LookupUser(uid uint32) (string, error) {
	if name, ok := r.users[uid]; ok {
		return name, nil
	}
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", err
	}
	r.users[uid] = u.Username
	return u.Username, nil
}

// LookupGroup returns the group name for gid.
func (r *Resolver) LookupGroup(gid uint32) (string, error) {
	if name, ok := r.groups[gid]; ok {
		return name, nil
	}
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return "", err
	}
	r.groups[gid] = g.Name
	return g.Name, nil
}

// Compile-time check that Resolver implements ports.Identity.
var _ ports.Identity = (*Resolver)(nil)
