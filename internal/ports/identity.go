package ports

// Identity resolves numeric owner and group IDs to names.
// Production code uses the osid adapter; tests use MockIdentity.
type Identity interface {
	// LookupUser returns the user name for uid.
	LookupUser(uid uint32) (string, error)

	// LookupGroup returns the group name for gid.
	LookupGroup(gid uint32) (string, error)
}
