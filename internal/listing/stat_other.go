//go:build !unix

package listing

import "os"

// statIDs has no platform stat data to draw from here; callers fall back to
// the "unknown" placeholder.
func statIDs(info os.FileInfo) (uid, gid uint32, ok bool) {
	return 0, 0, false
}
