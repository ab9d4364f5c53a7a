//go:build unix

package listing

import (
	"os"
	"syscall"
)

// statIDs extracts the numeric owner and group from platform stat data.
func statIDs(info os.FileInfo) (uid, gid uint32, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return st.Uid, st.Gid, true
}
