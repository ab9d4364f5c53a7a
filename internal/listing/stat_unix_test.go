//go:build unix

package listing

import (
	"errors"
	"syscall"
	"testing"

	"github.com/mcdonaldj/bls/internal/mocks"
)

func TestStatIDs(t *testing.T) {
	st := &syscall.Stat_t{Uid: 501, Gid: 20}
	info := mocks.NewFileInfo("f", 0644, st)

	uid, gid, ok := statIDs(info)
	if !ok {
		t.Fatal("statIDs reported no stat data")
	}
	if uid != 501 || gid != 20 {
		t.Errorf("uid/gid = %d/%d, expected 501/20", uid, gid)
	}

	if _, _, ok := statIDs(mocks.NewFileInfo("f", 0644, nil)); ok {
		t.Error("statIDs reported stat data for nil Sys")
	}
}

func TestWalkResolvesOwnerAndGroup(t *testing.T) {
	st := &syscall.Stat_t{Uid: 501, Gid: 20}
	fs := mocks.NewMockFileSystem()
	fs.AddDir("/d", mocks.NewDirEntry("a.txt", 0644, st))

	ids := mocks.NewMockIdentity()
	ids.Users[501] = "jake"
	ids.Groups[20] = "staff"

	w := &Walker{FS: fs, IDs: ids}
	c := newCollector()
	w.Walk([]string{"/d"}, Options{}, c.callbacks())

	if len(c.entries) != 1 {
		t.Fatalf("entries = %d, expected 1", len(c.entries))
	}
	if c.entries[0].Owner != "jake" || c.entries[0].Group != "staff" {
		t.Errorf("owner/group = %q/%q, expected jake/staff", c.entries[0].Owner, c.entries[0].Group)
	}
}

func TestWalkLookupFailureFallsBackToNumericIDs(t *testing.T) {
	st := &syscall.Stat_t{Uid: 34512, Gid: 34512}
	fs := mocks.NewMockFileSystem()
	fs.AddDir("/d", mocks.NewDirEntry("a.txt", 0644, st))

	ids := mocks.NewMockIdentity()
	ids.Err = errors.New("no such id")

	w := &Walker{FS: fs, IDs: ids}
	c := newCollector()

	// Lookup failure degrades the line, it never fails the walk.
	if ok := w.Walk([]string{"/d"}, Options{}, c.callbacks()); !ok {
		t.Fatalf("Walk reported failure: %v", c.errs)
	}
	if c.entries[0].Owner != "34512" || c.entries[0].Group != "34512" {
		t.Errorf("owner/group = %q/%q, expected numeric fallback", c.entries[0].Owner, c.entries[0].Group)
	}
}
