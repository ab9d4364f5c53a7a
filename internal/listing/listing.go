// Package listing implements the directory traversal behind bls: per-target
// enumeration, hidden-entry filtering, and depth-first recursion, decoupled
// from any rendering concern.
package listing

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mcdonaldj/bls/internal/ports"
)

// Kind classifies a filesystem entry. Rendering color and recursive descent
// are both decided by Kind alone.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
	KindOther
)

// String returns the Type column label for the kind.
func (k Kind) String() string {
	switch k {
	case KindDir:
		return "Directory"
	case KindSymlink:
		return "Symlink"
	case KindOther:
		return "Other"
	default:
		return "File"
	}
}

// Entry is a single listed filesystem object at some depth below a target.
// Entries are transient: produced during a walk, handed to a callback, and
// never retained.
type Entry struct {
	Name  string
	Path  string
	Depth int
	Kind  Kind
	Perm  os.FileMode // permission bits only (mode & 0777)
	Owner string
	Group string
}

// Options controls a listing run. Never mutated once a walk starts.
type Options struct {
	Recursive  bool
	ShowHidden bool
}

// Callbacks receive walk output. Entry is required; Target and Error may be
// nil.
type Callbacks struct {
	// Target is called once per top-level target before its entries.
	Target func(path string)

	// Entry is called once per listed entry.
	Entry func(e Entry)

	// Error is called for a target or entry that could not be read.
	Error func(path string, err error)
}

// Walker lists directories through a FileSystem, resolving owners and
// groups through an Identity.
type Walker struct {
	FS  ports.FileSystem
	IDs ports.Identity
}

// Walk lists each target in the order given. Failures are reported through
// cb.Error and never abort the remaining targets. Walk returns true only if
// every target and entry was read successfully.
func (w *Walker) Walk(targets []string, opts Options, cb Callbacks) bool {
	ok := true
	for _, target := range targets {
		if cb.Target != nil {
			cb.Target(target)
		}
		info, err := w.FS.Lstat(target)
		if err != nil {
			w.fail(cb, target, err)
			ok = false
			continue
		}
		if !info.IsDir() {
			// A plain file target gets a single line, same formatting
			// rules as a directory entry.
			cb.Entry(w.entry(target, filepath.Base(target), 0, info))
			continue
		}
		if !w.walkDir(target, 0, opts, cb) {
			ok = false
		}
	}
	return ok
}

// walkDir lists one directory frame and, in recursive mode, descends
// depth-first into each subdirectory right after its own line. Symlinked
// directories surface as KindSymlink and are never followed.
func (w *Walker) walkDir(dir string, depth int, opts Options, cb Callbacks) bool {
	entries, err := w.FS.ReadDir(dir)
	if err != nil {
		w.fail(cb, dir, err)
		return false
	}

	ok := true
	for _, de := range entries {
		name := de.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := de.Info()
		if err != nil {
			w.fail(cb, path, err)
			ok = false
			continue
		}
		e := w.entry(path, name, depth, info)
		cb.Entry(e)
		if opts.Recursive && e.Kind == KindDir {
			if !w.walkDir(path, depth+1, opts, cb) {
				ok = false
			}
		}
	}
	return ok
}

func (w *Walker) fail(cb Callbacks, path string, err error) {
	if cb.Error != nil {
		cb.Error(path, err)
	}
}

// entry builds an Entry from lstat-style file info. Owner and group lookup
// failures degrade to the numeric IDs; missing platform stat data degrades
// to "unknown".
func (w *Walker) entry(path, name string, depth int, info os.FileInfo) Entry {
	owner, group := "unknown", "unknown"
	if uid, gid, ok := statIDs(info); ok {
		owner = strconv.FormatUint(uint64(uid), 10)
		group = strconv.FormatUint(uint64(gid), 10)
		if w.IDs != nil {
			if n, err := w.IDs.LookupUser(uid); err == nil {
				owner = n
			}
			if n, err := w.IDs.LookupGroup(gid); err == nil {
				group = n
			}
		}
	}
	return Entry{
		Name:  name,
		Path:  path,
		Depth: depth,
		Kind:  kindOf(info.Mode()),
		Perm:  info.Mode().Perm(),
		Owner: owner,
		Group: group,
	}
}

func kindOf(m os.FileMode) Kind {
	switch {
	case m.IsDir():
		return KindDir
	case m&os.ModeSymlink != 0:
		return KindSymlink
	case m.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
