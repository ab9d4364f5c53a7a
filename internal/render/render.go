// Package render formats listing entries into fixed-width, color-coded rows.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mcdonaldj/bls/internal/config"
	"github.com/mcdonaldj/bls/internal/listing"
)

// rowFormat is the column layout: name, type, owner, group, permissions.
const rowFormat = "%-60s %-10s %-20s %-20s %-10s\n"

// Theme maps entry kinds to row colors. A nil entry renders uncolored.
type Theme map[listing.Kind]*color.Color

// DefaultTheme returns the stock kind colors: directories blue, files green,
// symlinks cyan, anything else yellow.
func DefaultTheme() Theme {
	return Theme{
		listing.KindDir:     color.New(color.FgBlue),
		listing.KindFile:    color.New(color.FgGreen),
		listing.KindSymlink: color.New(color.FgCyan),
		listing.KindOther:   color.New(color.FgYellow),
	}
}

// colorsByName supports the config theme entries.
var colorsByName = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ParseColor returns the named foreground color.
func ParseColor(name string) (*color.Color, error) {
	attr, ok := colorsByName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return color.New(attr), nil
}

// ThemeFromConfig builds a theme from the configured color names. Unknown
// names keep the default for that kind and are reported to the caller.
func ThemeFromConfig(colors config.Colors) (Theme, []error) {
	theme := DefaultTheme()
	var errs []error
	for kind, name := range map[listing.Kind]string{
		listing.KindDir:     colors.Directory,
		listing.KindFile:    colors.File,
		listing.KindSymlink: colors.Symlink,
		listing.KindOther:   colors.Other,
	} {
		if name == "" {
			continue
		}
		c, err := ParseColor(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		theme[kind] = c
	}
	return theme, errs
}

// Renderer writes listing output to Out, one row per entry.
type Renderer struct {
	Out   io.Writer
	Theme Theme

	wrote bool
}

// New creates a Renderer with the default theme.
func New(out io.Writer) *Renderer {
	return &Renderer{Out: out, Theme: DefaultTheme()}
}

// Header writes the column header line.
func (r *Renderer) Header() {
	fmt.Fprintf(r.Out, rowFormat, "Name", "Type", "Owner", "Group", "Permissions")
}

// Target writes the banner line for a top-level target path.
func (r *Renderer) Target(path string) {
	fmt.Fprintf(r.Out, "\nListing in: %s\n", path)
}

// Entry writes one entry row, colored by kind. Nested entries are indented
// two spaces per depth level with a "> " marker.
func (r *Renderer) Entry(e listing.Entry) {
	r.wrote = true
	name := e.Name
	if e.Depth > 0 {
		name = strings.Repeat("  ", e.Depth) + "> " + name
	}
	row := fmt.Sprintf(rowFormat, name, e.Kind.String(), e.Owner, e.Group,
		fmt.Sprintf("%o", uint32(e.Perm)))
	if c := r.Theme[e.Kind]; c != nil {
		c.Fprint(r.Out, row)
		return
	}
	fmt.Fprint(r.Out, row)
}

// Finish writes the empty-run notice if no entry was rendered.
func (r *Renderer) Finish() {
	if !r.wrote {
		fmt.Fprintln(r.Out, "No files or directories found.")
	}
}
