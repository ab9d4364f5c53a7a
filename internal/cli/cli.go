// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mcdonaldj/bls/internal/adapters/osfs"
	"github.com/mcdonaldj/bls/internal/adapters/osid"
	"github.com/mcdonaldj/bls/internal/config"
	"github.com/mcdonaldj/bls/internal/listing"
	"github.com/mcdonaldj/bls/internal/ports"
	"github.com/mcdonaldj/bls/internal/render"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
	ConfigPath() (string, error)
	DefaultConfig() *config.Config
}

// Options is the parsed command line: listing flags plus target paths, in
// the order given.
type Options struct {
	listing.Options
	Targets []string
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	FS        ports.FileSystem
	IDs       ports.Identity

	// Color functions (can be disabled for testing)
	red  func(a ...interface{}) string
	gray func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		red:     color.New(color.FgRed).SprintFunc(),
		gray:    color.New(color.FgHiBlack).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	exitCode := 0
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(code int) { exitCode = code; _ = exitCode },
		red:     noColor,
		gray:    noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load() (*config.Config, error)  { return config.Load() }
func (d *defaultConfigService) Save(cfg *config.Config) error  { return cfg.Save() }
func (d *defaultConfigService) ConfigPath() (string, error)    { return config.ConfigPath() }
func (d *defaultConfigService) DefaultConfig() *config.Config  { return config.DefaultConfig() }

// Helper methods to get the service or default
func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

func (c *CLI) fs() ports.FileSystem {
	if c.FS != nil {
		return c.FS
	}
	return osfs.New()
}

func (c *CLI) ids() ports.Identity {
	if c.IDs != nil {
		return c.IDs
	}
	return osid.New()
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	args := c.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "init":
			c.InitConfig()
			return
		case "version", "-v", "--version":
			fmt.Fprintf(c.Out, "bls v%s\n", c.Version)
			return
		case "help", "-h", "--help":
			c.PrintUsage()
			return
		}
	}
	c.RunList(args)
}

// PrintUsage prints the help message.
func (c *CLI) PrintUsage() {
	fmt.Fprintln(c.Out, `bls - Color-coded directory lister

Usage:
  bls [paths...] [-r|--recursive] [-x|--hidden]
                           List the given paths (or the current directory)
  bls ui [path]            Browse a directory interactively
  bls init                 Create default config file
  bls version, -v          Show version
  bls help, -h             Show this help

Flags:
  -r, --recursive          Descend into subdirectories depth-first
  -x, --hidden             Include entries whose names begin with '.'

Config: ~/.bls/config.yaml (optional)`)
}

// InitConfig creates the default config file.
func (c *CLI) InitConfig() {
	svc := c.configSvc()
	if err := svc.Save(svc.DefaultConfig()); err != nil {
		fmt.Fprintf(c.Err, "Error saving config: %v\n", err)
		c.Exit(1)
		return
	}
	path, err := svc.ConfigPath()
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "Created config at %s\n", path)
}

// ParseArgs splits args into flags and target paths. Flags may appear in
// any position and order; any other token starting with '-' is an error.
func ParseArgs(args []string) (Options, error) {
	var opts Options
	for _, arg := range args {
		switch arg {
		case "-r", "--recursive":
			opts.Recursive = true
		case "-x", "--hidden":
			opts.ShowHidden = true
		default:
			if strings.HasPrefix(arg, "-") {
				return Options{}, fmt.Errorf("unknown flag: %s", arg)
			}
			opts.Targets = append(opts.Targets, arg)
		}
	}
	return opts, nil
}

// RunList parses listing arguments and renders the requested targets.
// Parse failures abort before anything is listed; traversal failures are
// reported per path and only affect the exit code.
func (c *CLI) RunList(args []string) {
	opts, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintf(c.Err, "%s %v\n", c.red("Error:"), err)
		c.PrintUsage()
		c.Exit(1)
		return
	}

	cfg, err := c.configSvc().Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}
	opts.Recursive = opts.Recursive || cfg.Recursive
	opts.ShowHidden = opts.ShowHidden || cfg.ShowHidden

	fsys := c.fs()
	if len(opts.Targets) == 0 {
		wd, err := fsys.Getwd()
		if err != nil {
			fmt.Fprintf(c.Err, "Error resolving working directory: %v\n", err)
			c.Exit(1)
			return
		}
		opts.Targets = []string{wd}
	}

	r := render.New(c.Out)
	theme, themeErrs := render.ThemeFromConfig(cfg.Colors)
	for _, terr := range themeErrs {
		fmt.Fprintf(c.Err, "%s %v\n", c.gray("Warning:"), terr)
	}
	r.Theme = theme

	walker := &listing.Walker{FS: fsys, IDs: c.ids()}

	r.Header()
	ok := walker.Walk(opts.Targets, opts.Options, listing.Callbacks{
		Target: r.Target,
		Entry:  r.Entry,
		Error: func(path string, err error) {
			fmt.Fprintf(c.Err, "bls: %s: %v\n", path, err)
		},
	})
	r.Finish()

	if !ok {
		c.Exit(1)
	}
}
