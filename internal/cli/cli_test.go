package cli

import (
	"bytes"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mcdonaldj/bls/internal/config"
	"github.com/mcdonaldj/bls/internal/mocks"
)

func init() {
	// Plain output so assertions don't have to strip escape sequences.
	color.NoColor = true
}

// ============================================================================
// Mock implementations for testing
// ============================================================================

// mockConfigService implements ConfigService for testing.
type mockConfigService struct {
	config        *config.Config
	loadErr       error
	saveErr       error
	saved         *config.Config
	configPath    string
	configPathErr error
}

func newMockConfigService() *mockConfigService {
	return &mockConfigService{
		config:     config.DefaultConfig(),
		configPath: "/test/.bls/config.yaml",
	}
}

func (m *mockConfigService) Load() (*config.Config, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.config, nil
}

func (m *mockConfigService) Save(cfg *config.Config) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = cfg
	return nil
}

func (m *mockConfigService) ConfigPath() (string, error) {
	if m.configPathErr != nil {
		return "", m.configPathErr
	}
	return m.configPath, nil
}

func (m *mockConfigService) DefaultConfig() *config.Config {
	return config.DefaultConfig()
}

// ============================================================================
// Test helper
// ============================================================================

// testCLI creates a CLI for testing with mocks and exit tracking.
type testCLI struct {
	*CLI
	out        *bytes.Buffer
	errOut     *bytes.Buffer
	cfgSvc     *mockConfigService
	fs         *mocks.MockFileSystem
	exitCode   int
	exitCalled bool
}

func newTestCLI(args ...string) *testCLI {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	tc := &testCLI{
		out:    out,
		errOut: errOut,
		cfgSvc: newMockConfigService(),
		fs:     mocks.NewMockFileSystem(),
	}

	noColor := func(a ...interface{}) string { return strings.Join(toStrings(a), " ") }

	tc.CLI = &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    append([]string{"bls"}, args...),
		Exit: func(code int) {
			tc.exitCode = code
			tc.exitCalled = true
		},
		ConfigSvc: tc.cfgSvc,
		FS:        tc.fs,
		IDs:       mocks.NewMockIdentity(),
		red:       noColor,
		gray:      noColor,
	}

	return tc
}

func toStrings(a []interface{}) []string {
	result := make([]string, len(a))
	for i, v := range a {
		if s, ok := v.(string); ok {
			result[i] = s
		}
	}
	return result
}

// addSampleTree registers a small tree: d/ contains a.txt, .secret,
// and sub/ containing b.txt.
func (tc *testCLI) addSampleTree() {
	tc.fs.AddDir("/d",
		mocks.NewDirEntry("a.txt", 0644, nil),
		mocks.NewDirEntry(".secret", 0600, nil),
		mocks.NewDirEntry("sub", os.ModeDir|0755, nil),
	)
	tc.fs.AddDir("/d/sub",
		mocks.NewDirEntry("b.txt", 0644, nil),
	)
}

// entryLines returns the rendered rows below the header, ignoring target
// banners and blank lines.
func (tc *testCLI) entryLines() []string {
	var rows []string
	for i, line := range strings.Split(tc.out.String(), "\n") {
		if i == 0 || line == "" || strings.HasPrefix(line, "Listing in:") {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// ============================================================================
// Argument parsing
// ============================================================================

func TestParseArgsOrderIndependent(t *testing.T) {
	a, err := ParseArgs([]string{"-r", "-x", "d"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	b, err := ParseArgs([]string{"d", "-x", "-r"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("flag order changed the result: %+v vs %+v", a, b)
	}
	if !a.Recursive || !a.ShowHidden {
		t.Errorf("flags not recognized: %+v", a)
	}
}

func TestParseArgsLongFlags(t *testing.T) {
	opts, err := ParseArgs([]string{"--recursive", "--hidden"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	if !opts.Recursive || !opts.ShowHidden {
		t.Errorf("long flags not recognized: %+v", opts)
	}
}

func TestParseArgsTargetOrderPreserved(t *testing.T) {
	opts, err := ParseArgs([]string{"b", "-r", "a", "c"})
	if err != nil {
		t.Fatalf("ParseArgs failed: %v", err)
	}
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(opts.Targets, want) {
		t.Errorf("targets = %v, expected %v", opts.Targets, want)
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"-z"})
	if err == nil {
		t.Fatal("ParseArgs accepted an unknown flag")
	}
	if !strings.Contains(err.Error(), "-z") {
		t.Errorf("error %q does not identify the offending token", err)
	}
}

func TestUnknownFlagAbortsBeforeListing(t *testing.T) {
	tc := newTestCLI("/d", "--frobnicate")
	tc.addSampleTree()
	tc.Run()

	if !tc.exitCalled || tc.exitCode != 1 {
		t.Errorf("exit = %d (called=%v), expected 1", tc.exitCode, tc.exitCalled)
	}
	if !strings.Contains(tc.errOut.String(), "--frobnicate") {
		t.Errorf("stderr = %q, expected the offending token", tc.errOut.String())
	}
	if strings.Contains(tc.out.String(), "Listing in:") {
		t.Error("listing output produced despite parse failure")
	}
}

// ============================================================================
// Commands
// ============================================================================

func TestVersionFlags(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"version command", "version"},
		{"-v flag", "-v"},
		{"--version flag", "--version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(tt.arg)
			tc.Version = "2.0.0"
			tc.Run()

			if !strings.Contains(tc.out.String(), "bls v2.0.0") {
				t.Errorf("output = %q, expected version string", tc.out.String())
			}
		})
	}
}

func TestHelpFlags(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		tc := newTestCLI(arg)
		tc.Run()

		if !strings.Contains(tc.out.String(), "Usage:") {
			t.Errorf("%s: output = %q, expected usage text", arg, tc.out.String())
		}
		if tc.exitCalled {
			t.Errorf("%s: help exited with %d", arg, tc.exitCode)
		}
	}
}

func TestInitConfig(t *testing.T) {
	tc := newTestCLI("init")
	tc.Run()

	if tc.cfgSvc.saved == nil {
		t.Fatal("init did not save a config")
	}
	if !strings.Contains(tc.out.String(), tc.cfgSvc.configPath) {
		t.Errorf("output = %q, expected the config path", tc.out.String())
	}
}

func TestInitConfigSaveError(t *testing.T) {
	tc := newTestCLI("init")
	tc.cfgSvc.saveErr = errors.New("disk full")
	tc.Run()

	if !tc.exitCalled || tc.exitCode != 1 {
		t.Errorf("exit = %d (called=%v), expected 1", tc.exitCode, tc.exitCalled)
	}
	if !strings.Contains(tc.errOut.String(), "disk full") {
		t.Errorf("stderr = %q", tc.errOut.String())
	}
}

// ============================================================================
// Listing
// ============================================================================

func TestListHiddenCounts(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"without -x", []string{"/d"}, 2},
		{"with -x", []string{"/d", "-x"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(tt.args...)
			tc.addSampleTree()
			tc.Run()

			if tc.exitCalled {
				t.Errorf("exit(%d) called on success: %s", tc.exitCode, tc.errOut.String())
			}
			if rows := tc.entryLines(); len(rows) != tt.want {
				t.Errorf("rows = %d, expected %d:\n%s", len(rows), tt.want, tc.out.String())
			}
		})
	}
}

func TestListRecursive(t *testing.T) {
	tc := newTestCLI("/d", "-r")
	tc.addSampleTree()
	tc.Run()

	out := tc.out.String()
	for _, name := range []string{"a.txt", "sub", "b.txt"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %q:\n%s", name, out)
		}
	}
	if strings.Contains(out, ".secret") {
		t.Error("hidden entry listed without -x")
	}
	if !strings.Contains(out, "  > b.txt") {
		t.Errorf("nested entry not indented:\n%s", out)
	}
}

func TestListHeaderAndBanner(t *testing.T) {
	tc := newTestCLI("/d")
	tc.addSampleTree()
	tc.Run()

	out := tc.out.String()
	if !strings.Contains(out, "Permissions") {
		t.Errorf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "Listing in: /d") {
		t.Errorf("target banner missing:\n%s", out)
	}
}

func TestListDefaultsToWorkingDirectory(t *testing.T) {
	tc := newTestCLI()
	tc.fs.Cwd = "/mock/cwd"
	tc.fs.AddDir("/mock/cwd", mocks.NewDirEntry("notes.md", 0644, nil))
	tc.Run()

	if !strings.Contains(tc.out.String(), "Listing in: /mock/cwd") {
		t.Errorf("output = %q, expected cwd target", tc.out.String())
	}
	if tc.exitCalled {
		t.Errorf("exit(%d) called on success", tc.exitCode)
	}
}

func TestListWorkingDirectoryFailureIsFatal(t *testing.T) {
	tc := newTestCLI()
	tc.fs.CwdErr = errors.New("cwd gone")
	tc.Run()

	if !tc.exitCalled || tc.exitCode != 1 {
		t.Errorf("exit = %d (called=%v), expected 1", tc.exitCode, tc.exitCalled)
	}
	if !strings.Contains(tc.errOut.String(), "cwd gone") {
		t.Errorf("stderr = %q", tc.errOut.String())
	}
}

func TestListMissingTargetContinues(t *testing.T) {
	tc := newTestCLI("/nope", "/d")
	tc.addSampleTree()
	tc.Run()

	if !strings.Contains(tc.errOut.String(), "/nope") {
		t.Errorf("stderr = %q, expected diagnostic for /nope", tc.errOut.String())
	}
	if !strings.Contains(tc.out.String(), "a.txt") {
		t.Errorf("remaining target not listed:\n%s", tc.out.String())
	}
	if !tc.exitCalled || tc.exitCode != 1 {
		t.Errorf("exit = %d (called=%v), expected 1 after partial failure", tc.exitCode, tc.exitCalled)
	}
}

func TestListFileTarget(t *testing.T) {
	tc := newTestCLI("/d/a.txt")
	tc.fs.Stats["/d/a.txt"] = mocks.NewFileInfo("a.txt", 0644, nil)
	tc.Run()

	rows := tc.entryLines()
	if len(rows) != 1 || !strings.Contains(rows[0], "a.txt") {
		t.Errorf("rows = %v, expected a single line for a.txt", rows)
	}
	if tc.exitCalled {
		t.Errorf("exit(%d) called on success", tc.exitCode)
	}
}

func TestListEmptyRunNotice(t *testing.T) {
	tc := newTestCLI("/empty")
	tc.fs.AddDir("/empty")
	tc.Run()

	if !strings.Contains(tc.out.String(), "No files or directories found.") {
		t.Errorf("output = %q, expected the empty-run notice", tc.out.String())
	}
}

func TestConfigDefaultsApply(t *testing.T) {
	tc := newTestCLI("/d")
	tc.cfgSvc.config.ShowHidden = true
	tc.addSampleTree()
	tc.Run()

	if !strings.Contains(tc.out.String(), ".secret") {
		t.Errorf("config show_hidden ignored:\n%s", tc.out.String())
	}
}

func TestConfigLoadFailureIsFatal(t *testing.T) {
	tc := newTestCLI("/d")
	tc.cfgSvc.loadErr = errors.New("bad yaml")
	tc.addSampleTree()
	tc.Run()

	if !tc.exitCalled || tc.exitCode != 1 {
		t.Errorf("exit = %d (called=%v), expected 1", tc.exitCode, tc.exitCalled)
	}
}

func TestBadThemeColorWarnsAndLists(t *testing.T) {
	tc := newTestCLI("/d")
	tc.cfgSvc.config.Colors.Directory = "chartreuse"
	tc.addSampleTree()
	tc.Run()

	if !strings.Contains(tc.errOut.String(), "chartreuse") {
		t.Errorf("stderr = %q, expected a theme warning", tc.errOut.String())
	}
	if !strings.Contains(tc.out.String(), "a.txt") {
		t.Error("listing aborted on a theme warning")
	}
}
