// Package tui implements the interactive directory browser behind `bls ui`.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcdonaldj/bls/internal/adapters/browsersvc"
	"github.com/mcdonaldj/bls/internal/ports"
)

// Model is the main TUI model: one directory at a time, navigable.
type Model struct {
	svc ports.BrowserService

	dir        string
	entries    []ports.BrowserEntry
	cursor     int
	showHidden bool

	width    int
	height   int
	quitting bool

	// Status message
	statusMsg string
	statusErr bool
}

// Key bindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Hidden key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "parent"),
	),
	Hidden: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "hidden"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// NewModel creates a model rooted at dir using the real filesystem.
func NewModel(dir string) (*Model, error) {
	return NewModelWithService(dir, browsersvc.New())
}

// NewModelWithService creates a model with an injected service for testing.
func NewModelWithService(dir string, svc ports.BrowserService) (*Model, error) {
	cfg, err := svc.LoadConfig()
	if err != nil {
		return nil, err
	}
	m := &Model{svc: svc, dir: dir, showHidden: cfg.ShowHidden}
	if err := m.loadEntries(); err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	return m, nil
}

// loadEntries refreshes the entry list for the current directory.
func (m *Model) loadEntries() error {
	entries, err := m.svc.ListDir(m.dir, m.showHidden)
	if err != nil {
		return err
	}
	m.entries = entries
	if m.cursor >= len(m.entries) {
		m.cursor = 0
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Clear status on any key
		m.statusMsg = ""
		m.statusErr = false

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Enter):
			if len(m.entries) == 0 {
				break
			}
			entry := m.entries[m.cursor]
			if !entry.Dir {
				break
			}
			m.enter(entry.Path)

		case key.Matches(msg, keys.Back):
			parent := filepath.Dir(m.dir)
			if parent != m.dir {
				m.enter(parent)
			}

		case key.Matches(msg, keys.Hidden):
			m.showHidden = !m.showHidden
			if err := m.loadEntries(); err != nil {
				m.statusMsg = fmt.Sprintf("Error: %v", err)
				m.statusErr = true
			}
		}
	}

	return m, nil
}

// enter switches the browser to dir, staying put on failure.
func (m *Model) enter(dir string) {
	prev := m.dir
	m.dir = dir
	m.cursor = 0
	if err := m.loadEntries(); err != nil {
		m.dir = prev
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		m.statusErr = true
		_ = m.loadEntries()
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render(" bls "))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(m.dir))
	b.WriteString("\n\n")

	// Header
	header := fmt.Sprintf("  %-32s %-10s %-12s %-12s %s",
		"NAME", "TYPE", "OWNER", "GROUP", "PERM")
	b.WriteString(dimStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", 74)))
	b.WriteString("\n")

	// List items
	visibleHeight := m.height - 9
	if visibleHeight < 5 {
		visibleHeight = 5
	}

	start := 0
	if m.cursor >= visibleHeight {
		start = m.cursor - visibleHeight + 1
	}

	for i := start; i < len(m.entries) && i < start+visibleHeight; i++ {
		e := m.entries[i]
		cursor := "  "
		style := kindStyles[e.Kind]
		if i == m.cursor {
			cursor = "▸ "
			style = selectedStyle.Foreground(style.GetForeground())
		}

		line := fmt.Sprintf("%s%-32s %-10s %-12s %-12s %s",
			cursor, truncate(e.Name, 32), e.Kind, e.Owner, e.Group, e.Perm)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render("  (empty)"))
		b.WriteString("\n")
	}

	// Pad to fixed height
	for i := len(m.entries); i < visibleHeight; i++ {
		b.WriteString("\n")
	}

	// Status
	if m.statusMsg != "" {
		if m.statusErr {
			b.WriteString(errorBadge.Render(m.statusMsg))
		} else {
			b.WriteString(dimStyle.Render(m.statusMsg))
		}
	}
	b.WriteString("\n")

	// Help
	help := "[↑/↓] navigate  [enter] open  [esc] parent  [.] hidden  [q] quit"
	b.WriteString(helpStyle.Render(help))

	return appStyle.Render(b.String())
}

// Run starts the TUI rooted at dir.
func Run(dir string) error {
	m, err := NewModel(dir)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
