// Package ui implements the interactive layout explorer.
package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/navtree/internal/keymap"
	"github.com/oakwood-commons/navtree/internal/layout"
	"github.com/oakwood-commons/navtree/internal/render"
	"github.com/oakwood-commons/navtree/internal/replay"
)

// DefaultLogLines is how many log entries are kept when Options leaves it
// unset.
const DefaultLogLines = 8

// Options configures the explorer.
type Options struct {
	Title    string
	Theme    render.Theme
	NoColor  bool
	LogLines int

	// Watch, when set, triggers Reload whenever the layout file changes.
	// A failed reload keeps the current tree.
	Watch  *Watcher
	Reload func() (*layout.Tree, error)
}

// Model is the explorer's Bubble Tea model. The tree must have been built
// with the recorder's Observe hook.
type Model struct {
	tree   *layout.Tree
	rec    *replay.Recorder
	keymap *keymap.Keymap
	keys   keyMap
	help   help.Model
	opts   Options

	width  int
	height int
	steps  int
	status string
	log    []string
}

// New creates an explorer for tree.
func New(tree *layout.Tree, rec *replay.Recorder, km *keymap.Keymap, opts Options) *Model {
	if opts.LogLines <= 0 {
		opts.LogLines = DefaultLogLines
	}
	if opts.Title == "" {
		opts.Title = tree.Doc.Name
	}
	m := &Model{
		tree:   tree,
		rec:    rec,
		keymap: km,
		keys:   newKeyMap(km),
		help:   help.New(),
		opts:   opts,
		status: "ready",
	}
	rec.Drain()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.opts.Watch == nil || m.opts.Reload == nil {
		return nil
	}
	return watchCmd(m.opts.Watch)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.SetWidth(msg.Width)
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case layoutChangedMsg:
		m.reload()
		return m, m.Init()
	case watchErrMsg:
		m.status = fmt.Sprintf("watch: %v", msg.err)
		return m, m.Init()
	}
	return m, nil
}

func (m *Model) reload() {
	tree, err := m.opts.Reload()
	if err != nil {
		m.rec.Drain()
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}
	m.tree = tree
	m.steps = 0
	m.log = nil
	m.status = "reloaded"
	m.appendLog(m.rec.Drain()...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Clear):
		m.log = nil
		return nil
	case key.Matches(msg, m.keys.Reset):
		_ = m.tree.Root.Unfocus()
		m.status = "focus cleared"
		m.appendLog(m.rec.Drain()...)
		return nil
	}

	ev, ok := m.keymap.FromMsg(msg)
	if !ok {
		m.status = fmt.Sprintf("%s: not bound", msg.String())
		return nil
	}
	m.steps++
	step := replay.Apply(m.tree.Root, m.rec, m.steps, ev)
	m.status = fmt.Sprintf("#%d %s: %s", step.Index, step.Event, step.Outcome)
	if step.Target != "" {
		m.status += " → " + step.Target
	}
	m.appendLog(step.Notifications...)
	return nil
}

func (m *Model) appendLog(notes ...replay.Notification) {
	for _, n := range notes {
		m.log = append(m.log, n.String())
	}
	if extra := len(m.log) - m.opts.LogLines; extra > 0 {
		m.log = m.log[extra:]
	}
}

// Status returns the status line text.
func (m *Model) Status() string {
	return m.status
}

// Log returns the retained notification log, oldest first.
func (m *Model) Log() []string {
	return m.log
}

// Render draws the explorer.
func (m *Model) Render() string {
	title := lipgloss.NewStyle()
	muted := lipgloss.NewStyle()
	if !m.opts.NoColor {
		title = title.Bold(true).Foreground(m.opts.Theme.Path)
		muted = muted.Foreground(m.opts.Theme.Idle)
	}

	sections := []string{
		title.Render(strings.TrimSpace("navtree " + m.opts.Title)),
		render.Tree(m.tree.Root, render.TreeOptions{
			Theme:   m.opts.Theme,
			NoColor: m.opts.NoColor,
			Kind:    m.tree.Kind,
		}),
		m.status,
	}
	if len(m.log) > 0 {
		sections = append(sections, muted.Render(strings.Join(m.log, "\n")))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	v := tea.NewView(m.Render())
	v.AltScreen = true
	return v
}
