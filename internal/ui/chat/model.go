// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the agentdeck TUI.
package chat

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/fileview"
	"github.com/jeranaias/agentdeck/internal/protocol"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/timeline"
	"github.com/jeranaias/agentdeck/internal/transport"
	"github.com/jeranaias/agentdeck/internal/ui/components"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view. All state mutation
// happens inside Update on the program goroutine; the transport and the
// drops watcher only inject messages via tea.Program.Send.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Core state machines
	session  *session.Session
	timeline *timeline.Timeline
	viewer   *fileview.Viewer

	// UI components
	viewport    viewport.Model
	input       textinput.Model
	spinner     spinner.Model
	header      *components.Header
	statusBar   *components.StatusBar
	entries     *components.EntryRenderer
	viewerPanel *components.FileViewerPanel

	// Key bindings
	keyMap KeyMap

	// lastFilePath is the most recently seen file operation path, the
	// target of the open-file shortcut.
	lastFilePath string
}

// New creates the chat model wired to its state machines.
func New(theme *styles.Theme, sess *session.Session, tl *timeline.Timeline, viewer *fileview.Viewer, serverURL string, showPreviews bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	// ASCII-compatible spinner frames
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	header := components.NewHeader(theme)
	header.ServerURL = serverURL

	return Model{
		theme:       theme,
		session:     sess,
		timeline:    tl,
		viewer:      viewer,
		viewport:    vp,
		input:       ti,
		spinner:     sp,
		header:      header,
		statusBar:   components.NewStatusBar(theme),
		entries:     components.NewEntryRenderer(theme, 80, showPreviews),
		viewerPanel: components.NewFileViewerPanel(theme),
		keyMap:      DefaultKeyMap(),
	}
}

// Init starts the first dial and the idle animations.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.connectCmd(),
	)
}

// connectCmd dials the backend off the update loop. A successful dial is
// reported through the transport's ConnectedEvent; a failed dial produces
// no transport event, so it is surfaced here to keep retrying.
func (m Model) connectCmd() tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		if err := sess.Connect(); err != nil {
			log.Printf("chat: dial failed: %v", err)
			return DialFailedMsg{Err: err}
		}
		return nil
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update is the single mutation point for all UI state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case transport.ConnectedEvent:
		m.session.HandleConnected()
		m.refresh()
		return m, nil

	case transport.DisconnectedEvent:
		m.session.HandleDisconnected()
		m.refresh()
		return m, reconnectCmd()

	case ReconnectMsg:
		return m, m.connectCmd()

	case DialFailedMsg:
		return m, reconnectCmd()

	case transport.FrameEvent:
		return m.handleFrame(msg.Frame)

	case AttachmentDroppedMsg:
		m.session.StageAttachment(session.NewAttachment(msg.Dropped.Name, msg.Dropped.DataURI))
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.session.IsGenerating() {
			m.refresh()
		}
		return m, cmd
	}

	return m.updateComponents(msg)
}

// handleFrame routes one decoded server frame. File content goes to the
// viewer and never touches the timeline; everything else reconciles into
// the timeline.
func (m Model) handleFrame(f *protocol.Frame) (tea.Model, tea.Cmd) {
	if f == nil {
		return m, nil
	}

	if f.Kind == protocol.KindFileContent {
		var path, content string
		if f.Path != nil {
			path = *f.Path
		}
		if f.Content != nil {
			content = *f.Content
		}
		m.viewer.OnResponse(path, content)
		return m, nil
	}

	entry := m.timeline.Merge(f)
	if entry != nil && (entry.Kind == protocol.KindFileRead || entry.Kind == protocol.KindFileWrite) {
		m.lastFilePath = entry.Path
	}

	m.refresh()
	m.viewport.GotoBottom()
	return m, nil
}

// handleResize recomputes the layout for a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	// Layout: header + viewport + input area + status bar.
	const (
		headerHeight    = 2
		inputAreaHeight = 3
		statusBarHeight = 2
	)
	m.viewport.Width = msg.Width
	m.viewport.Height = msg.Height - headerHeight - inputAreaHeight - statusBarHeight
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}

	m.input.Width = msg.Width - 6
	m.header.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)

	entryWidth := msg.Width - 4
	if max := config.Global().UI.WrapWidth; entryWidth > max {
		entryWidth = max
	}
	m.entries.SetWidth(entryWidth)
	m.viewerPanel.SetSize(msg.Width, m.viewport.Height+2)

	m.refresh()
	return m, nil
}

// handleKey dispatches keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Stop):
		return m.handleStop()

	case key.Matches(msg, m.keyMap.ToggleMode):
		m.session.ToggleMode()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.OpenFile):
		return m.handleOpenFile()

	case key.Matches(msg, m.keyMap.Unstage):
		if n := len(m.session.Attachments()); n > 0 {
			m.session.UnstageAttachment(n - 1)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil
	}

	return m.updateComponents(msg)
}

// handleOpenFile shows the most recently touched file. When the panel was
// closed on that same file with its content already fetched, it is shown
// again as-is; opening a different (or never-fetched) file issues a fresh
// request.
func (m Model) handleOpenFile() (tea.Model, tea.Cmd) {
	if m.lastFilePath == "" {
		return m, nil
	}
	if _, ok := m.viewer.Content(); ok && m.viewer.Path() == m.lastFilePath {
		m.viewer.Reopen()
	} else {
		m.viewer.Open(m.lastFilePath)
	}
	return m, nil
}

// handleStop closes the viewer if open, otherwise severs the transport to
// interrupt generation. The disconnect event that follows schedules the
// reconnect.
func (m Model) handleStop() (tea.Model, tea.Cmd) {
	if m.viewer.IsOpen() {
		m.viewer.Close()
		return m, nil
	}
	if m.session.IsGenerating() {
		m.session.Stop()
		m.refresh()
	}
	return m, nil
}

// handleSubmit sends the composed message.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.session.IsGenerating() {
		return m, nil
	}
	if !m.session.Submit(m.input.Value()) {
		return m, nil
	}
	m.input.Reset()
	m.refresh()
	m.viewport.GotoBottom()
	return m, nil
}

// updateComponents forwards unhandled messages to the focused components.
func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refresh re-renders the timeline projection into the viewport and syncs
// the status bar with session state.
func (m *Model) refresh() {
	wasAtBottom := m.viewport.AtBottom()

	content := m.entries.RenderAll(m.timeline.Visible())
	if m.session.IsGenerating() {
		if content != "" {
			content += "\n\n"
		}
		content += m.entries.RenderGenerating(m.spinner.View())
	}
	m.viewport.SetContent(content)

	if wasAtBottom {
		m.viewport.GotoBottom()
	}

	if m.session.IsConnected() {
		m.input.Placeholder = "Type a message..."
	} else {
		m.input.Placeholder = "reconnecting..."
	}

	m.statusBar.Connected = m.session.IsConnected()
	m.statusBar.Generating = m.session.IsGenerating()
	m.statusBar.Mode = m.session.Mode()
	m.statusBar.StagedCount = len(m.session.Attachments())
}
