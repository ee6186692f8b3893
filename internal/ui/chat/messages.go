// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the agentdeck TUI.
//
// This file defines the Bubble Tea message types owned by the chat view.
// Transport events (transport.ConnectedEvent, transport.DisconnectedEvent,
// transport.FrameEvent) are delivered directly as messages via
// tea.Program.Send and need no wrapping here.
package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/attach"
	"github.com/jeranaias/agentdeck/internal/session"
)

// =============================================================================
// RECONNECT MESSAGES
// =============================================================================

// ReconnectMsg fires after the reconnect delay elapses and triggers a new
// dial attempt.
type ReconnectMsg struct{}

// DialFailedMsg reports a dial attempt that never produced a connection,
// so no transport event will arrive. It keeps the retry chain alive.
type DialFailedMsg struct {
	Err error
}

// reconnectCmd schedules a reconnect attempt after the fixed delay.
func reconnectCmd() tea.Cmd {
	return tea.Tick(session.ReconnectDelay, func(time.Time) tea.Msg {
		return ReconnectMsg{}
	})
}

// =============================================================================
// ATTACHMENT MESSAGES
// =============================================================================

// AttachmentDroppedMsg delivers an image picked up by the drops-directory
// watcher.
type AttachmentDroppedMsg struct {
	Dropped attach.Dropped
}
