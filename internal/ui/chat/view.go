// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the main chat view for the agentdeck TUI.
//
// This file contains the rendering logic for the chat interface.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the complete chat view.
// Layout: header + timeline (viewport) + input area + status bar. When the
// file viewer is open it replaces the timeline region.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.header.View()
	input := m.renderInput()
	status := m.statusBar.View()

	var body string
	if m.viewer.IsOpen() {
		body = m.viewerPanel.View(m.viewer)
	} else {
		body = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		input,
		status,
	)
}

// renderInput renders the separator, the prompt line, and staged attachment
// names.
func (m Model) renderInput() string {
	var b strings.Builder

	b.WriteString(m.theme.InputContainer.Width(m.width).Render(m.input.View()))

	if atts := m.session.Attachments(); len(atts) > 0 {
		var names []string
		for _, a := range atts {
			names = append(names, a.Name)
		}
		b.WriteString("\n")
		b.WriteString(m.theme.ViewerHint.Render(
			fmt.Sprintf("attached: %s", strings.Join(names, ", "))))
	}

	return b.String()
}
