// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the agentdeck TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/protocol"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar renders the bottom status line: connection state, mode, staged
// attachments, and keyboard shortcuts.
type StatusBar struct {
	Connected   bool
	Generating  bool
	Mode        protocol.Mode
	StagedCount int
	Width       int

	theme *styles.Theme
}

// NewStatusBar creates a status bar bound to the theme.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Mode:  protocol.ModeAgent,
		Width: 80,
		theme: theme,
	}
}

// SetWidth sets the available width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	var left []string

	if s.Connected {
		left = append(left, s.theme.Connected.Render(styles.StatusIndicators.Active+" connected"))
	} else {
		left = append(left, s.theme.Disconnected.Render(styles.StatusIndicators.Error+" offline"))
	}

	left = append(left, s.renderMode())

	if s.StagedCount > 0 {
		noun := "image"
		if s.StagedCount > 1 {
			noun = "images"
		}
		left = append(left, s.theme.StagedCount.Render(
			fmt.Sprintf("%d %s staged", s.StagedCount, noun)))
	}

	if s.Generating {
		left = append(left, s.theme.ThinkingText.Render("working..."))
	}

	leftStr := strings.Join(left, s.theme.ShortcutDesc.Render(" | "))
	rightStr := s.renderShortcuts()

	gap := s.Width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		gap = 1
	}

	return s.theme.StatusBar.Width(s.Width).Render(
		leftStr + strings.Repeat(" ", gap) + rightStr)
}

// renderMode renders the current mode with its accent color.
func (s *StatusBar) renderMode() string {
	if s.Mode == protocol.ModeChat {
		return s.theme.ModeChat.Render(s.Mode.DisplayName())
	}
	return s.theme.ModeAgent.Render(s.Mode.DisplayName())
}

// renderShortcuts renders the keyboard hint cluster.
func (s *StatusBar) renderShortcuts() string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"tab", "mode"},
		{"esc", "stop"},
		{"^c", "quit"},
	}

	var parts []string
	for _, sc := range shortcuts {
		parts = append(parts,
			s.theme.ShortcutKey.Render(sc.key)+s.theme.ShortcutDesc.Render(" "+sc.desc))
	}
	return strings.Join(parts, "  ")
}
