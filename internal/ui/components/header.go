// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the agentdeck TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with agentdeck branding
// =============================================================================

// Header renders the top title bar.
type Header struct {
	Title     string // Main title (default: "agentdeck")
	ServerURL string // Backend endpoint shown as subtitle
	Width     int    // Available width
	theme     *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "agentdeck",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header line.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render(h.Title)

	var subtitle string
	if h.ServerURL != "" {
		subtitle = h.theme.HeaderSubtitle.Render(h.ServerURL)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", subtitle)
	pad := h.Width - lipgloss.Width(line) - 4
	if pad < 0 {
		pad = 0
	}
	return h.theme.Header.Width(h.Width).Render(line + strings.Repeat(" ", pad))
}
