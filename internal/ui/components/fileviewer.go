// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the agentdeck TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/fileview"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
	"github.com/jeranaias/agentdeck/internal/util"
)

// =============================================================================
// FILE VIEWER PANEL
// =============================================================================

// FileViewerPanel renders the overlay panel showing fetched file content
// with syntax highlighting.
type FileViewerPanel struct {
	theme  *styles.Theme
	width  int
	height int
}

// NewFileViewerPanel creates a panel renderer for the given theme.
func NewFileViewerPanel(theme *styles.Theme) *FileViewerPanel {
	return &FileViewerPanel{theme: theme, width: 80, height: 24}
}

// SetSize sets the panel dimensions.
func (p *FileViewerPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the panel for the viewer's current state. Returns an empty
// string when the viewer is closed.
func (p *FileViewerPanel) View(v *fileview.Viewer) string {
	if !v.IsOpen() {
		return ""
	}

	title := p.theme.ViewerTitle.Render(util.TruncateWidth(v.Path(), p.width-8))
	hint := p.theme.ViewerHint.Render("esc to close")
	header := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", hint)

	var body string
	if content, ok := v.Content(); ok {
		body = p.clampHeight(HighlightFile(v.Path(), content))
	} else {
		body = p.theme.ViewerStatus.Render("loading...")
	}

	return p.theme.ViewerPanel.
		Width(p.width - 2).
		Render(header + "\n\n" + body)
}

// clampHeight keeps the body within the panel, noting how much is hidden.
func (p *FileViewerPanel) clampHeight(content string) string {
	maxLines := p.height - 6
	if maxLines < 4 {
		maxLines = 4
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= maxLines {
		return content
	}
	hidden := len(lines) - maxLines
	clipped := strings.Join(lines[:maxLines], "\n")
	noun := "lines"
	if hidden == 1 {
		noun = "line"
	}
	note := p.theme.ViewerHint.Render(fmt.Sprintf("... %d more %s", hidden, noun))
	return clipped + "\n" + note
}
