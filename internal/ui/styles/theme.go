// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the agentdeck TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// TIMELINE ENTRY STYLES
	// ==========================================================================

	UserBlock       lipgloss.Style
	UserLabel       lipgloss.Style
	AssistantBlock  lipgloss.Style
	AssistantLabel  lipgloss.Style
	ThoughtBlock    lipgloss.Style
	CommandBlock    lipgloss.Style
	CommandRunning  lipgloss.Style
	CommandOutput   lipgloss.Style
	FileOpBlock     lipgloss.Style
	FilePath        lipgloss.Style
	FilePreview     lipgloss.Style
	TodoDone        lipgloss.Style
	TodoInProgress  lipgloss.Style
	TodoPending     lipgloss.Style
	AttachmentBadge lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar      lipgloss.Style
	Connected      lipgloss.Style
	Disconnected   lipgloss.Style
	ModeAgent      lipgloss.Style
	ModeChat       lipgloss.Style
	ShortcutKey    lipgloss.Style
	ShortcutDesc   lipgloss.Style
	StagedCount    lipgloss.Style

	// ==========================================================================
	// FILE VIEWER PANEL STYLES
	// ==========================================================================

	ViewerPanel  lipgloss.Style
	ViewerTitle  lipgloss.Style
	ViewerHint   lipgloss.Style
	ViewerStatus lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// ERROR STYLES
	// ==========================================================================

	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Timeline entries
	t.UserBlock = lipgloss.NewStyle().
		Foreground(UserBlockFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(UserBlockBorder).
		PaddingLeft(1)

	t.UserLabel = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.AssistantBlock = lipgloss.NewStyle().
		Foreground(AssistantBlockFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(AssistantBlockBorder).
		PaddingLeft(1)

	t.AssistantLabel = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.ThoughtBlock = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true).
		PaddingLeft(1)

	t.CommandBlock = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.CommandRunning = lipgloss.NewStyle().
		Foreground(CommandRunningFg).
		Italic(true)

	t.CommandOutput = lipgloss.NewStyle().
		Foreground(CommandDoneFg).
		PaddingLeft(2)

	t.FileOpBlock = lipgloss.NewStyle().
		Foreground(TextSecondary).
		PaddingLeft(1)

	t.FilePath = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.FilePreview = lipgloss.NewStyle().
		Foreground(TextMuted).
		PaddingLeft(2)

	t.TodoDone = lipgloss.NewStyle().
		Foreground(Emerald)

	t.TodoInProgress = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.TodoPending = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.AttachmentBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Cyan).
		Padding(0, 1)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.Connected = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.Disconnected = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ModeAgent = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.ModeChat = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StagedCount = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	// File viewer panel
	t.ViewerPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 1)

	t.ViewerTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ViewerHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.ViewerStatus = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Spinner and loading
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Errors
	t.ErrorTitle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
