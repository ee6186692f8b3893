// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the agentdeck TUI.

All colors are defined as lipgloss.AdaptiveColor pairs so the palette
adjusts automatically to light and dark terminal backgrounds. The Theme
type bundles every configured style used by the chat view and its
components, and detects the terminal color profile via termenv.

Status indicators are ASCII-only shapes ([OK], [X], [!]) so state is
readable without color.
*/
package styles
