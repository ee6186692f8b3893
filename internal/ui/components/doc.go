// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the agentdeck TUI.

Components are pure projections: they read state owned elsewhere (the
timeline, the session, the file viewer) and render styled strings, never
mutating what they display.

# Key Components

  - EntryRenderer: projects timeline entries into styled blocks per kind
  - FileViewerPanel: overlay panel for fetched file content with chroma
    syntax highlighting
  - StatusBar: connection state, mode, staged attachments, shortcuts
  - Header: title bar with the backend endpoint
  - Markdown: glamour-backed markdown rendering sized to the layout
*/
package components
