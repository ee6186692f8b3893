// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the main chat view for the agentdeck TUI.

The Model is the single Bubble Tea model of the application. It owns no
domain state of its own: the session, timeline, and file viewer state
machines live in their own packages and are mutated only from Update,
which runs on the program goroutine. The WebSocket transport and the
drops-directory watcher run on their own goroutines and communicate with
the model exclusively by injecting messages through tea.Program.Send.

Layout: header, timeline viewport (replaced by the file viewer panel when
open), input line with staged attachments, status bar.
*/
package chat
