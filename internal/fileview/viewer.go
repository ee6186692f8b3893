// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fileview coordinates the on-demand file viewer: it issues
// get_file_content requests, remembers which path the panel is showing,
// and routes matching responses into the panel instead of the timeline.
package fileview

import (
	"github.com/jeranaias/agentdeck/internal/protocol"
)

// Sender is the slice of the transport the viewer needs.
type Sender interface {
	Send(v any)
	IsConnected() bool
}

// =============================================================================
// VIEWER
// =============================================================================

// Viewer owns the file viewer state. Mutated only from the update loop.
//
// Content is nil while a response is outstanding; that is the loading
// state, not an error. The protocol defines no failure frame for a fetch,
// and the viewer imposes no timeout of its own: a response that never
// arrives leaves the panel loading until the user opens another path or
// closes it.
type Viewer struct {
	transport Sender

	requestedPath string
	content       *string
	open          bool
}

// New creates a viewer that sends requests through transport.
func New(transport Sender) *Viewer {
	return &Viewer{transport: transport}
}

// Open requests path and opens the panel in loading state. Any previous
// content is discarded even when reopening the same path, so the panel
// always shows a fresh fetch. The request is only sent while connected;
// offline the panel simply stays loading until a later open.
func (v *Viewer) Open(path string) {
	v.requestedPath = path
	v.content = nil
	v.open = true

	if v.transport != nil && v.transport.IsConnected() {
		v.transport.Send(protocol.NewFileContentRequest(path))
	}
}

// Close hides the panel. Path and content are retained so a reopen via
// Reopen shows the last known content instead of refetching.
func (v *Viewer) Close() {
	v.open = false
}

// Reopen shows the panel again without issuing a new request. No-op when
// nothing was ever opened.
func (v *Viewer) Reopen() {
	if v.requestedPath != "" {
		v.open = true
	}
}

// OnResponse routes a file_content frame into the panel. A response whose
// path no longer matches the requested one is stale — the user opened a
// different file while it was in flight — and is discarded so it can never
// overwrite the newer panel. Returns whether the response was accepted.
func (v *Viewer) OnResponse(path, content string) bool {
	if path != v.requestedPath {
		return false
	}
	v.content = &content
	return true
}

// =============================================================================
// PROJECTION ACCESSORS
// =============================================================================

// IsOpen reports whether the panel is showing.
func (v *Viewer) IsOpen() bool {
	return v.open
}

// Path returns the path the panel is (or was last) showing.
func (v *Viewer) Path() string {
	return v.requestedPath
}

// Content returns the fetched content and whether it has arrived.
func (v *Viewer) Content() (string, bool) {
	if v.content == nil {
		return "", false
	}
	return *v.content, true
}

// Loading reports whether the panel is open and still awaiting content.
func (v *Viewer) Loading() bool {
	return v.open && v.content == nil
}
