// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline holds the ordered event log driving the main display and
// the reconciler that merges server frames into it.
package timeline

import (
	"strings"

	"github.com/jeranaias/agentdeck/internal/protocol"
)

// =============================================================================
// ENTRY TYPE
// =============================================================================

// Entry is one element of the timeline: a user message, a plan, a todo
// list, a command, a file operation, or a model thought.
//
// Pointer fields distinguish "never received" from "received empty". A
// command with a nil Output is still running; an empty Output means it
// finished with nothing to show.
type Entry struct {
	Kind protocol.Kind

	// Identity correlates streamed updates to this entry. Empty for
	// entries that are never updated (including all local-origin ones).
	Identity string

	// LocalOrigin marks the optimistic user message appended on submit,
	// before any server traffic. The server never echoes these back.
	LocalOrigin bool

	// Content is markdown text for user_message, plan, and thought.
	Content string

	// Images are data URIs attached to a user message, in staging order.
	Images []string

	// Items is the todo list, in display order.
	Items []protocol.TodoItem

	// Command fields.
	Command string
	Output  *string

	// File operation fields.
	Path    string
	Lines   *int
	Preview string
}

// NewLocalUserEntry creates the optimistic local-origin user message that
// Submit appends before the backend responds. It carries no identity on
// purpose: the protocol sends none for user messages, so nothing can ever
// merge into it.
func NewLocalUserEntry(content string, images []string) *Entry {
	return &Entry{
		Kind:        protocol.KindUserMessage,
		LocalOrigin: true,
		Content:     content,
		Images:      images,
	}
}

// =============================================================================
// COMPLETENESS
// =============================================================================

// Complete reports whether the entry carries enough payload to render.
// Incomplete entries stay in the timeline (a later identity-based update
// may fill them in) but are suppressed from the visual projection.
func (e *Entry) Complete() bool {
	switch e.Kind {
	case protocol.KindUserMessage:
		return strings.TrimSpace(e.Content) != "" || len(e.Images) > 0
	case protocol.KindPlan, protocol.KindThought:
		return strings.TrimSpace(e.Content) != ""
	case protocol.KindTodo:
		return len(e.Items) > 0
	case protocol.KindCommand:
		return strings.TrimSpace(e.Command) != ""
	case protocol.KindFileRead, protocol.KindFileWrite:
		return e.Path != ""
	default:
		return false
	}
}

// Running reports whether a command entry is still executing. Only
// meaningful for KindCommand.
func (e *Entry) Running() bool {
	return e.Kind == protocol.KindCommand && e.Output == nil
}

// apply shallow-merges a frame into the entry: fields present in the frame
// override, fields the frame omitted are preserved.
func (e *Entry) apply(f *protocol.Frame) {
	if f.Content != nil {
		e.Content = *f.Content
	}
	if f.Images != nil {
		e.Images = f.Images
	}
	if f.Items != nil {
		e.Items = f.Items
	}
	if f.Command != nil {
		e.Command = *f.Command
	}
	if f.Output != nil {
		out := *f.Output
		e.Output = &out
	}
	if f.Path != nil {
		e.Path = *f.Path
	}
	if f.Lines != nil {
		n := *f.Lines
		e.Lines = &n
	}
	if f.Preview != nil {
		e.Preview = *f.Preview
	}
}
