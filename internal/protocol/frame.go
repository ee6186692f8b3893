// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package protocol defines the JSON frames exchanged with the agent backend
// over the WebSocket connection.
//
// Server frames carry an optional "id" field that correlates multiple frames
// to one evolving timeline entry (e.g. a command frame arrives once when the
// command starts and again with output when it finishes). Optional fields
// decode to pointers so callers can tell "absent" apart from "empty" when
// merging updates.
package protocol

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// MODE
// =============================================================================

// Mode labels whether the backend may take mutating actions for a message.
// It is enforced by the backend, not the client.
type Mode string

const (
	// ModeAgent allows the backend to execute commands and write files.
	ModeAgent Mode = "agent"
	// ModeChat restricts the backend to read-only, advisory responses.
	ModeChat Mode = "chat"
)

// Valid reports whether the mode is one of the two wire values.
func (m Mode) Valid() bool {
	return m == ModeAgent || m == ModeChat
}

// DisplayName returns a human-readable name for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeAgent:
		return "Agent"
	case ModeChat:
		return "Read-Only"
	default:
		return string(m)
	}
}

// =============================================================================
// FRAME KINDS
// =============================================================================

// Kind is the closed set of server frame kinds the client understands.
type Kind int

const (
	// KindUnknown is any frame type this client does not recognize.
	// Unknown frames are a forward-compatible no-op.
	KindUnknown Kind = iota
	KindUserMessage
	KindPlan
	KindTodo
	KindCommand
	KindFileRead
	KindFileWrite
	KindThought
	KindFileContent
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUserMessage:
		return "user_message"
	case KindPlan:
		return "plan"
	case KindTodo:
		return "todo"
	case KindCommand:
		return "command"
	case KindFileRead:
		return "file_read"
	case KindFileWrite:
		return "file_write"
	case KindThought:
		return "thought"
	case KindFileContent:
		return "file_content"
	default:
		return "unknown"
	}
}

// kindByName maps wire type strings to kinds. Anything not listed here
// decodes as KindUnknown.
var kindByName = map[string]Kind{
	"user_message": KindUserMessage,
	"plan":         KindPlan,
	"todo":         KindTodo,
	"command":      KindCommand,
	"file_read":    KindFileRead,
	"file_write":   KindFileWrite,
	"thought":      KindThought,
	"file_content": KindFileContent,
}

// =============================================================================
// TODO ITEMS
// =============================================================================

// TodoStatus is the lifecycle state of a single todo item.
type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in-progress"
	TodoDone       TodoStatus = "done"
)

// TodoItem is one entry of a todo list frame. IDs are unique within a
// list; slice order is display order.
type TodoItem struct {
	ID     int        `json:"id"`
	Task   string     `json:"task"`
	Status TodoStatus `json:"status"`
}

// =============================================================================
// SERVER FRAMES
// =============================================================================

// Frame is a decoded server frame. Pointer fields are nil when the wire
// frame omitted them, which matters for identity-based merging: absent
// fields must not clobber previously received values.
type Frame struct {
	Kind Kind
	// ID is the optional identity correlating updates to one entry.
	ID string

	Content *string
	Images  []string
	Items   []TodoItem
	Command *string
	Output  *string
	Path    *string
	Lines   *int
	Preview *string
}

// wireFrame mirrors the raw JSON layout of every server frame type.
type wireFrame struct {
	Type    string     `json:"type"`
	ID      string     `json:"id,omitempty"`
	Content *string    `json:"content,omitempty"`
	Images  []string   `json:"images,omitempty"`
	Items   []TodoItem `json:"items,omitempty"`
	Command *string    `json:"command,omitempty"`
	Output  *string    `json:"output,omitempty"`
	Path    *string    `json:"path,omitempty"`
	Lines   *int       `json:"lines,omitempty"`
	Preview *string    `json:"content_preview,omitempty"`
}

// Decode parses a raw frame. Malformed JSON or a missing type field is an
// error; the caller drops the frame. An unrecognized type decodes cleanly
// to KindUnknown.
func Decode(raw []byte) (*Frame, error) {
	var w wireFrame
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	if w.Type == "" {
		return nil, fmt.Errorf("decode frame: missing type field")
	}

	return &Frame{
		Kind:    kindByName[w.Type],
		ID:      w.ID,
		Content: w.Content,
		Images:  w.Images,
		Items:   w.Items,
		Command: w.Command,
		Output:  w.Output,
		Path:    w.Path,
		Lines:   w.Lines,
		Preview: w.Preview,
	}, nil
}

// =============================================================================
// CLIENT FRAMES
// =============================================================================

// UserMessage is the client frame carrying a prompt, staged images, and the
// active mode.
type UserMessage struct {
	Type    string   `json:"type"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
	Mode    Mode     `json:"mode"`
}

// NewUserMessage builds a user_message frame. Images may be nil; the wire
// field is always present as an array so the backend can range over it.
func NewUserMessage(content string, images []string, mode Mode) UserMessage {
	if images == nil {
		images = []string{}
	}
	return UserMessage{
		Type:    "user_message",
		Content: content,
		Images:  images,
		Mode:    mode,
	}
}

// FileContentRequest asks the backend for the full contents of one file.
// The response arrives as a file_content frame, never in the timeline.
type FileContentRequest struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// NewFileContentRequest builds a get_file_content frame for path.
func NewFileContentRequest(path string) FileContentRequest {
	return FileContentRequest{Type: "get_file_content", Path: path}
}
