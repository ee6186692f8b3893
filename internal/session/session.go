// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session tracks the state of the single logical agent session:
// connection status, generation-in-progress, the active mode, and the
// image attachments staged for the next outbound message.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/agentdeck/internal/protocol"
	"github.com/jeranaias/agentdeck/internal/timeline"
)

// ReconnectDelay is how long Stop waits before dialing again. The pause
// gives the server side time to actually tear down the old session before
// a new connection arrives.
const ReconnectDelay = 500 * time.Millisecond

// Transport is the slice of the transport manager the session drives. The
// session is the only component that writes message frames; the file
// viewer sends its own request frames through the same client.
type Transport interface {
	Connect() error
	Send(v any)
	Close()
	IsConnected() bool
}

// =============================================================================
// ATTACHMENTS
// =============================================================================

// Attachment is one image staged for the next message.
type Attachment struct {
	ID      string
	Name    string
	DataURI string
}

// NewAttachment creates an attachment with a generated ID.
func NewAttachment(name, dataURI string) Attachment {
	return Attachment{
		ID:      uuid.New().String(),
		Name:    name,
		DataURI: dataURI,
	}
}

// =============================================================================
// SESSION
// =============================================================================

// Session owns connection, generation, mode, and staging state. It is
// mutated only on the update loop; transport events reach it through the
// HandleConnected/HandleDisconnected methods.
type Session struct {
	transport Transport
	timeline  *timeline.Timeline

	connected   bool
	generating  bool
	mode        protocol.Mode
	attachments []Attachment
}

// New creates a session in disconnected, idle state.
func New(transport Transport, tl *timeline.Timeline, mode protocol.Mode) *Session {
	if !mode.Valid() {
		mode = protocol.ModeAgent
	}
	return &Session{
		transport: transport,
		timeline:  tl,
		mode:      mode,
	}
}

// Connect dials the backend through the transport.
func (s *Session) Connect() error {
	return s.transport.Connect()
}

// HandleConnected records that the channel is up.
func (s *Session) HandleConnected() {
	s.connected = true
}

// HandleDisconnected records that the channel is gone, whatever the cause.
// An agent mid-response cannot be "in progress" once the channel is gone,
// so generation is forced off; any partially streamed entry is abandoned
// where it stands, not rolled back.
func (s *Session) HandleDisconnected() {
	s.connected = false
	s.generating = false
}

// IsConnected reports the session's view of the connection.
func (s *Session) IsConnected() bool {
	return s.connected
}

// IsGenerating reports whether a response is in flight. The UI shows the
// stop control and disables the input while true.
func (s *Session) IsGenerating() bool {
	return s.generating
}

// Mode returns the active mode label.
func (s *Session) Mode() protocol.Mode {
	return s.mode
}

// SetMode switches the label sent with subsequent messages. It restricts
// nothing locally; enforcement lives in the backend.
func (s *Session) SetMode(mode protocol.Mode) {
	if mode.Valid() {
		s.mode = mode
	}
}

// ToggleMode flips between agent and read-only.
func (s *Session) ToggleMode() {
	if s.mode == protocol.ModeAgent {
		s.mode = protocol.ModeChat
	} else {
		s.mode = protocol.ModeAgent
	}
}

// =============================================================================
// ATTACHMENT STAGING
// =============================================================================

// StageAttachment appends an image to the pending set.
func (s *Session) StageAttachment(a Attachment) {
	s.attachments = append(s.attachments, a)
}

// UnstageAttachment removes the attachment at index i. Out-of-range
// indices are a no-op.
func (s *Session) UnstageAttachment(i int) {
	if i < 0 || i >= len(s.attachments) {
		return
	}
	s.attachments = append(s.attachments[:i], s.attachments[i+1:]...)
}

// Attachments returns the staged attachments in staging order.
func (s *Session) Attachments() []Attachment {
	return s.attachments
}

// =============================================================================
// SUBMIT / STOP
// =============================================================================

// Submit sends text plus the staged attachments as one user message.
//
// It is a no-op when there is nothing to send (blank text and no
// attachments) or while disconnected. Otherwise it appends the optimistic
// local entry to the timeline, flips generation on, sends the frame with
// the current mode, and clears the staged attachments. Returns whether a
// message was sent, so the caller knows to clear the input.
func (s *Session) Submit(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" && len(s.attachments) == 0 {
		return false
	}
	if !s.connected {
		return false
	}

	images := make([]string, 0, len(s.attachments))
	for _, a := range s.attachments {
		images = append(images, a.DataURI)
	}

	s.timeline.AppendLocal(timeline.NewLocalUserEntry(trimmed, images))
	s.generating = true
	s.transport.Send(protocol.NewUserMessage(trimmed, images, s.mode))
	s.attachments = nil
	return true
}

// Stop abandons the in-flight generation by severing the channel. There
// is no cooperative cancel in the protocol: the session closes the
// transport, drops the generating flag, and the caller schedules a fresh
// Connect after ReconnectDelay.
func (s *Session) Stop() {
	s.transport.Close()
	s.generating = false
}
