// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transport owns the single WebSocket connection to the agent
// backend: connect/reconnect, outbound sends, and dispatch of inbound
// frames.
//
// The client pushes events (connection changes and decoded frames) through
// one notify callback. The caller wires that callback to tea.Program.Send,
// so every event is applied on the Bubble Tea update loop in arrival order
// and no other synchronization is needed downstream.
//
// Because tea.Program.Send blocks while an Update is in flight, notify is
// never invoked from the goroutine that called a Client method: events are
// queued and delivered in order by a dispatcher goroutine owned by the
// client. Close() called from inside Update therefore returns immediately
// instead of deadlocking against the update loop.
package transport

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jeranaias/agentdeck/internal/protocol"
)

const (
	handshakeTimeout = 10 * time.Second
	writeDeadline    = 10 * time.Second
)

// ErrNotConnected is returned by Connect when the dial fails. Send never
// returns it: sending while disconnected is a deliberate silent no-op.
var ErrNotConnected = errors.New("transport: not connected")

// =============================================================================
// EVENTS
// =============================================================================

// Event is anything the transport reports upward. The concrete types below
// double as Bubble Tea messages.
type Event interface{}

// ConnectedEvent fires when a dial succeeds.
type ConnectedEvent struct{}

// DisconnectedEvent fires exactly once per connection teardown, whether it
// was requested or the peer dropped.
type DisconnectedEvent struct {
	// Err is nil for a requested close.
	Err error
}

// FrameEvent delivers one decoded inbound frame.
type FrameEvent struct {
	Frame *protocol.Frame
}

// =============================================================================
// CLIENT
// =============================================================================

// Client manages the single bidirectional connection. All exported methods
// are safe for concurrent use, though in practice lifecycle calls come from
// the update loop and only the read pump runs elsewhere.
type Client struct {
	url    string
	notify func(Event)

	mu   sync.Mutex
	conn *websocket.Conn
	// gen counts teardowns. The read pump remembers the generation it was
	// started under so a pump outliving its connection cannot tear down or
	// double-report the successor.
	gen int

	qmu     sync.Mutex
	qcond   *sync.Cond
	pending []Event
}

// New creates a client for the given ws:// or wss:// URL. notify must be
// non-nil; it is invoked from a dispatcher goroutine that lives as long as
// the client, one event at a time, in emission order.
func New(url string, notify func(Event)) *Client {
	c := &Client{url: url, notify: notify}
	c.qcond = sync.NewCond(&c.qmu)
	go c.dispatch()
	return c
}

// emit queues ev for delivery. It never blocks, so events can be reported
// while holding c.mu and from the update loop itself.
func (c *Client) emit(ev Event) {
	c.qmu.Lock()
	c.pending = append(c.pending, ev)
	c.qmu.Unlock()
	c.qcond.Signal()
}

// dispatch drains the queue in order. notify may block for as long as it
// likes (tea.Program.Send does while an Update runs) without stalling the
// read pump or any Client method.
func (c *Client) dispatch() {
	for {
		c.qmu.Lock()
		for len(c.pending) == 0 {
			c.qcond.Wait()
		}
		ev := c.pending[0]
		c.pending = c.pending[1:]
		c.qmu.Unlock()

		c.notify(ev)
	}
}

// Connect establishes the connection. If one is already live it is torn
// down first, so calling Connect twice never leaks a pump or leaves two
// listeners racing. On success a ConnectedEvent is emitted and the read
// pump starts; on failure the client stays disconnected.
func (c *Client) Connect() error {
	c.mu.Lock()
	if c.conn != nil {
		c.teardownLocked(nil)
	}
	url := c.url
	c.mu.Unlock()

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		log.Printf("transport: dial %s: %v", url, err)
		return ErrNotConnected
	}

	c.mu.Lock()
	c.conn = conn
	gen := c.gen
	c.mu.Unlock()

	c.emit(ConnectedEvent{})
	go c.readPump(conn, gen)
	return nil
}

// Send serializes v as JSON and writes it to the wire. It is a silent
// no-op when disconnected; callers gate user-facing send affordances on
// IsConnected instead of reacting to failures here.
func (c *Client) Send(v any) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	if err := conn.WriteJSON(v); err != nil {
		log.Printf("transport: write: %v", err)
	}
}

// Close tears down the active connection. It uses the same path as an
// unexpected drop, so the caller observes a single DisconnectedEvent
// either way. No-op when already disconnected.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardownLocked(nil)
}

// IsConnected reports whether a connection is live.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// teardownLocked closes the current connection, bumps the generation so
// the old pump goes stale, and reports the disconnect. Callers hold c.mu.
func (c *Client) teardownLocked(err error) {
	if c.conn == nil {
		return
	}
	c.conn.Close()
	c.conn = nil
	c.gen++
	c.emit(DisconnectedEvent{Err: err})
}

// =============================================================================
// READ PUMP
// =============================================================================

// readPump reads frames until the connection dies. Frames that fail to
// decode are dropped: logged, never surfaced, never fatal.
func (c *Client) readPump(conn *websocket.Conn, gen int) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			if c.gen == gen {
				// Unexpected drop: this pump still owns the connection.
				c.teardownLocked(err)
			}
			c.mu.Unlock()
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("transport: read: %v", err)
			}
			return
		}

		frame, err := protocol.Decode(raw)
		if err != nil {
			log.Printf("transport: dropping frame: %v", err)
			continue
		}
		c.emit(FrameEvent{Frame: frame})
	}
}
