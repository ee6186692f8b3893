// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fileview coordinates the on-demand file viewer.
package fileview

import (
	"testing"

	"github.com/jeranaias/agentdeck/internal/protocol"
)

// fakeSender records frames and lets the test flip connectivity.
type fakeSender struct {
	connected bool
	sent      []any
}

func (f *fakeSender) Send(v any)         { f.sent = append(f.sent, v) }
func (f *fakeSender) IsConnected() bool  { return f.connected }

func TestOpen_SendsRequestWhenConnected(t *testing.T) {
	tr := &fakeSender{connected: true}
	v := New(tr)

	v.Open("a.py")

	if !v.IsOpen() || !v.Loading() {
		t.Error("panel should be open and loading")
	}
	if len(tr.sent) != 1 {
		t.Fatalf("sent %d frames, want 1", len(tr.sent))
	}
	req, ok := tr.sent[0].(protocol.FileContentRequest)
	if !ok {
		t.Fatalf("sent %T, want FileContentRequest", tr.sent[0])
	}
	if req.Path != "a.py" {
		t.Errorf("Path = %q, want a.py", req.Path)
	}
}

func TestOpen_SkipsSendWhenDisconnected(t *testing.T) {
	tr := &fakeSender{connected: false}
	v := New(tr)

	v.Open("a.py")

	if len(tr.sent) != 0 {
		t.Errorf("sent %d frames, want 0 while disconnected", len(tr.sent))
	}
	if !v.Loading() {
		t.Error("panel should still open in loading state")
	}
}

func TestOnResponse_MatchingPath(t *testing.T) {
	v := New(&fakeSender{connected: true})

	v.Open("a.py")
	if !v.OnResponse("a.py", "X") {
		t.Fatal("matching response should be accepted")
	}

	content, ok := v.Content()
	if !ok || content != "X" {
		t.Errorf("Content() = %q/%v, want X/true", content, ok)
	}
	if v.Loading() {
		t.Error("panel should no longer be loading")
	}
}

func TestOnResponse_StaleResponseDiscarded(t *testing.T) {
	v := New(&fakeSender{connected: true})

	v.Open("a.py")
	v.Open("b.py")

	// The slow answer for a.py lands after the user moved to b.py.
	if v.OnResponse("a.py", "OLD") {
		t.Fatal("stale response should be discarded")
	}
	if _, ok := v.Content(); ok {
		t.Error("content must remain unset until b.py answers")
	}
	if v.Path() != "b.py" {
		t.Errorf("Path() = %q, want b.py", v.Path())
	}

	if !v.OnResponse("b.py", "NEW") {
		t.Fatal("current response should be accepted")
	}
	content, _ := v.Content()
	if content != "NEW" {
		t.Errorf("Content() = %q, want NEW", content)
	}
}

func TestClose_RetainsStateForReopen(t *testing.T) {
	tr := &fakeSender{connected: true}
	v := New(tr)

	v.Open("a.py")
	v.OnResponse("a.py", "X")
	v.Close()

	if v.IsOpen() {
		t.Error("panel should be closed")
	}

	v.Reopen()
	if !v.IsOpen() {
		t.Error("Reopen should show the panel again")
	}
	content, ok := v.Content()
	if !ok || content != "X" {
		t.Error("reopen should show retained content without refetching")
	}
	if len(tr.sent) != 1 {
		t.Errorf("sent %d frames, want 1 (no refetch on reopen)", len(tr.sent))
	}
}

func TestOpen_SamePathRefetches(t *testing.T) {
	tr := &fakeSender{connected: true}
	v := New(tr)

	v.Open("a.py")
	v.OnResponse("a.py", "X")
	v.Open("a.py")

	if !v.Loading() {
		t.Error("explicit re-open should discard old content and refetch")
	}
	if len(tr.sent) != 2 {
		t.Errorf("sent %d frames, want 2", len(tr.sent))
	}
}

func TestReopen_WithoutPriorOpen(t *testing.T) {
	v := New(&fakeSender{})
	v.Reopen()
	if v.IsOpen() {
		t.Error("Reopen with no prior path should be a no-op")
	}
}
