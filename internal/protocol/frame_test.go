// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package protocol defines the JSON frames exchanged with the agent backend.
package protocol

import (
	"encoding/json"
	"testing"
)

// =============================================================================
// DECODE TESTS
// =============================================================================

func TestDecode_Thought(t *testing.T) {
	f, err := Decode([]byte(`{"type":"thought","id":"thought-ab12","content":"Looking at the bug."}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if f.Kind != KindThought {
		t.Errorf("Kind = %v, want KindThought", f.Kind)
	}
	if f.ID != "thought-ab12" {
		t.Errorf("ID = %q, want thought-ab12", f.ID)
	}
	if f.Content == nil || *f.Content != "Looking at the bug." {
		t.Errorf("Content = %v, want non-nil 'Looking at the bug.'", f.Content)
	}
}

func TestDecode_CommandWithoutOutput(t *testing.T) {
	f, err := Decode([]byte(`{"type":"command","id":"evt-1","command":"npm test"}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if f.Kind != KindCommand {
		t.Errorf("Kind = %v, want KindCommand", f.Kind)
	}
	if f.Command == nil || *f.Command != "npm test" {
		t.Errorf("Command = %v, want 'npm test'", f.Command)
	}
	// Absence of output means the command is still running; it must decode
	// to nil, not "".
	if f.Output != nil {
		t.Errorf("Output = %q, want nil", *f.Output)
	}
}

func TestDecode_CommandWithEmptyOutput(t *testing.T) {
	f, err := Decode([]byte(`{"type":"command","id":"evt-1","command":"npm test","output":""}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if f.Output == nil {
		t.Fatal("Output = nil, want non-nil empty string")
	}
	if *f.Output != "" {
		t.Errorf("Output = %q, want empty", *f.Output)
	}
}

func TestDecode_Todo(t *testing.T) {
	raw := `{"type":"todo","id":"t1","items":[{"id":1,"task":"write tests","status":"pending"},{"id":2,"task":"ship","status":"done"}]}`
	f, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if f.Kind != KindTodo {
		t.Errorf("Kind = %v, want KindTodo", f.Kind)
	}
	if len(f.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(f.Items))
	}
	if f.Items[0].Status != TodoPending || f.Items[1].Status != TodoDone {
		t.Errorf("item statuses = %v/%v, want pending/done", f.Items[0].Status, f.Items[1].Status)
	}
}

func TestDecode_FileRead(t *testing.T) {
	raw := `{"type":"file_read","id":"evt-2","path":"main.go","lines":42,"content_preview":"package main"}`
	f, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if f.Path == nil || *f.Path != "main.go" {
		t.Errorf("Path = %v, want main.go", f.Path)
	}
	if f.Lines == nil || *f.Lines != 42 {
		t.Errorf("Lines = %v, want 42", f.Lines)
	}
	if f.Preview == nil || *f.Preview != "package main" {
		t.Errorf("Preview = %v, want 'package main'", f.Preview)
	}
}

func TestDecode_UnknownTypeIsNotAnError(t *testing.T) {
	f, err := Decode([]byte(`{"type":"telemetry","payload":{"x":1}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil for unknown type", err)
	}
	if f.Kind != KindUnknown {
		t.Errorf("Kind = %v, want KindUnknown", f.Kind)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{"type":"plan"`},
		{"not an object", `"plan"`},
		{"missing type", `{"content":"x"}`},
		{"wrong field type", `{"type":"todo","items":"nope"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode([]byte(tc.raw)); err == nil {
				t.Errorf("Decode(%q) = nil error, want error", tc.raw)
			}
		})
	}
}

// =============================================================================
// CLIENT FRAME TESTS
// =============================================================================

func TestNewUserMessage_WireShape(t *testing.T) {
	data, err := json.Marshal(NewUserMessage("fix the bug", nil, ModeAgent))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded["type"] != "user_message" {
		t.Errorf("type = %v, want user_message", decoded["type"])
	}
	if decoded["mode"] != "agent" {
		t.Errorf("mode = %v, want agent", decoded["mode"])
	}
	// images must serialize as [] even when nothing is staged.
	images, ok := decoded["images"].([]any)
	if !ok {
		t.Fatalf("images = %T, want JSON array", decoded["images"])
	}
	if len(images) != 0 {
		t.Errorf("len(images) = %d, want 0", len(images))
	}
}

func TestNewFileContentRequest(t *testing.T) {
	data, err := json.Marshal(NewFileContentRequest("src/app.py"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"type":"get_file_content","path":"src/app.py"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestMode_Valid(t *testing.T) {
	if !ModeAgent.Valid() || !ModeChat.Valid() {
		t.Error("wire modes should be valid")
	}
	if Mode("autonomous").Valid() {
		t.Error("non-wire mode should be invalid")
	}
}
