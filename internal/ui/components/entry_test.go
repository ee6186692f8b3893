// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/agentdeck/internal/protocol"
	"github.com/jeranaias/agentdeck/internal/timeline"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

func newTestRenderer() *EntryRenderer {
	return NewEntryRenderer(styles.NewTheme(), 80, true)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// =============================================================================
// PER-KIND RENDERING TESTS
// =============================================================================

func TestRenderUserMessage(t *testing.T) {
	r := newTestRenderer()

	out := r.Render(&timeline.Entry{
		Kind:    protocol.KindUserMessage,
		Content: "fix the login bug",
	})

	if !strings.Contains(out, "fix the login bug") {
		t.Errorf("missing message content:\n%s", out)
	}
	if !strings.Contains(out, "you") {
		t.Errorf("missing sender label:\n%s", out)
	}
}

func TestRenderUserMessage_AttachmentBadge(t *testing.T) {
	r := newTestRenderer()

	out := r.Render(&timeline.Entry{
		Kind:    protocol.KindUserMessage,
		Content: "see these",
		Images:  []string{"data:image/png;base64,a", "data:image/png;base64,b"},
	})

	if !strings.Contains(out, "2 images") {
		t.Errorf("missing attachment badge:\n%s", out)
	}
	if strings.Contains(out, "base64") {
		t.Errorf("raw data URI leaked into output:\n%s", out)
	}
}

func TestRenderCommand_RunningThenDone(t *testing.T) {
	r := newTestRenderer()

	running := &timeline.Entry{
		Kind:    protocol.KindCommand,
		Command: "pytest tests/",
	}
	out := r.Render(running)
	if !strings.Contains(out, "pytest tests/") {
		t.Errorf("missing command:\n%s", out)
	}
	if !strings.Contains(out, "running") {
		t.Errorf("nil output should render as running:\n%s", out)
	}

	running.Output = strPtr("3 passed")
	out = r.Render(running)
	if strings.Contains(out, "running") {
		t.Errorf("finished command still shows running:\n%s", out)
	}
	if !strings.Contains(out, "3 passed") {
		t.Errorf("missing command output:\n%s", out)
	}
}

func TestRenderCommand_EmptyOutput(t *testing.T) {
	r := newTestRenderer()

	out := r.Render(&timeline.Entry{
		Kind:    protocol.KindCommand,
		Command: "mkdir build",
		Output:  strPtr(""),
	})

	if strings.Contains(out, "running") {
		t.Errorf("empty output means finished, not running:\n%s", out)
	}
}

func TestRenderTodo_StatusIcons(t *testing.T) {
	r := newTestRenderer()

	out := r.Render(&timeline.Entry{
		Kind: protocol.KindTodo,
		Items: []protocol.TodoItem{
			{ID: 1, Task: "write parser", Status: protocol.TodoDone},
			{ID: 2, Task: "add tests", Status: protocol.TodoInProgress},
			{ID: 3, Task: "update docs", Status: protocol.TodoPending},
		},
	})

	if !strings.Contains(out, styles.StatusIndicators.Success+" write parser") {
		t.Errorf("done item missing success icon:\n%s", out)
	}
	if !strings.Contains(out, styles.StatusIndicators.Active+" add tests") {
		t.Errorf("in-progress item missing active icon:\n%s", out)
	}
	if !strings.Contains(out, styles.StatusIndicators.Pending+" update docs") {
		t.Errorf("pending item missing pending icon:\n%s", out)
	}
}

func TestRenderFileRead(t *testing.T) {
	r := newTestRenderer()

	out := r.Render(&timeline.Entry{
		Kind:    protocol.KindFileRead,
		Path:    "src/auth.py",
		Lines:   intPtr(120),
		Preview: "import os\nimport sys",
	})

	if !strings.Contains(out, "src/auth.py") {
		t.Errorf("missing path:\n%s", out)
	}
	if !strings.Contains(out, "120 lines") {
		t.Errorf("missing line count:\n%s", out)
	}
	if !strings.Contains(out, "import os import sys") {
		t.Errorf("preview should be collapsed to one line:\n%s", out)
	}
}

func TestRenderFileRead_PreviewsDisabled(t *testing.T) {
	r := NewEntryRenderer(styles.NewTheme(), 80, false)

	out := r.Render(&timeline.Entry{
		Kind:    protocol.KindFileRead,
		Path:    "src/auth.py",
		Preview: "secret contents",
	})

	if strings.Contains(out, "secret contents") {
		t.Errorf("preview rendered despite being disabled:\n%s", out)
	}
}

func TestRenderFileWrite_WithOutput(t *testing.T) {
	r := newTestRenderer()

	out := r.Render(&timeline.Entry{
		Kind:    protocol.KindFileWrite,
		Path:    "src/auth.py",
		Preview: "def login():",
		Output:  strPtr("wrote 42 lines"),
	})

	if !strings.Contains(out, "src/auth.py") || !strings.Contains(out, "wrote 42 lines") {
		t.Errorf("missing path or output:\n%s", out)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	r := newTestRenderer()

	if out := r.Render(&timeline.Entry{Kind: protocol.KindUnknown}); out != "" {
		t.Errorf("unknown kind should render nothing, got:\n%s", out)
	}
	if out := r.Render(&timeline.Entry{Kind: protocol.KindFileContent}); out != "" {
		t.Errorf("file_content should render nothing, got:\n%s", out)
	}
}

func TestRenderAll_SkipsEmptyBlocks(t *testing.T) {
	r := newTestRenderer()

	out := r.RenderAll([]*timeline.Entry{
		{Kind: protocol.KindUserMessage, Content: "hello"},
		{Kind: protocol.KindUnknown},
		{Kind: protocol.KindThought, Content: "considering"},
	})

	if !strings.Contains(out, "hello") || !strings.Contains(out, "considering") {
		t.Errorf("missing visible entries:\n%s", out)
	}
	if strings.Contains(out, "\n\n\n\n") {
		t.Errorf("empty block left a gap:\n%s", out)
	}
}
