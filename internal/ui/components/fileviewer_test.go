// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/agentdeck/internal/fileview"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

type nullSender struct{}

func (nullSender) Send(any)          {}
func (nullSender) IsConnected() bool { return true }

func TestFileViewerPanel_Closed(t *testing.T) {
	p := NewFileViewerPanel(styles.NewTheme())
	v := fileview.New(nullSender{})

	if out := p.View(v); out != "" {
		t.Errorf("closed viewer should render nothing, got:\n%s", out)
	}
}

func TestFileViewerPanel_Loading(t *testing.T) {
	p := NewFileViewerPanel(styles.NewTheme())
	p.SetSize(100, 30)

	v := fileview.New(nullSender{})
	v.Open("src/main.py")

	out := p.View(v)
	if !strings.Contains(out, "src/main.py") {
		t.Errorf("missing path in title:\n%s", out)
	}
	if !strings.Contains(out, "loading") {
		t.Errorf("missing loading state:\n%s", out)
	}
}

func TestFileViewerPanel_Content(t *testing.T) {
	p := NewFileViewerPanel(styles.NewTheme())
	p.SetSize(100, 30)

	v := fileview.New(nullSender{})
	v.Open("src/main.py")
	v.OnResponse("src/main.py", "print('hello')")

	out := p.View(v)
	if strings.Contains(out, "loading") {
		t.Errorf("loaded viewer still shows loading:\n%s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("missing file content:\n%s", out)
	}
}

func TestFileViewerPanel_ClampsLongFiles(t *testing.T) {
	p := NewFileViewerPanel(styles.NewTheme())
	p.SetSize(100, 12)

	v := fileview.New(nullSender{})
	v.Open("notes.txt")
	v.OnResponse("notes.txt", strings.Repeat("line\n", 50))

	out := p.View(v)
	if !strings.Contains(out, "more line") {
		t.Errorf("long file should note hidden lines:\n%s", out)
	}
}

func TestHighlightFile_AddsLineNumbers(t *testing.T) {
	out := HighlightFile("main.go", "package main\n\nfunc main() {}\n")

	if !strings.Contains(out, "1") || !strings.Contains(out, "3") {
		t.Errorf("missing line numbers:\n%s", out)
	}
	if !strings.Contains(out, "main") {
		t.Errorf("missing content:\n%s", out)
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	const src = "totally plain text"
	out := HighlightCode(src, "not-a-language")
	if !strings.Contains(out, "plain text") {
		t.Errorf("fallback should keep content:\n%s", out)
	}
}
