// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the agentdeck TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/protocol"
	"github.com/jeranaias/agentdeck/internal/timeline"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
	"github.com/jeranaias/agentdeck/internal/util"
)

// =============================================================================
// TIMELINE ENTRY RENDERER
// =============================================================================

// previewWidth caps the single-line preview shown under file operations.
const previewWidth = 72

// EntryRenderer projects timeline entries into styled terminal blocks.
type EntryRenderer struct {
	theme        *styles.Theme
	markdown     *Markdown
	width        int
	showPreviews bool
}

// NewEntryRenderer creates a renderer for the given theme and wrap width.
func NewEntryRenderer(theme *styles.Theme, width int, showPreviews bool) *EntryRenderer {
	return &EntryRenderer{
		theme:        theme,
		markdown:     NewMarkdown(width),
		width:        width,
		showPreviews: showPreviews,
	}
}

// SetWidth updates the wrap width for subsequent renders.
func (r *EntryRenderer) SetWidth(width int) {
	r.width = width
	r.markdown.SetWidth(width)
}

// Render renders a single timeline entry. Entries the display has no
// projection for render as an empty string and take no vertical space.
func (r *EntryRenderer) Render(e *timeline.Entry) string {
	switch e.Kind {
	case protocol.KindUserMessage:
		return r.renderUserMessage(e)
	case protocol.KindPlan:
		return r.renderPlan(e)
	case protocol.KindThought:
		return r.renderThought(e)
	case protocol.KindTodo:
		return r.renderTodo(e)
	case protocol.KindCommand:
		return r.renderCommand(e)
	case protocol.KindFileRead:
		return r.renderFileRead(e)
	case protocol.KindFileWrite:
		return r.renderFileWrite(e)
	default:
		// Unknown kinds and transport-level frames have no visual form.
		return ""
	}
}

// RenderAll renders the visible entries joined with blank lines.
func (r *EntryRenderer) RenderAll(entries []*timeline.Entry) string {
	var blocks []string
	for _, e := range entries {
		if block := r.Render(e); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

// =============================================================================
// PER-KIND PROJECTIONS
// =============================================================================

func (r *EntryRenderer) renderUserMessage(e *timeline.Entry) string {
	label := r.theme.UserLabel.Render("you")
	if n := len(e.Images); n > 0 {
		noun := "image"
		if n > 1 {
			noun = "images"
		}
		label += " " + r.theme.AttachmentBadge.Render(fmt.Sprintf("%d %s", n, noun))
	}

	body := e.Content
	if strings.TrimSpace(body) == "" {
		body = r.theme.ViewerHint.Render("(attachments only)")
	}
	return label + "\n" + r.theme.UserBlock.Render(body)
}

func (r *EntryRenderer) renderPlan(e *timeline.Entry) string {
	label := r.theme.AssistantLabel.Render("plan")
	return label + "\n" + r.theme.AssistantBlock.Render(r.markdown.Render(e.Content))
}

func (r *EntryRenderer) renderThought(e *timeline.Entry) string {
	return r.theme.ThoughtBlock.Render(r.markdown.Render(e.Content))
}

func (r *EntryRenderer) renderTodo(e *timeline.Entry) string {
	label := r.theme.AssistantLabel.Render("todos")

	var lines []string
	for _, item := range e.Items {
		lines = append(lines, r.renderTodoItem(item))
	}
	return label + "\n" + strings.Join(lines, "\n")
}

func (r *EntryRenderer) renderTodoItem(item protocol.TodoItem) string {
	switch item.Status {
	case protocol.TodoDone:
		return r.theme.TodoDone.Render(styles.StatusIndicators.Success + " " + item.Task)
	case protocol.TodoInProgress:
		return r.theme.TodoInProgress.Render(styles.StatusIndicators.Active + " " + item.Task)
	default:
		return r.theme.TodoPending.Render(styles.StatusIndicators.Pending + " " + item.Task)
	}
}

func (r *EntryRenderer) renderCommand(e *timeline.Entry) string {
	prompt := r.theme.InputPrompt.Render("$")
	line := prompt + " " + r.theme.CommandBlock.Render(e.Command)

	if e.Running() {
		return line + "\n" + r.theme.CommandRunning.Render("running...")
	}
	if *e.Output == "" {
		return line
	}
	return line + "\n" + r.theme.CommandOutput.Render(*e.Output)
}

func (r *EntryRenderer) renderFileRead(e *timeline.Entry) string {
	head := r.theme.FileOpBlock.Render("read ") + r.theme.FilePath.Render(e.Path)
	if e.Lines != nil {
		head += r.theme.ViewerHint.Render(fmt.Sprintf(" (%d lines)", *e.Lines))
	}
	return head + r.renderPreview(e.Preview)
}

func (r *EntryRenderer) renderFileWrite(e *timeline.Entry) string {
	head := r.theme.FileOpBlock.Render("write ") + r.theme.FilePath.Render(e.Path)
	out := head + r.renderPreview(e.Preview)
	if e.Output != nil && *e.Output != "" {
		out += "\n" + r.theme.CommandOutput.Render(*e.Output)
	}
	return out
}

// renderPreview renders a truncated one-line content preview, or nothing
// when previews are disabled or absent.
func (r *EntryRenderer) renderPreview(preview string) string {
	if !r.showPreviews || strings.TrimSpace(preview) == "" {
		return ""
	}
	line := util.TruncateWidth(util.SingleLine(preview), previewWidth)
	return "\n" + r.theme.FilePreview.Render(line)
}

// =============================================================================
// GENERATING INDICATOR
// =============================================================================

// RenderGenerating renders the spinner line shown while the backend is
// producing output. The spinner frame itself comes from the chat model.
func (r *EntryRenderer) RenderGenerating(frame string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left,
		r.theme.Spinner.Render(frame),
		" ",
		r.theme.ThinkingText.Render("working..."),
	)
}
