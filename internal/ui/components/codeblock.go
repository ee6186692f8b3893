// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the agentdeck TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// USABILITY: Syntax highlighting for better code readability

// HighlightFile applies syntax highlighting to file content, choosing the
// lexer from the filename. Returns the content with line numbers in a
// muted gutter. Highlighting failures degrade to plain text.
func HighlightFile(path, content string) string {
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	highlighted := highlight(content, lexer)
	return addLineNumbers(highlighted)
}

// HighlightCode applies syntax highlighting to a code snippet by language
// name. Unknown languages fall back to content analysis.
func HighlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	return highlight(code, lexer)
}

// highlight runs content through chroma's terminal formatter.
func highlight(code string, lexer chroma.Lexer) string {
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// addLineNumbers prefixes each line with a right-aligned muted line number.
func addLineNumbers(content string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	gutter := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	var out []string
	for i, line := range lines {
		out = append(out, gutter.Render(strconv.Itoa(i+1))+line)
	}
	return strings.Join(out, "\n")
}
