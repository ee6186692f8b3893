// agentdeck - A terminal front-end for an agentic coding backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/agentdeck/internal/attach"
	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/fileview"
	"github.com/jeranaias/agentdeck/internal/session"
	"github.com/jeranaias/agentdeck/internal/timeline"
	"github.com/jeranaias/agentdeck/internal/transport"
	"github.com/jeranaias/agentdeck/internal/ui/chat"
	"github.com/jeranaias/agentdeck/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	serverURL := flag.String("server", "", "backend WebSocket URL (overrides config)")
	mode := flag.String("mode", "", "initial mode: agent or chat (overrides config)")
	dropsDir := flag.String("drops", "", "directory watched for image attachments (overrides config)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("agentdeck %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *mode != "" {
		cfg.DefaultMode = *mode
	}
	if *dropsDir != "" {
		cfg.DropsDir = *dropsDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	// Bubble Tea owns the terminal, so logs go to a file.
	closeLog := setupLogging()
	defer closeLog()

	theme := styles.NewTheme()
	tl := timeline.New()

	// The transport's notify callback feeds events into the update loop.
	// The program variable is assigned before anything can fire: the
	// first dial happens from Init, which runs inside program.Run.
	var program *tea.Program
	client := transport.New(cfg.ServerURL, func(ev transport.Event) {
		program.Send(ev)
	})

	sess := session.New(client, tl, cfg.Mode())
	viewer := fileview.New(client)

	m := chat.New(theme, sess, tl, viewer, cfg.ServerURL, cfg.UI.ShowPreviews)

	program = tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// The drops watcher starts after the program exists so its callback
	// never sees a nil program.
	watcher, err := attach.NewWatcher(cfg.DropsDir, func(d attach.Dropped) {
		program.Send(chat.AttachmentDroppedMsg{Dropped: d})
	})
	if err != nil {
		log.Printf("drops watcher disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running agentdeck: %v\n", err)
		os.Exit(1)
	}

	client.Close()
}

// setupLogging redirects the standard logger to the agentdeck log file.
// Returns a closer; on failure logging is discarded rather than fighting
// the TUI for stdout.
func setupLogging() func() {
	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }
}

