// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package attach stages image attachments from a drop directory.
//
// The terminal has no drag-and-drop, so the client watches a directory
// instead: any image file that appears there is read, encoded as a data
// URI, and delivered to the UI for staging on the next outbound message.
package attach

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// MaxImageBytes caps how large a dropped image may be. Images ride inside
// a single JSON frame, so oversized files are rejected at the door.
const MaxImageBytes = 8 * 1024 * 1024

// settleDelay is how long to wait after a create event before reading the
// file, so a copy in progress has time to finish.
const settleDelay = 200 * time.Millisecond

// mimeByExt maps accepted image extensions to their MIME type. Anything
// else dropped into the directory is ignored.
var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Dropped is one image picked up from the drop directory.
type Dropped struct {
	Name    string
	DataURI string
}

// =============================================================================
// WATCHER
// =============================================================================

// Watcher watches the drop directory and emits Dropped events through a
// notify callback.
type Watcher struct {
	dir     string
	notify  func(Dropped)
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a watcher for dir, creating the directory if needed.
func NewWatcher(dir string, notify func(Dropped)) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create drops dir: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		dir:     dir,
		notify:  notify,
		watcher: fsw,
		done:    make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// processEvents turns create/write events into Dropped notifications.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			// Let the writer finish before reading.
			time.Sleep(settleDelay)
			if d, ok := LoadImage(event.Name); ok {
				w.notify(d)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("attach: watcher: %v", err)
		}
	}
}

// =============================================================================
// IMAGE LOADING
// =============================================================================

// LoadImage reads path and encodes it as a data URI. Returns false for
// non-image extensions, unreadable files, and files over MaxImageBytes.
func LoadImage(path string) (Dropped, bool) {
	mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Dropped{}, false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Dropped{}, false
	}
	if info.Size() > MaxImageBytes {
		log.Printf("attach: %s exceeds %d bytes, skipping", filepath.Base(path), MaxImageBytes)
		return Dropped{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("attach: read %s: %v", path, err)
		return Dropped{}, false
	}

	return Dropped{
		Name:    filepath.Base(path),
		DataURI: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, true
}
