// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline holds the ordered event log driving the main display.
package timeline

import (
	"github.com/jeranaias/agentdeck/internal/protocol"
)

// =============================================================================
// TIMELINE TYPE
// =============================================================================

// Timeline is the append-or-patch log of entries. Order is insertion order;
// identity-based updates patch an existing entry at its original index and
// never reorder anything.
//
// All mutation happens on the Bubble Tea update loop, so no locking is
// needed: one logical writer, readers see it through View.
type Timeline struct {
	entries []*Entry

	// byIdentity maps an entry identity to its index in entries.
	byIdentity map[string]int
}

// New creates an empty timeline.
func New() *Timeline {
	return &Timeline{
		byIdentity: make(map[string]int),
	}
}

// =============================================================================
// MERGE
// =============================================================================

// Merge applies a server frame to the timeline.
//
// If the frame carries an identity already present, the existing entry is
// shallow-merged in place: fields present in the frame override, fields the
// frame omitted keep their previous values, and the entry keeps its index.
// Otherwise the frame becomes a new entry at the end.
//
// Frames with an unrecognized kind and file_content frames are ignored;
// the latter belong to the file viewer, not the timeline. Returns the
// affected entry, or nil when the frame was ignored.
func (t *Timeline) Merge(f *protocol.Frame) *Entry {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case protocol.KindUnknown, protocol.KindFileContent:
		return nil
	}

	if f.ID != "" {
		if idx, ok := t.byIdentity[f.ID]; ok {
			entry := t.entries[idx]
			entry.apply(f)
			return entry
		}
	}

	entry := &Entry{
		Kind:     f.Kind,
		Identity: f.ID,
	}
	entry.apply(f)
	t.append(entry)
	return entry
}

// AppendLocal appends a local-origin entry (the optimistic user message).
// Local entries carry no identity and can never be patched.
func (t *Timeline) AppendLocal(e *Entry) {
	if e == nil {
		return
	}
	e.Identity = ""
	e.LocalOrigin = true
	t.append(e)
}

func (t *Timeline) append(e *Entry) {
	t.entries = append(t.entries, e)
	if e.Identity != "" {
		t.byIdentity[e.Identity] = len(t.entries) - 1
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Entries returns the full log in order, incomplete entries included.
func (t *Timeline) Entries() []*Entry {
	return t.entries
}

// Visible returns the entries that pass their completeness predicate, in
// timeline order. This is what the projection renders.
func (t *Timeline) Visible() []*Entry {
	visible := make([]*Entry, 0, len(t.entries))
	for _, e := range t.entries {
		if e.Complete() {
			visible = append(visible, e)
		}
	}
	return visible
}

// Len returns the number of entries, incomplete ones included.
func (t *Timeline) Len() int {
	return len(t.entries)
}

// IndexOf returns the position of the entry with the given identity, or -1.
func (t *Timeline) IndexOf(identity string) int {
	if idx, ok := t.byIdentity[identity]; ok {
		return idx
	}
	return -1
}

// Clear removes all entries.
func (t *Timeline) Clear() {
	t.entries = nil
	t.byIdentity = make(map[string]int)
}

// IsEmpty returns true when there are no entries.
func (t *Timeline) IsEmpty() bool {
	return len(t.entries) == 0
}
