// Package history implements the linear undo/redo stack over whole
// document snapshots. Each mutation is one history step; there is no
// coalescing of rapid edits.
package history

import "github.com/atelier-studio/atelier/internal/site"

// DefaultLimit caps the undo stack depth unless overridden.
const DefaultLimit = 50

// History holds past and forward document snapshots. The zero value is
// not usable; create one with New.
type History struct {
	undo  []*site.Document
	redo  []*site.Document
	limit int
}

// New creates a History keeping at most limit undo steps. A limit of
// zero or less falls back to DefaultLimit.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Record pushes a snapshot taken immediately before a mutation onto the
// undo stack and clears the redo stack: any new mutation invalidates the
// forward timeline. When the stack is full the oldest entry is dropped.
func (h *History) Record(snapshot *site.Document) {
	h.undo = append(h.undo, snapshot)
	if len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// Undo pops the latest snapshot, pushes current onto the redo stack and
// returns the popped snapshot. It reports false, leaving both stacks
// untouched, when there is nothing to undo.
func (h *History) Undo(current *site.Document) (*site.Document, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	last := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return last, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(current *site.Document) (*site.Document, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	last := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return last, true
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear drops both stacks, e.g. after importing a new document is not
// desired to be undoable.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
