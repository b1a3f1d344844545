package history

import (
	"reflect"
	"testing"

	"github.com/atelier-studio/atelier/internal/site"
)

func doc(name string) *site.Document {
	return site.NewDocument(name, "violet", nil)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := New(0)

	before := doc("before")
	current := doc("after")

	h.Record(before.Clone())
	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	if restored.Meta.Name != "before" {
		t.Errorf("undo restored %q, want %q", restored.Meta.Name, "before")
	}
	if !reflect.DeepEqual(restored, before) {
		t.Error("undo should restore an identical snapshot")
	}

	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("expected redo to succeed")
	}
	if redone.Meta.Name != "after" {
		t.Errorf("redo restored %q, want %q", redone.Meta.Name, "after")
	}
}

func TestUndoEmptyIsNoop(t *testing.T) {
	h := New(0)
	if _, ok := h.Undo(doc("x")); ok {
		t.Error("undo on empty history should report false")
	}
	if _, ok := h.Redo(doc("x")); ok {
		t.Error("redo on empty history should report false")
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history reports availability")
	}
}

func TestRecordClearsRedo(t *testing.T) {
	h := New(0)
	h.Record(doc("a"))
	if _, ok := h.Undo(doc("b")); !ok {
		t.Fatal("undo failed")
	}
	if !h.CanRedo() {
		t.Fatal("expected a redo step after undo")
	}

	h.Record(doc("c"))
	if h.CanRedo() {
		t.Error("new mutation should clear the redo stack")
	}
	if _, ok := h.Redo(doc("d")); ok {
		t.Error("redo after a new mutation should be a no-op")
	}
}

func TestLimitDropsOldest(t *testing.T) {
	h := New(2)
	h.Record(doc("one"))
	h.Record(doc("two"))
	h.Record(doc("three"))

	first, ok := h.Undo(doc("now"))
	if !ok || first.Meta.Name != "three" {
		t.Fatalf("expected to pop three, got %v %v", first, ok)
	}
	second, ok := h.Undo(first)
	if !ok || second.Meta.Name != "two" {
		t.Fatalf("expected to pop two, got %v %v", second, ok)
	}
	if h.CanUndo() {
		t.Error("oldest snapshot should have been dropped by the limit")
	}
}

func TestClear(t *testing.T) {
	h := New(0)
	h.Record(doc("a"))
	h.Undo(doc("b"))
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should drop both stacks")
	}
}
