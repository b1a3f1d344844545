// Package editor exposes the single surface through which all document
// changes flow. Every mutation validates its input, snapshots the
// document for undo, then applies; on rejection nothing changes and no
// history entry is recorded.
package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-studio/atelier/internal/history"
	"github.com/atelier-studio/atelier/internal/site"
)

// Validation rejections. All are local and recoverable: the document is
// left untouched and no history entry is recorded.
var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownType     = errors.New("unknown section type")
	ErrDuplicateType   = errors.New("section type already present")
	ErrHeroNotAddable  = errors.New("hero is seeded, not addable")
	ErrNotPermutation  = errors.New("order is not a permutation of existing sections")
	ErrInvalidColor    = errors.New("malformed hex color")
	ErrColorElement    = errors.New("color element not allowed for this section type")
	ErrWrongCollection = errors.New("collection does not match section type")
	ErrIndexRange      = errors.New("collection index out of range")
	ErrUnknownPalette  = errors.New("unknown palette")
)

// Store owns a document and its history. Construct one per editing
// session; there is no shared global instance.
type Store struct {
	doc  *site.Document
	hist *history.History
}

// NewStore wraps an existing document with a fresh history.
func NewStore(doc *site.Document, historyLimit int) *Store {
	return &Store{doc: doc, hist: history.New(historyLimit)}
}

// Document returns the live document for reading. Callers must not
// mutate it directly; all writes go through the Store.
func (s *Store) Document() *site.Document { return s.doc }

// GetSection returns the section with the given id, or nil.
func (s *Store) GetSection(id string) *site.Section { return s.doc.Get(id) }

// GetGlobal returns the global theme settings.
func (s *Store) GetGlobal() site.Global { return s.doc.Global }

// VisibleSections returns the displayed sections in order.
func (s *Store) VisibleSections() []*site.Section { return s.doc.VisibleSections() }

// snapshot records the pre-mutation state. Called only after all
// validation passed, so a rejected call never consumes a history step.
func (s *Store) snapshot() {
	s.hist.Record(s.doc.Clone())
}

// Undo restores the previous document state. It reports false when
// there is nothing to undo.
func (s *Store) Undo() bool {
	restored, ok := s.hist.Undo(s.doc)
	if !ok {
		return false
	}
	s.doc = restored
	return true
}

// Redo restores the next document state. It reports false when there is
// nothing to redo.
func (s *Store) Redo() bool {
	restored, ok := s.hist.Redo(s.doc)
	if !ok {
		return false
	}
	s.doc = restored
	return true
}

// CanUndo reports whether an undo step is available.
func (s *Store) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (s *Store) CanRedo() bool { return s.hist.CanRedo() }

// AddSection appends a freshly seeded section of the given type. Catalog
// types are singleton per document, and the hero only exists as part of
// the seed template.
func (s *Store) AddSection(t site.SectionType) (*site.Section, error) {
	if !site.KnownType(t) {
		return nil, fmt.Errorf("adding section %q: %w", t, ErrUnknownType)
	}
	if t == site.TypeHero {
		return nil, fmt.Errorf("adding section: %w", ErrHeroNotAddable)
	}
	if s.doc.HasType(t) {
		return nil, fmt.Errorf("adding section %q: %w", t, ErrDuplicateType)
	}

	s.snapshot()
	id := fmt.Sprintf("%s_%s", t, uuid.NewString()[:8])
	sec := site.SeedSection(id, t)
	s.doc.SectionsOrder = append(s.doc.SectionsOrder, id)
	s.doc.SectionsVisibility[id] = true
	s.doc.Sections[id] = sec
	return sec, nil
}

// RemoveSection removes the section wholesale from both the order and
// the section map.
func (s *Store) RemoveSection(id string) error {
	if s.doc.Get(id) == nil {
		return fmt.Errorf("removing section %q: %w", id, ErrUnknownSection)
	}
	s.snapshot()
	order := s.doc.SectionsOrder[:0]
	for _, sid := range s.doc.SectionsOrder {
		if sid != id {
			order = append(order, sid)
		}
	}
	s.doc.SectionsOrder = order
	delete(s.doc.SectionsVisibility, id)
	delete(s.doc.Sections, id)
	return nil
}

// SetVisibility shows or hides a section without removing it.
func (s *Store) SetVisibility(id string, visible bool) error {
	if s.doc.Get(id) == nil {
		return fmt.Errorf("setting visibility of %q: %w", id, ErrUnknownSection)
	}
	s.snapshot()
	s.doc.SectionsVisibility[id] = visible
	return nil
}

// ReorderSections replaces the section order wholesale. The new order
// must be a permutation of the current ids; otherwise the order is left
// unchanged.
func (s *Store) ReorderSections(order []string) error {
	if len(order) != len(s.doc.SectionsOrder) {
		return fmt.Errorf("reordering sections: %w", ErrNotPermutation)
	}
	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if seen[id] || s.doc.Sections[id] == nil {
			return fmt.Errorf("reordering sections: %w", ErrNotPermutation)
		}
		seen[id] = true
	}
	s.snapshot()
	s.doc.SectionsOrder = append([]string(nil), order...)
	return nil
}

// UpdateContent shallow-merges the given fields into the section content.
func (s *Store) UpdateContent(id string, fields map[string]string) error {
	sec := s.doc.Get(id)
	if sec == nil {
		return fmt.Errorf("updating content of %q: %w", id, ErrUnknownSection)
	}
	if len(fields) == 0 {
		return nil
	}
	s.snapshot()
	sec = s.doc.Get(id)
	for k, v := range fields {
		sec.Content[k] = v
	}
	return nil
}

// UpdateSectionColor writes a hex color for one element of the section.
// The element must be in the allowed set for the section's type and the
// color must be a six-digit hex string.
func (s *Store) UpdateSectionColor(id, element, hex string) error {
	sec := s.doc.Get(id)
	if sec == nil {
		return fmt.Errorf("coloring %q: %w", id, ErrUnknownSection)
	}
	if !site.ValidHex(hex) {
		return fmt.Errorf("coloring %q/%s with %q: %w", id, element, hex, ErrInvalidColor)
	}
	if !site.AllowedColorElement(sec.Type, element) {
		return fmt.Errorf("coloring %q/%s: %w", id, element, ErrColorElement)
	}
	s.snapshot()
	s.doc.Get(id).Colors[element] = hex
	return nil
}

// LayoutPatch is a partial layout update; nil fields are left untouched.
type LayoutPatch struct {
	Variant *string
	Spacing *site.Spacing
}

// UpdateLayout shallow-merges the patch into the section layout. The
// variant is not checked against the type's catalogue: unknown variants
// fall back to a default rendering in the presentation layer.
func (s *Store) UpdateLayout(id string, patch LayoutPatch) error {
	sec := s.doc.Get(id)
	if sec == nil {
		return fmt.Errorf("updating layout of %q: %w", id, ErrUnknownSection)
	}
	if patch.Variant == nil && patch.Spacing == nil {
		return nil
	}
	s.snapshot()
	sec = s.doc.Get(id)
	if patch.Variant != nil {
		sec.Layout.Variant = *patch.Variant
	}
	if patch.Spacing != nil {
		sec.Layout.Spacing = *patch.Spacing
	}
	return nil
}

// SetTheme switches the global palette to one of the built-in themes.
func (s *Store) SetTheme(paletteID string) error {
	palette, ok := site.Palettes[paletteID]
	if !ok {
		return fmt.Errorf("setting theme %q: %w", paletteID, ErrUnknownPalette)
	}
	s.snapshot()
	s.doc.Global.Palette = &palette
	return nil
}

// GlobalPatch is a partial update of the global theme settings.
type GlobalPatch struct {
	Palette      *site.Palette
	BorderRadius *site.Radius
}

// UpdateGlobal shallow-merges the patch into the global settings.
func (s *Store) UpdateGlobal(patch GlobalPatch) error {
	if patch.Palette == nil && patch.BorderRadius == nil {
		return nil
	}
	s.snapshot()
	if patch.Palette != nil {
		p := *patch.Palette
		s.doc.Global.Palette = &p
	}
	if patch.BorderRadius != nil {
		s.doc.Global.BorderRadius = *patch.BorderRadius
	}
	return nil
}

// SetName renames the document.
func (s *Store) SetName(name string) error {
	if name == s.doc.Meta.Name {
		return nil
	}
	s.snapshot()
	s.doc.Meta.Name = name
	return nil
}
