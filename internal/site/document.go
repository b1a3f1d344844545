package site

import (
	"fmt"

	"go.uber.org/multierr"
)

// Get returns the section with the given id, or nil if unknown.
func (d *Document) Get(id string) *Section {
	return d.Sections[id]
}

// Visible reports whether the section with the given id is displayed.
// Sections default to visible unless explicitly hidden.
func (d *Document) Visible(id string) bool {
	v, ok := d.SectionsVisibility[id]
	return !ok || v
}

// VisibleSections returns the displayed sections in order.
func (d *Document) VisibleSections() []*Section {
	var out []*Section
	for _, id := range d.SectionsOrder {
		if sec := d.Sections[id]; sec != nil && d.Visible(id) {
			out = append(out, sec)
		}
	}
	return out
}

// HasType reports whether a section of the given type exists.
func (d *Document) HasType(t SectionType) bool {
	for _, sec := range d.Sections {
		if sec.Type == t {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document. History snapshots and
// undo/redo restores rely on clones being fully independent.
func (d *Document) Clone() *Document {
	out := &Document{
		Meta:               d.Meta,
		Global:             d.Global,
		SectionsOrder:      append([]string(nil), d.SectionsOrder...),
		SectionsVisibility: make(map[string]bool, len(d.SectionsVisibility)),
		Sections:           make(map[string]*Section, len(d.Sections)),
	}
	if d.Global.Palette != nil {
		p := *d.Global.Palette
		out.Global.Palette = &p
	}
	for id, v := range d.SectionsVisibility {
		out.SectionsVisibility[id] = v
	}
	for id, sec := range d.Sections {
		out.Sections[id] = sec.clone()
	}
	return out
}

func (s *Section) clone() *Section {
	out := &Section{
		ID:      s.ID,
		Type:    s.Type,
		Content: make(map[string]string, len(s.Content)),
		Colors:  make(map[string]string, len(s.Colors)),
		Layout:  s.Layout,
	}
	for k, v := range s.Content {
		out.Content[k] = v
	}
	for k, v := range s.Colors {
		out.Colors[k] = v
	}
	// Collections keep their nil-vs-empty distinction: an emptied
	// collection stays present, both in snapshots and through JSON.
	if s.Items != nil {
		out.Items = append(make([]Item, 0, len(s.Items)), s.Items...)
	}
	if s.Steps != nil {
		out.Steps = append(make([]Step, 0, len(s.Steps)), s.Steps...)
	}
	if s.Plans != nil {
		out.Plans = make([]Plan, 0, len(s.Plans))
		for _, p := range s.Plans {
			if p.Features != nil {
				p.Features = append(make([]string, 0, len(p.Features)), p.Features...)
			}
			out.Plans = append(out.Plans, p)
		}
	}
	return out
}

// Validate checks the document invariants and returns every violation
// found, aggregated. A nil result means the document is well-formed.
func (d *Document) Validate() error {
	var err error

	seen := map[string]bool{}
	for _, id := range d.SectionsOrder {
		if seen[id] {
			err = multierr.Append(err, fmt.Errorf("section %q listed twice in sectionsOrder", id))
		}
		seen[id] = true
		if d.Sections[id] == nil {
			err = multierr.Append(err, fmt.Errorf("section %q in sectionsOrder has no entry in sections", id))
		}
	}
	for id := range d.Sections {
		if !seen[id] {
			err = multierr.Append(err, fmt.Errorf("section %q missing from sectionsOrder", id))
		}
	}

	heroes := 0
	for id, sec := range d.Sections {
		if sec.ID != id {
			err = multierr.Append(err, fmt.Errorf("section keyed %q carries id %q", id, sec.ID))
		}
		if !KnownType(sec.Type) {
			err = multierr.Append(err, fmt.Errorf("section %q has unknown type %q", id, sec.Type))
			continue
		}
		if sec.Type == TypeHero {
			heroes++
		}
		for element, hex := range sec.Colors {
			if !AllowedColorElement(sec.Type, element) {
				err = multierr.Append(err, fmt.Errorf("section %q: color element %q not allowed for type %q", id, element, sec.Type))
			}
			if !ValidHex(hex) {
				err = multierr.Append(err, fmt.Errorf("section %q: malformed color %q for element %q", id, hex, element))
			}
		}
		err = multierr.Append(err, sec.validateCollections())
	}
	if heroes > 1 {
		err = multierr.Append(err, fmt.Errorf("document has %d hero sections, only one allowed", heroes))
	}

	return err
}

func (s *Section) validateCollections() error {
	var err error

	check := func(name string, ids []string) {
		seen := map[string]bool{}
		for _, id := range ids {
			if id == "" {
				err = multierr.Append(err, fmt.Errorf("section %q: %s entry with empty id", s.ID, name))
				continue
			}
			if seen[id] {
				err = multierr.Append(err, fmt.Errorf("section %q: duplicate %s id %q", s.ID, name, id))
			}
			seen[id] = true
		}
	}

	var itemIDs, stepIDs, planIDs []string
	for _, it := range s.Items {
		itemIDs = append(itemIDs, it.ID)
	}
	for _, st := range s.Steps {
		stepIDs = append(stepIDs, st.ID)
	}
	for _, pl := range s.Plans {
		planIDs = append(planIDs, pl.ID)
	}
	check("items", itemIDs)
	check("steps", stepIDs)
	check("plans", planIDs)

	// A section only carries the collection its type declares.
	switch CollectionFor(s.Type) {
	case "items":
		if len(s.Steps) > 0 || len(s.Plans) > 0 {
			err = multierr.Append(err, fmt.Errorf("section %q of type %q carries a foreign collection", s.ID, s.Type))
		}
	case "steps":
		if len(s.Items) > 0 || len(s.Plans) > 0 {
			err = multierr.Append(err, fmt.Errorf("section %q of type %q carries a foreign collection", s.ID, s.Type))
		}
	case "plans":
		if len(s.Items) > 0 || len(s.Steps) > 0 {
			err = multierr.Append(err, fmt.Errorf("section %q of type %q carries a foreign collection", s.ID, s.Type))
		}
	default:
		if len(s.Items) > 0 || len(s.Steps) > 0 || len(s.Plans) > 0 {
			err = multierr.Append(err, fmt.Errorf("section %q of type %q carries a collection", s.ID, s.Type))
		}
	}
	return err
}
