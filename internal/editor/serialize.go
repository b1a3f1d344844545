package editor

import (
	"encoding/json"
	"fmt"

	"github.com/atelier-studio/atelier/internal/site"
)

// ExportJSON serializes the whole document. The output round-trips:
// ImportJSON(ExportJSON()) reproduces an equivalent document.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting document: %w", err)
	}
	return data, nil
}

// ImportJSON replaces the document wholesale with the given export. The
// incoming document is validated first; on any violation the current
// document is kept. The replacement itself is one undoable step.
func (s *Store) ImportJSON(data []byte) error {
	var doc site.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	if doc.Sections == nil {
		doc.Sections = map[string]*site.Section{}
	}
	if doc.SectionsVisibility == nil {
		doc.SectionsVisibility = map[string]bool{}
	}
	if doc.SectionsOrder == nil {
		doc.SectionsOrder = []string{}
	}
	for _, sec := range doc.Sections {
		if sec.Content == nil {
			sec.Content = map[string]string{}
		}
		if sec.Colors == nil {
			sec.Colors = map[string]string{}
		}
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("importing document: %w", err)
	}
	s.snapshot()
	s.doc = &doc
	return nil
}
