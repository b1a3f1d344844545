package editor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-studio/atelier/internal/site"
)

// Collection items are addressed by their current array position;
// callers are expected to use a freshly read index. Ids are assigned at
// creation and never reused, so reordering and removal stay safe by id
// even though this API addresses by index.

func (s *Store) collection(id, collection string) (*site.Section, error) {
	sec := s.doc.Get(id)
	if sec == nil {
		return nil, fmt.Errorf("section %q: %w", id, ErrUnknownSection)
	}
	if site.CollectionFor(sec.Type) != collection || collection == "" {
		return nil, fmt.Errorf("section %q has no collection %q: %w", id, collection, ErrWrongCollection)
	}
	return sec, nil
}

// AddItem appends a features/faq entry with a fresh id.
func (s *Store) AddItem(sectionID string, item site.Item) (string, error) {
	sec, err := s.collection(sectionID, "items")
	if err != nil {
		return "", err
	}
	s.snapshot()
	item.ID = uuid.NewString()
	sec.Items = append(sec.Items, item)
	return item.ID, nil
}

// AddStep appends a howItWorks entry with a fresh id. The step number is
// a display label; it is not derived from the position and never
// renumbered on reorder.
func (s *Store) AddStep(sectionID string, step site.Step) (string, error) {
	sec, err := s.collection(sectionID, "steps")
	if err != nil {
		return "", err
	}
	s.snapshot()
	step.ID = uuid.NewString()
	sec.Steps = append(sec.Steps, step)
	return step.ID, nil
}

// AddPlan appends a pricing entry with a fresh id.
func (s *Store) AddPlan(sectionID string, plan site.Plan) (string, error) {
	sec, err := s.collection(sectionID, "plans")
	if err != nil {
		return "", err
	}
	s.snapshot()
	plan.ID = uuid.NewString()
	plan.Features = append([]string(nil), plan.Features...)
	sec.Plans = append(sec.Plans, plan)
	return plan.ID, nil
}

// RemoveItem removes the entry at index from the named collection.
func (s *Store) RemoveItem(sectionID, collection string, index int) error {
	sec, err := s.collection(sectionID, collection)
	if err != nil {
		return err
	}
	switch collection {
	case "items":
		if index < 0 || index >= len(sec.Items) {
			return fmt.Errorf("removing %s[%d] of %q: %w", collection, index, sectionID, ErrIndexRange)
		}
		s.snapshot()
		sec.Items = append(sec.Items[:index], sec.Items[index+1:]...)
	case "steps":
		if index < 0 || index >= len(sec.Steps) {
			return fmt.Errorf("removing %s[%d] of %q: %w", collection, index, sectionID, ErrIndexRange)
		}
		s.snapshot()
		sec.Steps = append(sec.Steps[:index], sec.Steps[index+1:]...)
	case "plans":
		if index < 0 || index >= len(sec.Plans) {
			return fmt.Errorf("removing %s[%d] of %q: %w", collection, index, sectionID, ErrIndexRange)
		}
		s.snapshot()
		sec.Plans = append(sec.Plans[:index], sec.Plans[index+1:]...)
	}
	return nil
}

// ItemPatch is a partial update of a features/faq entry.
type ItemPatch struct {
	Icon        *string
	Color       *string
	Title       *string
	Description *string
	Question    *string
	Answer      *string
}

// UpdateItem shallow-merges the patch into the entry at index.
func (s *Store) UpdateItem(sectionID string, index int, patch ItemPatch) error {
	sec, err := s.collection(sectionID, "items")
	if err != nil {
		return err
	}
	if index < 0 || index >= len(sec.Items) {
		return fmt.Errorf("updating items[%d] of %q: %w", index, sectionID, ErrIndexRange)
	}
	s.snapshot()
	it := &sec.Items[index]
	if patch.Icon != nil {
		it.Icon = *patch.Icon
	}
	if patch.Color != nil {
		it.Color = *patch.Color
	}
	if patch.Title != nil {
		it.Title = *patch.Title
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.Question != nil {
		it.Question = *patch.Question
	}
	if patch.Answer != nil {
		it.Answer = *patch.Answer
	}
	return nil
}

// StepPatch is a partial update of a howItWorks entry.
type StepPatch struct {
	Number      *int
	Title       *string
	Description *string
}

// UpdateStep shallow-merges the patch into the entry at index.
func (s *Store) UpdateStep(sectionID string, index int, patch StepPatch) error {
	sec, err := s.collection(sectionID, "steps")
	if err != nil {
		return err
	}
	if index < 0 || index >= len(sec.Steps) {
		return fmt.Errorf("updating steps[%d] of %q: %w", index, sectionID, ErrIndexRange)
	}
	s.snapshot()
	st := &sec.Steps[index]
	if patch.Number != nil {
		st.Number = *patch.Number
	}
	if patch.Title != nil {
		st.Title = *patch.Title
	}
	if patch.Description != nil {
		st.Description = *patch.Description
	}
	return nil
}

// PlanPatch is a partial update of a pricing entry.
type PlanPatch struct {
	Name        *string
	Price       *string
	Period      *string
	Features    *[]string
	CTA         *string
	Highlighted *bool
	Badge       *string
}

// UpdatePlan shallow-merges the patch into the entry at index.
func (s *Store) UpdatePlan(sectionID string, index int, patch PlanPatch) error {
	sec, err := s.collection(sectionID, "plans")
	if err != nil {
		return err
	}
	if index < 0 || index >= len(sec.Plans) {
		return fmt.Errorf("updating plans[%d] of %q: %w", index, sectionID, ErrIndexRange)
	}
	s.snapshot()
	pl := &sec.Plans[index]
	if patch.Name != nil {
		pl.Name = *patch.Name
	}
	if patch.Price != nil {
		pl.Price = *patch.Price
	}
	if patch.Period != nil {
		pl.Period = *patch.Period
	}
	if patch.Features != nil {
		pl.Features = append([]string(nil), (*patch.Features)...)
	}
	if patch.CTA != nil {
		pl.CTA = *patch.CTA
	}
	if patch.Highlighted != nil {
		pl.Highlighted = *patch.Highlighted
	}
	if patch.Badge != nil {
		pl.Badge = *patch.Badge
	}
	return nil
}
