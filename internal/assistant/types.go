// Package assistant turns free-text chat utterances into structured
// mutations against the site document. Resolution is deterministic: an
// ordered list of rules, first match wins, no scoring.
package assistant

import (
	"github.com/atelier-studio/atelier/internal/editor"
	"github.com/atelier-studio/atelier/internal/site"
)

// Action signals what kind of mutation a reply performed, if any. The
// UI uses it to pulse a highlight on the affected section.
type Action string

const (
	ActionNone          Action = ""
	ActionColorApplied  Action = "color_applied"
	ActionLayoutApplied Action = "layout_applied"
)

// Context carries which element a menu reply was about. Nothing threads
// it back into the next Resolve call today; it is surfaced for the UI
// but otherwise inert.
type Context struct {
	Element string `json:"element"`
}

// Reply is the structured outcome of resolving one utterance.
type Reply struct {
	Message     string
	Suggestions []string
	Action      Action
	Context     *Context
}

// Mutator is the slice of the editor surface the resolver needs. It is
// satisfied by *editor.Store.
type Mutator interface {
	GetSection(id string) *site.Section
	UpdateSectionColor(id, element, hex string) error
	UpdateLayout(id string, patch editor.LayoutPatch) error
}
