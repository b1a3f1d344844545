package site

// SectionType identifies one of the catalogued section kinds.
type SectionType string

const (
	TypeHero       SectionType = "hero"
	TypeFeatures   SectionType = "features"
	TypeHowItWorks SectionType = "howItWorks"
	TypePricing    SectionType = "pricing"
	TypeFAQ        SectionType = "faq"
)

// Spacing controls the vertical density of a section.
type Spacing string

const (
	SpacingCompact  Spacing = "compact"
	SpacingNormal   Spacing = "normal"
	SpacingSpacious Spacing = "spacious"
)

// Radius is the global border-radius setting.
type Radius string

const (
	RadiusNone   Radius = "none"
	RadiusSmall  Radius = "small"
	RadiusMedium Radius = "medium"
	RadiusLarge  Radius = "large"
)

// Document is the complete, serializable description of the page being
// built. It is the unit of export/import and of undo/redo.
type Document struct {
	Meta               Meta                `json:"meta"`
	Global             Global              `json:"global"`
	SectionsOrder      []string            `json:"sectionsOrder"`
	SectionsVisibility map[string]bool     `json:"sectionsVisibility"`
	Sections           map[string]*Section `json:"sections"`
}

// Meta holds document-level metadata.
type Meta struct {
	Name string `json:"name"`
}

// Global holds the theme settings shared by every section.
type Global struct {
	Palette      *Palette `json:"palette"`
	BorderRadius Radius   `json:"borderRadius"`
}

// Palette is a named three-color theme.
type Palette struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Layout describes how a section arranges its content.
type Layout struct {
	Variant string  `json:"variant"`
	Spacing Spacing `json:"spacing"`
}

// Section is one content block of the page. Exactly one of Items, Steps
// or Plans is populated, matching the section type.
type Section struct {
	ID      string            `json:"id"`
	Type    SectionType       `json:"type"`
	Content map[string]string `json:"content"`
	Colors  map[string]string `json:"colors"`
	Layout  Layout            `json:"layout"`
	Items   []Item            `json:"items"`
	Steps   []Step            `json:"steps"`
	Plans   []Plan            `json:"plans"`
}

// Item is a features entry (icon/color/title/description) or a faq entry
// (question/answer); unused fields stay empty and are omitted from JSON.
type Item struct {
	ID          string `json:"id"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Question    string `json:"question,omitempty"`
	Answer      string `json:"answer,omitempty"`
}

// Step is one howItWorks entry. Number is a display label, not an id;
// steps are not renumbered on reorder.
type Step struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Plan is one pricing entry.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Features    []string `json:"features"`
	CTA         string   `json:"cta"`
	Highlighted bool     `json:"highlighted"`
	Badge       string   `json:"badge,omitempty"`
}
