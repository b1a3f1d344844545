package site

// LayoutOption is one entry of a section type's layout catalogue.
type LayoutOption struct {
	ID    string
	Label string
}

// typeConfig describes what can be edited on a given section type.
type typeConfig struct {
	colorElements []string
	colorLabels   map[string]string
	layouts       []LayoutOption
	collection    string
	label         string
}

var typeConfigs = map[SectionType]typeConfig{
	TypeHero: {
		colorElements: []string{"title", "subtitle", "badge", "ctaPrimary"},
		colorLabels:   map[string]string{"title": "Titre", "subtitle": "Sous-titre", "badge": "Badge", "ctaPrimary": "Bouton"},
		layouts: []LayoutOption{
			{ID: "centered", Label: "Centré"},
			{ID: "split-left", Label: "Image droite"},
			{ID: "split-right", Label: "Image gauche"},
		},
		collection: "",
		label:      "Hero",
	},
	TypeFeatures: {
		colorElements: []string{"title", "subtitle"},
		colorLabels:   map[string]string{"title": "Titre", "subtitle": "Sous-titre"},
		layouts: []LayoutOption{
			{ID: "grid-3", Label: "3 colonnes"},
			{ID: "grid-2", Label: "2 colonnes"},
			{ID: "list", Label: "Liste"},
		},
		collection: "items",
		label:      "Features",
	},
	TypeHowItWorks: {
		colorElements: []string{"title", "subtitle"},
		colorLabels:   map[string]string{"title": "Titre", "subtitle": "Sous-titre"},
		layouts: []LayoutOption{
			{ID: "timeline", Label: "Timeline"},
			{ID: "cards", Label: "Cartes"},
			{ID: "minimal", Label: "Minimal"},
		},
		collection: "steps",
		label:      "Étapes",
	},
	TypePricing: {
		colorElements: []string{"title", "subtitle"},
		colorLabels:   map[string]string{"title": "Titre", "subtitle": "Sous-titre"},
		layouts: []LayoutOption{
			{ID: "cards", Label: "Cartes"},
			{ID: "table", Label: "Tableau"},
			{ID: "minimal", Label: "Minimal"},
		},
		collection: "plans",
		label:      "Tarifs",
	},
	TypeFAQ: {
		colorElements: []string{"title", "subtitle"},
		colorLabels:   map[string]string{"title": "Titre", "subtitle": "Sous-titre"},
		layouts: []LayoutOption{
			{ID: "accordion", Label: "Accordéon"},
			{ID: "grid", Label: "Grille"},
			{ID: "simple", Label: "Simple"},
		},
		collection: "items",
		label:      "FAQ",
	},
}

// SectionTypes lists the catalogued types in display order.
var SectionTypes = []SectionType{TypeHero, TypeFeatures, TypeHowItWorks, TypePricing, TypeFAQ}

// KnownType reports whether t is one of the catalogued section types.
func KnownType(t SectionType) bool {
	_, ok := typeConfigs[t]
	return ok
}

// ColorElements returns the ordered set of color-editable elements for a
// section type. Unknown types fall back to the features set, mirroring
// how the assistant treats unrecognized sections.
func ColorElements(t SectionType) []string {
	cfg, ok := typeConfigs[t]
	if !ok {
		cfg = typeConfigs[TypeFeatures]
	}
	return cfg.colorElements
}

// ColorLabel returns the localized label for a color element of the type.
func ColorLabel(t SectionType, element string) string {
	cfg, ok := typeConfigs[t]
	if !ok {
		cfg = typeConfigs[TypeFeatures]
	}
	if l, ok := cfg.colorLabels[element]; ok {
		return l
	}
	return "Titre"
}

// AllowedColorElement reports whether a color may be written on the given
// element for the given section type. The title is always writable.
func AllowedColorElement(t SectionType, element string) bool {
	if element == "title" {
		return true
	}
	for _, el := range ColorElements(t) {
		if el == element {
			return true
		}
	}
	return false
}

// Layouts returns the layout catalogue for a section type.
func Layouts(t SectionType) []LayoutOption {
	cfg, ok := typeConfigs[t]
	if !ok {
		cfg = typeConfigs[TypeFeatures]
	}
	return cfg.layouts
}

// CollectionFor returns the name of the typed collection a section type
// carries ("items", "steps" or "plans"), or "" for hero.
func CollectionFor(t SectionType) string {
	cfg, ok := typeConfigs[t]
	if !ok {
		return ""
	}
	return cfg.collection
}

// Label returns the display label of a section type.
func Label(t SectionType) string {
	cfg, ok := typeConfigs[t]
	if !ok {
		return string(t)
	}
	return cfg.label
}
