package site

import (
	"fmt"
	"regexp"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palettes holds the built-in color themes, keyed by palette id.
var Palettes = map[string]Palette{
	"violet":  {ID: "violet", Name: "Violet", Primary: "#A78BFA", Secondary: "#8B5CF6", Accent: "#7C3AED"},
	"cyan":    {ID: "cyan", Name: "Cyan", Primary: "#22D3EE", Secondary: "#06B6D4", Accent: "#0891B2"},
	"pink":    {ID: "pink", Name: "Rose", Primary: "#F472B6", Secondary: "#EC4899", Accent: "#DB2777"},
	"emerald": {ID: "emerald", Name: "Émeraude", Primary: "#34D399", Secondary: "#10B981", Accent: "#059669"},
	"amber":   {ID: "amber", Name: "Ambre", Primary: "#FBBF24", Secondary: "#F59E0B", Accent: "#D97706"},
	"blue":    {ID: "blue", Name: "Bleu", Primary: "#3B82F6", Secondary: "#2563EB", Accent: "#1D4ED8"},
	"red":     {ID: "red", Name: "Rouge", Primary: "#F87171", Secondary: "#EF4444", Accent: "#DC2626"},
	"orange":  {ID: "orange", Name: "Orange", Primary: "#FB923C", Secondary: "#F97316", Accent: "#EA580C"},
}

// PaletteIDs lists the built-in palettes in display order.
var PaletteIDs = []string{"violet", "cyan", "pink", "emerald", "amber", "blue", "red", "orange"}

// RadiusOption describes one border-radius choice.
type RadiusOption struct {
	ID      Radius
	Name    string
	Preview string
}

// RadiusOptions lists the global border-radius choices in display order.
var RadiusOptions = []RadiusOption{
	{ID: RadiusNone, Name: "Carré", Preview: "0"},
	{ID: RadiusSmall, Name: "Léger", Preview: "4px"},
	{ID: RadiusMedium, Name: "Moyen", Preview: "8px"},
	{ID: RadiusLarge, Name: "Arrondi", Preview: "16px"},
}

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHex reports whether s is a six-digit hex color like #A78BFA.
func ValidHex(s string) bool {
	return hexColorRe.MatchString(s)
}

// Tint returns the rgba() form of a hex color at the given opacity,
// used for the derived --color-primary-10/20/30/50 theme variables.
func Tint(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		// Fall back to the violet primary, like the original theme code.
		c, _ = colorful.Hex("#A78BFA")
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}
