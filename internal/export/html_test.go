package export

import (
	"strings"
	"testing"

	"github.com/atelier-studio/atelier/internal/site"
)

func fullDocument() *site.Document {
	return site.NewDocument("demo", "violet", []site.SectionType{
		site.TypeFeatures, site.TypeHowItWorks, site.TypePricing, site.TypeFAQ,
	})
}

func TestGenerateHTMLRendersHero(t *testing.T) {
	doc := fullDocument()
	out, err := GenerateHTML(doc)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}

	for _, want := range []string{
		"<title>demo</title>",
		"Crée ta landing page en quelques minutes",
		"✨ Nouveau",
		"Commencer",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateHTMLThemeVariables(t *testing.T) {
	doc := fullDocument()
	out, err := GenerateHTML(doc)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}

	if !strings.Contains(out, "--color-primary:#A78BFA") {
		t.Error("primary palette color missing from :root")
	}
	if !strings.Contains(out, "--color-primary-10:rgba(167, 139, 250, 0.1)") {
		t.Error("10% tint of the primary color missing from :root")
	}
	if !strings.Contains(out, "--radius:16px") {
		t.Error("large radius should map to 16px")
	}
}

func TestGenerateHTMLRadiusFallback(t *testing.T) {
	doc := fullDocument()
	doc.Global.BorderRadius = site.Radius("bogus")

	out, err := GenerateHTML(doc)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(out, "--radius:16px") {
		t.Error("unknown radius should fall back to the large radius")
	}
}

func TestGenerateHTMLSkipsHiddenSections(t *testing.T) {
	doc := fullDocument()
	var pricingID string
	for id, sec := range doc.Sections {
		if sec.Type == site.TypePricing {
			pricingID = id
		}
	}
	doc.SectionsVisibility[pricingID] = false

	out, err := GenerateHTML(doc)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if strings.Contains(out, "Des tarifs simples") {
		t.Error("hidden pricing section rendered")
	}
	if !strings.Contains(out, "Questions fréquentes") {
		t.Error("visible FAQ section missing")
	}
}

func TestGenerateHTMLSectionBodies(t *testing.T) {
	doc := fullDocument()
	out, err := GenerateHTML(doc)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}

	for _, want := range []string{
		"Rapide",                                    // feature card title
		"Choisis tes sections",                      // step title
		"Populaire",                                 // highlighted plan badge
		"Est-ce que je peux réimporter mon site ?",  // FAQ question
		"<strong>standalone</strong>",               // markdown bold in the FAQ answer
		"Fait avec 🫧",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateHTMLSectionColorOverride(t *testing.T) {
	doc := fullDocument()
	doc.Sections["hero_1"].Colors["title"] = "#F472B6"

	out, err := GenerateHTML(doc)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(out, `style="color:#F472B6"`) {
		t.Error("per-element color override missing from hero title")
	}
}

func TestGenerateHTMLEmptyNameFallback(t *testing.T) {
	doc := fullDocument()
	doc.Meta.Name = ""

	out, err := GenerateHTML(doc)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(out, "<title>Ma Landing Page</title>") {
		t.Error("empty site name should fall back to the default title")
	}
}

func TestRenderCopyStripsOuterParagraph(t *testing.T) {
	got := string(renderCopy("du texte **gras**"))
	if strings.HasPrefix(got, "<p>") || strings.HasSuffix(got, "</p>") {
		t.Errorf("outer <p> not stripped: %q", got)
	}
	if !strings.Contains(got, "<strong>gras</strong>") {
		t.Errorf("bold markdown not rendered: %q", got)
	}
}
