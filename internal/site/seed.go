package site

import (
	"github.com/google/uuid"
)

// NewDocument builds the default document for a new session: a hero
// section first, then the requested catalogued types, each seeded with
// default copy, the first layout of its catalogue and normal spacing.
// Unknown or duplicate types in extra are skipped; hero is always seeded
// exactly once regardless of extra.
func NewDocument(name string, paletteID string, extra []SectionType) *Document {
	palette, ok := Palettes[paletteID]
	if !ok {
		palette = Palettes["violet"]
	}

	doc := &Document{
		Meta:               Meta{Name: name},
		Global:             Global{Palette: &palette, BorderRadius: RadiusLarge},
		SectionsOrder:      []string{},
		SectionsVisibility: map[string]bool{},
		Sections:           map[string]*Section{},
	}

	seeded := map[SectionType]bool{}
	add := func(t SectionType) {
		if seeded[t] || !KnownType(t) {
			return
		}
		seeded[t] = true
		sec := SeedSection(string(t)+"_1", t)
		doc.SectionsOrder = append(doc.SectionsOrder, sec.ID)
		doc.SectionsVisibility[sec.ID] = true
		doc.Sections[sec.ID] = sec
	}

	add(TypeHero)
	for _, t := range extra {
		add(t)
	}
	return doc
}

// SeedSection builds a section of the given type with its default
// content, collection and layout.
func SeedSection(id string, t SectionType) *Section {
	sec := &Section{
		ID:      id,
		Type:    t,
		Content: map[string]string{},
		Colors:  map[string]string{},
		Layout:  Layout{Spacing: SpacingNormal},
	}
	if layouts := Layouts(t); len(layouts) > 0 {
		sec.Layout.Variant = layouts[0].ID
	}

	switch t {
	case TypeHero:
		sec.Content = map[string]string{
			"badge":        "✨ Nouveau",
			"title":        "Crée ta landing page en quelques minutes",
			"subtitle":     "Assemble, personnalise et exporte ton site sans écrire une ligne de code.",
			"ctaPrimary":   "Commencer",
			"ctaSecondary": "Voir la démo",
		}
	case TypeFeatures:
		sec.Content = map[string]string{
			"title":    "Tout ce qu'il te faut",
			"subtitle": "Des blocs prêts à l'emploi pour aller vite.",
		}
		sec.Items = []Item{
			{ID: uuid.NewString(), Icon: "zap", Color: "#FBBF24", Title: "Rapide", Description: "Une page prête en quelques minutes, pas en quelques jours."},
			{ID: uuid.NewString(), Icon: "palette", Color: "#F472B6", Title: "Personnalisable", Description: "Couleurs, layouts et contenus modifiables à la volée."},
			{ID: uuid.NewString(), Icon: "download", Color: "#22D3EE", Title: "Exportable", Description: "Récupère ton site en JSON ou en HTML standalone."},
		}
	case TypeHowItWorks:
		sec.Content = map[string]string{
			"title":    "Comment ça marche",
			"subtitle": "Trois étapes et c'est en ligne.",
		}
		sec.Steps = []Step{
			{ID: uuid.NewString(), Number: 1, Title: "Choisis tes sections", Description: "Pioche dans le catalogue de blocs."},
			{ID: uuid.NewString(), Number: 2, Title: "Personnalise", Description: "Textes, couleurs et layouts, au clic ou via le chat."},
			{ID: uuid.NewString(), Number: 3, Title: "Exporte", Description: "Télécharge ton site, prêt à publier."},
		}
	case TypePricing:
		sec.Content = map[string]string{
			"title":    "Des tarifs simples",
			"subtitle": "Commence gratuitement, évolue quand tu veux.",
		}
		sec.Plans = []Plan{
			{ID: uuid.NewString(), Name: "Découverte", Price: "0€", Period: "/mois", Features: []string{"1 site", "Export JSON", "Support communauté"}, CTA: "Essayer"},
			{ID: uuid.NewString(), Name: "Pro", Price: "19€", Period: "/mois", Features: []string{"Sites illimités", "Export HTML", "Support prioritaire"}, CTA: "Choisir Pro", Highlighted: true, Badge: "Populaire"},
			{ID: uuid.NewString(), Name: "Studio", Price: "49€", Period: "/mois", Features: []string{"Tout Pro", "Marque blanche", "Accompagnement dédié"}, CTA: "Nous contacter"},
		}
	case TypeFAQ:
		sec.Content = map[string]string{
			"title":    "Questions fréquentes",
			"subtitle": "Tout ce qu'on nous demande souvent.",
		}
		sec.Items = []Item{
			{ID: uuid.NewString(), Question: "Est-ce que je peux réimporter mon site ?", Answer: "Oui, l'export JSON se réimporte tel quel."},
			{ID: uuid.NewString(), Question: "L'export HTML dépend-il d'un serveur ?", Answer: "Non, c'est une page **standalone** autonome."},
			{ID: uuid.NewString(), Question: "Puis-je annuler une modification ?", Answer: "Chaque changement est annulable avec Ctrl+Z."},
		}
	}
	return sec
}
