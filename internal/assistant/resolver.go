package assistant

import (
	"fmt"
	"strings"

	"github.com/atelier-studio/atelier/internal/editor"
	"github.com/atelier-studio/atelier/internal/site"
)

// Resolver resolves chat utterances against the active section. It is
// stateless between calls; all context comes from the arguments.
type Resolver struct {
	store Mutator
	rules []rule
}

// rule is one predicate→action step of the pipeline. A nil reply means
// "no match, try the next rule".
type rule struct {
	name string
	run  func(*request) *Reply
}

// request is the per-utterance resolution context.
type request struct {
	msg     string
	section *site.Section
	typ     site.SectionType
	label   string
	store   Mutator
}

// New builds a resolver over the given mutation surface.
func New(store Mutator) *Resolver {
	return &Resolver{
		store: store,
		rules: []rule{
			{"color", resolveColor},
			{"color-menu", resolveColorMenu},
			{"element-menu", resolveElementMenu},
			{"layout-catalogue", resolveLayoutCatalogue},
			{"columns", resolveColumns},
			{"layout-menu", resolveLayoutMenu},
			{"named-variant", resolveNamedVariant},
			{"ack", resolveAck},
			{"help", resolveHelp},
		},
	}
}

// Resolve maps one utterance plus the active section to a reply,
// applying at most one mutation. It is total: unmatched input yields the
// fallback prompt, never an error.
func (r *Resolver) Resolve(text, activeSectionID string) Reply {
	msg := strings.ToLower(strings.TrimSpace(text))

	section := r.store.GetSection(activeSectionID)
	if section == nil {
		return Reply{Message: "👆 Sélectionne d'abord une section !"}
	}

	typ := section.Type
	if typ == "" {
		// Section ids are "<type>_<suffix>"; recover the type from the id.
		typ = site.SectionType(strings.SplitN(activeSectionID, "_", 2)[0])
	}

	req := &request{
		msg:     msg,
		section: section,
		typ:     typ,
		label:   site.Label(typ),
		store:   r.store,
	}
	for _, rule := range r.rules {
		if reply := rule.run(req); reply != nil {
			return *reply
		}
	}
	return Reply{
		Message:     fmt.Sprintf("🤔 Que veux-tu faire sur %s ?", req.label),
		Suggestions: baseSuggestions,
	}
}

// resolveColor detects a color word anywhere in the utterance, picks
// the target element from the element keywords (title by default) and
// applies the color if the element is allowed for the section type.
func resolveColor(req *request) *Reply {
	var found *colorName
	for i := range colorLexicon {
		if strings.Contains(req.msg, colorLexicon[i].Name) {
			found = &colorLexicon[i]
			break
		}
	}
	if found == nil {
		return nil
	}

	target := "title"
	for _, kw := range elementKeywords {
		if containsAny(req.msg, kw.Words) {
			target = kw.Element
			break
		}
	}

	if !site.AllowedColorElement(req.typ, target) {
		// Disallowed element: fall through to the later rules.
		return nil
	}
	if err := req.store.UpdateSectionColor(req.section.ID, target, found.Hex); err != nil {
		return nil
	}
	return &Reply{
		Message:     fmt.Sprintf("✨ %s en %s ! C'est joli !", site.ColorLabel(req.typ, target), found.Name),
		Action:      ActionColorApplied,
		Suggestions: []string{"Autre couleur", "Layout", "Parfait !"},
	}
}

// resolveColorMenu answers the exact "colors" request with the list of
// color-editable elements for the active type.
func resolveColorMenu(req *request) *Reply {
	switch req.msg {
	case "couleurs", "couleur", "autre couleur", "colors":
	default:
		return nil
	}
	var suggestions []string
	for _, el := range site.ColorElements(req.typ) {
		suggestions = append(suggestions, site.ColorLabel(req.typ, el))
	}
	return &Reply{
		Message:     fmt.Sprintf("🎨 Sur %s, tu veux colorier quoi ?", req.label),
		Suggestions: suggestions,
	}
}

// resolveElementMenu answers a bare element name ("titre") with a
// color-choice prompt, carrying the element as conversation context.
func resolveElementMenu(req *request) *Reply {
	for _, menu := range elementMenus {
		for _, w := range menu.Words {
			if req.msg == w {
				return &Reply{
					Message:     fmt.Sprintf("🎨 Quelle couleur pour le %s ?", menu.Label),
					Suggestions: []string{"Rose", "Violet", "Bleu", "Cyan"},
					Context:     &Context{Element: menu.Element},
				}
			}
		}
	}
	return nil
}

// resolveLayoutCatalogue matches the active type's own layout variants
// by label or id substring.
func resolveLayoutCatalogue(req *request) *Reply {
	for _, opt := range site.Layouts(req.typ) {
		if strings.Contains(req.msg, strings.ToLower(opt.Label)) || strings.Contains(req.msg, strings.ToLower(opt.ID)) {
			return applyLayout(req, opt.ID, fmt.Sprintf("✨ Layout %q appliqué !", opt.Label), []string{"Couleurs", "Autre layout", "Parfait !"})
		}
	}
	return nil
}

// resolveColumns recognizes the spoken column phrasings.
func resolveColumns(req *request) *Reply {
	if strings.Contains(req.msg, "2 colonne") || strings.Contains(req.msg, "deux colonne") {
		return applyLayout(req, "grid-2", "✨ Passé en 2 colonnes !", []string{"Couleurs", "Autre layout", "Parfait !"})
	}
	if strings.Contains(req.msg, "3 colonne") || strings.Contains(req.msg, "trois colonne") {
		return applyLayout(req, "grid-3", "✨ Passé en 3 colonnes !", []string{"Couleurs", "Autre layout", "Parfait !"})
	}
	return nil
}

// resolveLayoutMenu answers the exact "layout" request with the type's
// variant labels.
func resolveLayoutMenu(req *request) *Reply {
	switch req.msg {
	case "layout", "autre layout", "disposition":
	default:
		return nil
	}
	var suggestions []string
	for _, opt := range site.Layouts(req.typ) {
		suggestions = append(suggestions, opt.Label)
	}
	return &Reply{
		Message:     fmt.Sprintf("📐 Quel layout pour %s ?", req.label),
		Suggestions: suggestions,
	}
}

// resolveNamedVariant matches the flat cross-type variant names exactly.
// No cross-type validation happens here or downstream.
func resolveNamedVariant(req *request) *Reply {
	for _, nv := range namedVariants {
		for _, w := range nv.Words {
			if req.msg == w {
				return applyLayout(req, nv.Variant, nv.Message, []string{"Couleurs", "Parfait !"})
			}
		}
	}
	return nil
}

func resolveAck(req *request) *Reply {
	if !containsAny(req.msg, ackWords) {
		return nil
	}
	return &Reply{
		Message:     "🎉 Super ! Je suis là si tu veux autre chose !",
		Suggestions: baseSuggestions,
	}
}

func resolveHelp(req *request) *Reply {
	if !strings.Contains(req.msg, "aide") && !strings.Contains(req.msg, "help") && req.msg != "?" {
		return nil
	}
	extra := ""
	if req.typ == site.TypeHero {
		extra = ", badge, bouton"
	}
	return &Reply{
		Message:     fmt.Sprintf("💡 Sur %s, tu peux :\n\n• Changer les couleurs (titre, sous-titre%s)\n• Modifier le layout", req.label, extra),
		Suggestions: baseSuggestions,
	}
}

func applyLayout(req *request, variant, message string, suggestions []string) *Reply {
	v := variant
	if err := req.store.UpdateLayout(req.section.ID, editor.LayoutPatch{Variant: &v}); err != nil {
		return nil
	}
	return &Reply{Message: message, Action: ActionLayoutApplied, Suggestions: suggestions}
}

func containsAny(msg string, words []string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}
