package assistant

// colorName maps a spoken color word to its hex value. French and
// English synonyms share the same hex.
type colorName struct {
	Name string
	Hex  string
}

// colorLexicon is scanned in declaration order; the first name found as
// a substring of the utterance wins.
var colorLexicon = []colorName{
	{"rose", "#F472B6"},
	{"pink", "#F472B6"},
	{"violet", "#A78BFA"},
	{"purple", "#A78BFA"},
	{"bleu", "#3B82F6"},
	{"blue", "#3B82F6"},
	{"cyan", "#22D3EE"},
	{"turquoise", "#22D3EE"},
	{"vert", "#34D399"},
	{"green", "#34D399"},
	{"jaune", "#FBBF24"},
	{"yellow", "#FBBF24"},
	{"orange", "#FB923C"},
	{"rouge", "#EF4444"},
	{"red", "#EF4444"},
	{"blanc", "#FFFFFF"},
	{"white", "#FFFFFF"},
	{"noir", "#000000"},
	{"black", "#000000"},
}

// elementKeywords decides which element a color applies to. Scanned in
// order; the default target is the title.
var elementKeywords = []struct {
	Words   []string
	Element string
}{
	{[]string{"sous-titre", "subtitle", "description"}, "subtitle"},
	{[]string{"badge"}, "badge"},
	{[]string{"bouton", "cta", "button"}, "ctaPrimary"},
	{[]string{"fond", "background"}, "background"},
}

// elementMenus are the exact-match utterances that name an element
// before a color ("titre" → prompt for a color for the title).
var elementMenus = []struct {
	Words   []string
	Element string
	Label   string
}{
	{[]string{"titre", "title"}, "title", "titre"},
	{[]string{"sous-titre", "subtitle", "sous titre"}, "subtitle", "sous-titre"},
	{[]string{"badge"}, "badge", "badge"},
	{[]string{"bouton", "button", "cta"}, "ctaPrimary", "bouton"},
}

// namedVariants are the flat exact-match layout phrasings shared across
// section types. They apply regardless of whether the variant belongs
// to the active type's catalogue; unknown variants fall back to a
// default rendering downstream.
var namedVariants = []struct {
	Words   []string
	Variant string
	Message string
}{
	{[]string{"centré", "centered"}, "centered", "✨ Layout centré !"},
	{[]string{"image droite", "split-left"}, "split-left", "✨ Image à droite !"},
	{[]string{"image gauche", "split-right"}, "split-right", "✨ Image à gauche !"},
	{[]string{"timeline"}, "timeline", "✨ Layout timeline !"},
	{[]string{"cartes", "cards"}, "cards", "✨ Layout cartes !"},
	{[]string{"liste", "list"}, "list", "✨ Layout liste !"},
	{[]string{"accordéon", "accordion"}, "accordion", "✨ Layout accordéon !"},
	{[]string{"grille", "grid"}, "grid", "✨ Layout grille !"},
	{[]string{"minimal"}, "minimal", "✨ Layout minimal !"},
	{[]string{"simple"}, "simple", "✨ Layout simple !"},
	{[]string{"tableau", "table"}, "table", "✨ Layout tableau !"},
}

// ackWords close a conversation turn on a positive note.
var ackWords = []string{"parfait", "super", "merci", "ok", "compris", "génial"}

// baseSuggestions are the default follow-up chips.
var baseSuggestions = []string{"Couleurs", "Layout"}
