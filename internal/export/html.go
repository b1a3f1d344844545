// Package export renders the standalone HTML projection of a document.
// It is a lossy one-way export: there is no HTML import path.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/atelier-studio/atelier/internal/site"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(ghtml.WithHardWraps()),
)

// renderCopy converts long-form markdown copy (feature descriptions,
// FAQ answers) into inline HTML.
func renderCopy(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return template.HTML(out)
}

// pageData is the data passed to the page template.
type pageData struct {
	Name      string
	Primary   string
	Secondary string
	Accent    string
	Tint10    string
	Tint20    string
	Tint30    string
	Tint50    string
	Radius    string
	Hero      *site.Section
	Sections  []*site.Section
}

var radiusCSS = map[site.Radius]string{
	site.RadiusNone:   "0",
	site.RadiusSmall:  "4px",
	site.RadiusMedium: "8px",
	site.RadiusLarge:  "16px",
}

// GenerateHTML renders the document as a single standalone page: the
// hero plus every other visible section, themed from the global palette.
func GenerateHTML(doc *site.Document) (string, error) {
	primary, secondary, accent := "#A78BFA", "#8B5CF6", "#7C3AED"
	if p := doc.Global.Palette; p != nil {
		if p.Primary != "" {
			primary = p.Primary
		}
		if p.Secondary != "" {
			secondary = p.Secondary
		}
		if p.Accent != "" {
			accent = p.Accent
		}
	}

	data := pageData{
		Name:      doc.Meta.Name,
		Primary:   primary,
		Secondary: secondary,
		Accent:    accent,
		Tint10:    site.Tint(primary, 0.1),
		Tint20:    site.Tint(primary, 0.2),
		Tint30:    site.Tint(primary, 0.3),
		Tint50:    site.Tint(primary, 0.5),
		Radius:    radiusCSS[doc.Global.BorderRadius],
	}
	if data.Name == "" {
		data.Name = "Ma Landing Page"
	}
	if data.Radius == "" {
		data.Radius = radiusCSS[site.RadiusLarge]
	}

	for _, sec := range doc.VisibleSections() {
		if sec.Type == site.TypeHero && data.Hero == nil {
			data.Hero = sec
			continue
		}
		data.Sections = append(data.Sections, sec)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering HTML export: %w", err)
	}
	return buf.String(), nil
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"copy":  renderCopy,
	"label": func(t site.SectionType) string { return site.Label(t) },
	"isType": func(s *site.Section, t string) bool {
		return s.Type == site.SectionType(t)
	},
}).Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8"><meta name="viewport" content="width=device-width,initial-scale=1.0">
  <title>{{.Name}}</title>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap" rel="stylesheet">
  <script src="https://cdn.tailwindcss.com"></script>
  <style>
    :root{--color-primary:{{.Primary}};--color-secondary:{{.Secondary}};--color-accent:{{.Accent}};--color-primary-10:{{.Tint10}};--color-primary-20:{{.Tint20}};--color-primary-30:{{.Tint30}};--color-primary-50:{{.Tint50}};--radius:{{.Radius}}}
    body{font-family:'Inter',sans-serif;background:#0A0E1A;color:white}
    .text-gradient{background:linear-gradient(135deg,#22D3EE,{{.Primary}},#F472B6);-webkit-background-clip:text;background-clip:text;color:transparent}
    .card{background:var(--color-primary-10);border:1px solid var(--color-primary-20);border-radius:var(--radius)}
  </style>
</head>
<body class="min-h-screen">
{{with .Hero}}  <section class="py-20 text-center">
    <div class="container mx-auto px-6">
{{with index .Content "badge"}}      <span class="inline-block px-4 py-1 mb-6 text-sm card"{{with index $.Hero.Colors "badge"}} style="color:{{.}}"{{end}}>{{.}}</span>
{{end}}      <h1 class="text-5xl font-bold mb-6"{{with index .Colors "title"}} style="color:{{.}}"{{end}}>{{with index .Content "title"}}{{.}}{{else}}Bienvenue{{end}}</h1>
      <p class="text-xl text-gray-400 mb-8 max-w-2xl mx-auto"{{with index .Colors "subtitle"}} style="color:{{.}}"{{end}}>{{index .Content "subtitle"}}</p>
      <button class="px-8 py-3 rounded-full font-semibold text-white" style="background:linear-gradient(135deg,{{$.Primary}},#F472B6){{with index .Colors "ctaPrimary"}};color:{{.}}{{end}}">{{with index .Content "ctaPrimary"}}{{.}}{{else}}Commencer{{end}}</button>
    </div>
  </section>
{{end}}{{range .Sections}}  <section class="py-16">
    <div class="container mx-auto px-6">
      <h2 class="text-3xl font-bold mb-3 text-center"{{with index .Colors "title"}} style="color:{{.}}"{{end}}>{{index .Content "title"}}</h2>
      <p class="text-gray-400 mb-10 text-center"{{with index .Colors "subtitle"}} style="color:{{.}}"{{end}}>{{index .Content "subtitle"}}</p>
{{if isType . "features"}}      <div class="grid md:grid-cols-3 gap-6">
{{range .Items}}        <div class="card p-6"><h3 class="font-semibold mb-2" style="color:{{if .Color}}{{.Color}}{{else}}var(--color-primary){{end}}">{{.Title}}</h3><p class="text-gray-400">{{copy .Description}}</p></div>
{{end}}      </div>
{{else if isType . "howItWorks"}}      <ol class="max-w-2xl mx-auto space-y-6">
{{range .Steps}}        <li class="card p-6 flex gap-4"><span class="text-2xl font-bold" style="color:var(--color-primary)">{{.Number}}</span><div><h3 class="font-semibold mb-1">{{.Title}}</h3><p class="text-gray-400">{{copy .Description}}</p></div></li>
{{end}}      </ol>
{{else if isType . "pricing"}}      <div class="grid md:grid-cols-3 gap-6">
{{range .Plans}}        <div class="card p-6 text-center{{if .Highlighted}} ring-2{{end}}" {{if .Highlighted}}style="--tw-ring-color:var(--color-primary)"{{end}}>{{if .Badge}}<span class="text-xs px-3 py-1 card">{{.Badge}}</span>{{end}}<h3 class="font-semibold mt-3">{{.Name}}</h3><p class="text-3xl font-bold my-3">{{.Price}}<span class="text-sm text-gray-400">{{.Period}}</span></p><ul class="text-gray-400 text-sm space-y-1 mb-5">{{range .Features}}<li>{{.}}</li>{{end}}</ul><button class="px-6 py-2 rounded-full text-white" style="background:var(--color-primary)">{{.CTA}}</button></div>
{{end}}      </div>
{{else if isType . "faq"}}      <div class="max-w-2xl mx-auto space-y-4">
{{range .Items}}        <details class="card p-5"><summary class="font-medium cursor-pointer">{{.Question}}</summary><p class="text-gray-400 mt-3">{{copy .Answer}}</p></details>
{{end}}      </div>
{{end}}    </div>
  </section>
{{end}}  <footer class="py-8 text-center text-gray-500 border-t border-gray-800">Fait avec 🫧 <span class="text-gradient font-semibold">Atelier</span></footer>
</body>
</html>`))
