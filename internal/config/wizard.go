package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/atelier-studio/atelier/internal/site"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .atelier.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Bienvenue dans atelier ! Configurons ton site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Nom du site",
		Default: cfg.SiteName,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("le nom ne peut pas être vide")
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = name

	// 2. Theme palette.
	var paletteItems []string
	for _, id := range site.PaletteIDs {
		p := site.Palettes[id]
		paletteItems = append(paletteItems, fmt.Sprintf("%-8s %s", id, p.Primary))
	}
	palettePrompt := promptui.Select{
		Label: "Palette de couleurs",
		Items: paletteItems,
	}
	paletteIdx, _, err := palettePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("palette selection: %w", err)
	}
	cfg.Theme = site.PaletteIDs[paletteIdx]

	// 3. Border radius.
	var radiusItems []string
	for _, opt := range site.RadiusOptions {
		radiusItems = append(radiusItems, fmt.Sprintf("%-7s %s (%s)", opt.ID, opt.Name, opt.Preview))
	}
	radiusPrompt := promptui.Select{
		Label: "Arrondi des coins",
		Items: radiusItems,
	}
	radiusIdx, _, err := radiusPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("radius selection: %w", err)
	}
	cfg.BorderRadius = string(site.RadiusOptions[radiusIdx].ID)

	// 4. History depth.
	historyPrompt := promptui.Prompt{
		Label:   "Profondeur d'annulation (undo)",
		Default: strconv.Itoa(cfg.HistoryLimit),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return fmt.Errorf("entier positif attendu")
			}
			return nil
		},
	}
	historyStr, err := historyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("history limit: %w", err)
	}
	cfg.HistoryLimit, _ = strconv.Atoi(historyStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Printf("Configuration écrite dans %s\n", DefaultConfigFile)
	return cfg, nil
}
