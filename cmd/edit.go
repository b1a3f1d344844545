package cmd

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/atelier-studio/atelier/internal/config"
	"github.com/atelier-studio/atelier/internal/editor"
	"github.com/atelier-studio/atelier/internal/session"
	"github.com/atelier-studio/atelier/internal/site"
	"github.com/atelier-studio/atelier/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit [site.json]",
	Short: "Open the interactive editor",
	Long: `Opens the terminal editor on a fresh document seeded from the
configuration, or on an existing JSON export when a file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		exitOnError(err)
		exitOnError(cfg.Validate())

		store, err := buildStore(cfg, args)
		exitOnError(err)

		sess := session.New()
		if !session.OnboardingSeen() {
			// One-time intro; the marker lives under the user config dir.
			fmt.Println("Bienvenue ! Sélectionne une section avec ↑/↓ puis parle à l'assistant (ex: \"mets le titre en rose\").")
			if err := session.MarkOnboardingSeen(); err != nil {
				log.Printf("onboarding marker: %v", err)
			}
		}

		p := tea.NewProgram(tui.New(store, sess, cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			exitOnError(fmt.Errorf("running editor: %w", err))
		}
	},
}

// buildStore seeds a new document from config, or imports the given
// JSON export.
func buildStore(cfg *config.Config, args []string) (*editor.Store, error) {
	doc := site.NewDocument(cfg.SiteName, cfg.Theme, cfg.SeedTypes())
	if cfg.BorderRadius != "" {
		doc.Global.BorderRadius = site.Radius(cfg.BorderRadius)
	}
	store := editor.NewStore(doc, cfg.HistoryLimit)

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", args[0], err)
		}
		if err := store.ImportJSON(data); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func init() {
	rootCmd.AddCommand(editCmd)
}
