package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelier-studio/atelier/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Point-and-click landing page builder with a chat assistant",
	Long: `Atelier assembles a landing page from a catalogue of sections (hero,
features, étapes, tarifs, FAQ). Edit content, colors and layouts in the
terminal editor or steer the assistant with plain chat commands; every
change is undoable and the result exports as reimportable JSON or as a
standalone HTML page.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
