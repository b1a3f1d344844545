package cmd

import (
	"github.com/spf13/cobra"

	"github.com/atelier-studio/atelier/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create the .atelier.yml configuration",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := config.RunWizard()
		exitOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
