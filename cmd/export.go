package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/atelier-studio/atelier/internal/config"
	"github.com/atelier-studio/atelier/internal/export"
)

var (
	exportFormat string
	exportOut    string
	exportCopy   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [site.json]",
	Short: "Export a site as JSON or standalone HTML",
	Long: `Exports the site document. Without a file argument the document is
seeded fresh from the configuration, which is handy for scaffolding.
JSON round-trips through "atelier edit site.json"; HTML is a one-way
standalone page.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		exitOnError(err)
		exitOnError(cfg.Validate())

		store, err := buildStore(cfg, args)
		exitOnError(err)

		var payload []byte
		switch exportFormat {
		case "json":
			payload, err = store.ExportJSON()
			exitOnError(err)
		case "html":
			page, err := export.GenerateHTML(store.Document())
			exitOnError(err)
			payload = []byte(page)
		default:
			exitOnError(fmt.Errorf("unknown format %q: use json or html", exportFormat))
		}

		if exportCopy {
			exitOnError(clipboard.WriteAll(string(payload)))
			fmt.Println("📋 Copié dans le presse-papier !")
		}

		out := exportOut
		if out == "" {
			name := store.Document().Meta.Name
			if name == "" {
				name = "atelier-site"
			}
			out = name + "." + exportFormat
		}
		exitOnError(os.WriteFile(out, payload, 0o644))
		fmt.Printf("📦 %s téléchargé !\n", out)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json or html")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <site name>.<format>)")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "also copy the payload to the clipboard")
	rootCmd.AddCommand(exportCmd)
}
