package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ierr "github.com/weft-ui/weft/internal/errors"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weft",
		Short: "Template trees of visual nodes and synthesize render-ready output",
		Long: `Weft builds reusable templates from statically authored trees of visual
nodes and synthesizes output trees from them with selector-addressed
overrides.

The CLI works on source-tree documents (YAML or JSONC):

  weft show panel.yaml           inspect the built template
  weft render panel.yaml         synthesize and print HTML
  weft preview panel.yaml        serve a live preview with hot reload`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		showCmd(),
		renderCmd(),
		previewCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var coded *ierr.Error
		if errors.As(err, &coded) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", coded.Format())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
