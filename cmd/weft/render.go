package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		schemaPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Synthesize a document's template and print it as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := buildFromFile(args[0], schemaPath)
			if err != nil {
				return err
			}
			out, err := tmpl.Synthesize()
			if err != nil {
				return err
			}
			r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			html, err := r.RenderToString(out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema registry file (default: builtin classes)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "indent the HTML output")
	return cmd
}
