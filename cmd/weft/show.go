package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/pkg/schema"
	"github.com/weft-ui/weft/pkg/template"
	"github.com/weft-ui/weft/pkg/tree"
)

func showCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "show <document>",
		Short: "Build a template from a document and print its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := buildFromFile(args[0], schemaPath)
			if err != nil {
				return err
			}
			var sb strings.Builder
			dumpNode(&sb, "", tmpl.Root(), 0)
			fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema registry file (default: builtin classes)")
	return cmd
}

// buildFromFile loads a document and schema and builds the template.
func buildFromFile(docPath, schemaPath string) (*template.Template, error) {
	reg := schema.Builtin()
	if schemaPath != "" {
		var err error
		if reg, err = schema.LoadFile(schemaPath); err != nil {
			return nil, err
		}
	}
	root, err := tree.LoadFile(docPath)
	if err != nil {
		return nil, err
	}
	return template.Build(root, reg)
}

// dumpNode prints one template node and recurses into its children in key
// order.
func dumpNode(sb *strings.Builder, key string, n *template.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case template.KindFragment:
		fmt.Fprintf(sb, "%s%s <fragment, %d members>\n", indent, key, len(n.Children))
	default:
		label := n.Name()
		if key != "" && key != label {
			label = key
		}
		marks := ""
		if n.IsRoot {
			marks += " root"
		}
		if n.SingleFragment {
			marks += " grouped"
		}
		fmt.Fprintf(sb, "%s%s (%s)%s%s\n", indent, label, n.Class, marks, formatSnapshot(n.Snapshot))
	}

	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dumpNode(sb, k, n.Children[k], depth+1)
	}
}

func formatSnapshot(props template.Props) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, props[k])
	}
	return " {" + strings.Join(parts, ", ") + "}"
}
