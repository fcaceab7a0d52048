package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/pkg/docstore"
	"github.com/weft-ui/weft/pkg/preview"
	"github.com/weft-ui/weft/pkg/schema"
)

func previewCmd() *cobra.Command {
	var (
		addr       string
		schemaPath string
		noWatch    bool
	)

	cmd := &cobra.Command{
		Use:   "preview <document>",
		Short: "Serve a live HTML preview of a document's template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath := args[0]
			reg := schema.Builtin()
			if schemaPath != "" {
				var err error
				if reg, err = schema.LoadFile(schemaPath); err != nil {
					return err
				}
			}

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			cfg := preview.Config{
				Addr:     addr,
				Store:    docstore.NewDiskStore(filepath.Dir(docPath)),
				Document: filepath.Base(docPath),
				Registry: reg,
				Logger:   log,
			}
			if !noWatch {
				cfg.WatchPath = docPath
			}
			s, err := preview.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8473", "listen address")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "YAML schema registry file (default: builtin classes)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "disable file watching and hot reload")
	return cmd
}
