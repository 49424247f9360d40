package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"disclot/internal/config"
	"disclot/internal/export"
	"disclot/internal/store"
	"disclot/internal/template"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the working set to a new bulk-upload CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSharedStore(func(cfg *config.Config, s *store.Store) error {
				entries, err := s.All(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([]template.Row, len(entries))
				for i, entry := range entries {
					rows[i] = entry.Row
				}

				return ctx.withExporter(func(_ *config.Config, e *export.Exporter) error {
					result, err := e.Export(cmd.Context(), rows)
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					if result.ItemCount == 0 {
						fmt.Fprintln(out, "Working set is empty; wrote a header-only file.")
					}
					fmt.Fprintf(out, "Exported %d listing(s) to %s\n", result.ItemCount, result.Path)
					return nil
				})
			})
		},
	}
}
