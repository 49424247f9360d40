package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"disclot/internal/config"
	"disclot/internal/schema"
	"disclot/internal/store"
)

func newListingsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "listings",
		Aliases: []string{"ls"},
		Short:   "Show the accumulated listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSharedStore(func(cfg *config.Config, s *store.Store) error {
				entries, err := s.All(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No listings yet. Add one with `disclot add`.")
					return nil
				}

				headers := []string{"#", "Title", "Condition", "Price", "Photos", "Added"}
				rows := make([][]string, 0, len(entries))
				for i, entry := range entries {
					added := ""
					if entry.Record.Submitted() {
						added = entry.Record.SubmittedAt.Local().Format("2006-01-02 15:04")
					}
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						entry.Row.Get(schema.ColTitle),
						string(entry.Record.Condition),
						entry.Row.Get(schema.ColStartPrice),
						strconv.Itoa(len(entry.Record.PhotoRefs)),
						added,
					})
				}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				fmt.Fprintf(out, "%d listing(s) ready for export\n", len(entries))
				return nil
			})
		},
	}
}
