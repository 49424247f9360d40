package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"disclot/internal/exportlog"
)

func newExportsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "exports",
		Short: "Show the export history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLedger(func(ledger *exportlog.Ledger) error {
				entries, err := ledger.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No exports recorded yet.")
					return nil
				}

				headers := []string{"Created", "File", "Items"}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
						entry.FileName,
						strconv.Itoa(entry.ItemCount),
					})
				}
				aligns := []columnAlignment{alignLeft, alignLeft, alignRight}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			})
		},
	}
}
