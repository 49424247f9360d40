package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"disclot/internal/config"
	"disclot/internal/store"
)

func newClearCommand(ctx *commandContext) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every listing from the working set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("clearing removes all accumulated listings; re-run with --yes to confirm")
			}
			return ctx.withStore(func(cfg *config.Config, s *store.Store) error {
				removed, err := s.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d listing(s)\n", removed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Confirm removal of all listings")
	return cmd
}
