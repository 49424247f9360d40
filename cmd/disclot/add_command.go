package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"disclot/internal/config"
	"disclot/internal/listing"
	"disclot/internal/store"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		title      string
		price      float64
		avgPrice   float64
		photos     []string
		overrides  []string
		metaPath   string
		notes      string
		sourceRef  string
		sourceFile string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a disc listing to the working set",
		Long: `Add validates and stores one listing. Photo URLs come from --photo
(repeatable); field defaults come from configuration and can be overridden
per listing with --set field=value. Movie metadata produced by an external
lookup can be attached as a JSON file via --meta.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			partial := listing.Partial{
				MovieTitle:       strings.TrimSpace(title),
				SourceImage:      strings.TrimSpace(sourceRef),
				OriginalFilename: strings.TrimSpace(sourceFile),
				SuggestedPrice:   price,
				PhotoRefs:        photos,
				UserNotes:        notes,
			}
			if avgPrice > 0 {
				partial.AveragePrice = &avgPrice
			}
			if metaPath != "" {
				meta, err := readMetadata(metaPath)
				if err != nil {
					return err
				}
				partial.Metadata = meta
			}

			overrideMap, err := parseOverrides(overrides)
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, s *store.Store) error {
				rec, err := listing.NewResolver(cfg).Resolve(partial, overrideMap)
				if err != nil {
					return err
				}
				count, err := s.Add(cmd.Context(), &rec)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added listing #%d: %s\n", count, rec.Identity.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Movie title")
	cmd.Flags().Float64VarP(&price, "price", "p", 0, "Asking price (derived from research or fallback when omitted)")
	cmd.Flags().Float64Var(&avgPrice, "avg-price", 0, "Researched average market price")
	cmd.Flags().StringArrayVar(&photos, "photo", nil, "Hosted photo URL (repeatable)")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Per-listing override as field=value (repeatable)")
	cmd.Flags().StringVar(&metaPath, "meta", "", "Path to a movie metadata JSON file")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form condition notes for the description")
	cmd.Flags().StringVar(&sourceRef, "source-image", "", "Reference to the photographed disc image")
	cmd.Flags().StringVar(&sourceFile, "filename", "", "Original image filename, used to derive a title when none is given")

	return cmd
}

func readMetadata(path string) (*listing.MovieMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}
	var meta listing.MovieMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	return &meta, nil
}

func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("override %q is not in field=value form", pair)
		}
		overrides[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return overrides, nil
}
