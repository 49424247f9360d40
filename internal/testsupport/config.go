// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"disclot/internal/config"
	"disclot/internal/listing"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.ExportDir = filepath.Join(base, "exports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithBestOffer enables the best-offer pricing ladder on the test config.
func WithBestOffer() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Defaults.BestOffer = true
	}
}

// WithPricing overrides the margin and fallback price on the test config.
func WithPricing(margin float64, fallback string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Pricing.Margin = margin
		cfg.Pricing.FallbackPrice = fallback
	}
}

// NewRecord resolves a minimal valid record against the test config.
func NewRecord(t testing.TB, cfg *config.Config, title string, price float64) listing.Record {
	t.Helper()

	rec, err := listing.NewResolver(cfg).Resolve(listing.Partial{
		MovieTitle:     title,
		SuggestedPrice: price,
		PhotoRefs:      []string{"https://img.example/front.jpg"},
	}, nil)
	if err != nil {
		t.Fatalf("resolve test record: %v", err)
	}
	return rec
}
