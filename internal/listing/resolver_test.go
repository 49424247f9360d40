package listing_test

import (
	"errors"
	"testing"

	"disclot/internal/config"
	"disclot/internal/listing"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestResolveFillsDefaults(t *testing.T) {
	resolver := listing.NewResolver(testConfig(t))

	rec, err := resolver.Resolve(listing.Partial{
		MovieTitle:     "The Dark Knight",
		SuggestedPrice: 9.99,
		PhotoRefs:      []string{"https://img.example/dk.jpg"},
	}, nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if rec.Condition != listing.ConditionVeryGood {
		t.Fatalf("condition = %q, want default Very Good", rec.Condition)
	}
	if rec.Tech.RegionCode != listing.RegionA {
		t.Fatalf("region = %q, want default A", rec.Tech.RegionCode)
	}
	if rec.Custom.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", rec.Custom.Quantity)
	}
	if rec.Custom.Location == "" {
		t.Fatal("expected default location")
	}
	if rec.Metadata.Title != "The Dark Knight" {
		t.Fatalf("movie title = %q", rec.Metadata.Title)
	}
	if rec.Identity.Title != "The Dark Knight (Blu-ray) - Very Good" {
		t.Fatalf("display title = %q", rec.Identity.Title)
	}
	if rec.Pricing.SuggestedPrice != 9.99 {
		t.Fatalf("price = %v", rec.Pricing.SuggestedPrice)
	}
	if rec.Pricing.ShippingCost != 4.00 {
		t.Fatalf("shipping = %v", rec.Pricing.ShippingCost)
	}
	if rec.Pricing.TotalCost != 13.99 {
		t.Fatalf("total = %v", rec.Pricing.TotalCost)
	}
	if rec.Submitted() {
		t.Fatal("fresh record must not be submitted")
	}
}

func TestResolveTitleIncludesYearFromMetadata(t *testing.T) {
	resolver := listing.NewResolver(testConfig(t))

	rec, err := resolver.Resolve(listing.Partial{
		Metadata: &listing.MovieMetadata{
			Title:       "The Dark Knight",
			ReleaseYear: "2008",
		},
		SuggestedPrice: 9.99,
	}, nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if rec.Identity.Title != "The Dark Knight (Blu-ray, 2008) - Very Good" {
		t.Fatalf("display title = %q", rec.Identity.Title)
	}
}

func TestResolveOverrideCoercesLikeNew(t *testing.T) {
	resolver := listing.NewResolver(testConfig(t))

	rec, err := resolver.Resolve(listing.Partial{MovieTitle: "Heat"}, map[string]string{
		"condition": "like new",
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if rec.Condition != listing.ConditionNewOther {
		t.Fatalf("condition = %q, want New other", rec.Condition)
	}
}

func TestResolveRejectsUnknownOverrideKey(t *testing.T) {
	resolver := listing.NewResolver(testConfig(t))

	_, err := resolver.Resolve(listing.Partial{MovieTitle: "Heat"}, map[string]string{
		"colour": "blue",
	})
	if !errors.Is(err, listing.ErrUnrecognizedOverride) {
		t.Fatalf("expected ErrUnrecognizedOverride, got %v", err)
	}
}

func TestResolveRejectsUnknownOverrideValue(t *testing.T) {
	resolver := listing.NewResolver(testConfig(t))

	_, err := resolver.Resolve(listing.Partial{MovieTitle: "Heat"}, map[string]string{
		"condition": "somewhat loved",
	})
	if !errors.Is(err, listing.ErrUnrecognizedOverride) {
		t.Fatalf("expected ErrUnrecognizedOverride, got %v", err)
	}
}

func TestResolvePriceFromAverageWithMargin(t *testing.T) {
	resolver := listing.NewResolver(testConfig(t))

	avg := 10.0
	rec, err := resolver.Resolve(listing.Partial{
		MovieTitle:   "Heat",
		AveragePrice: &avg,
	}, nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if rec.Pricing.SuggestedPrice != 11.50 {
		t.Fatalf("derived price = %v, want 11.50", rec.Pricing.SuggestedPrice)
	}
	if rec.Pricing.AveragePrice == nil || *rec.Pricing.AveragePrice != 10.0 {
		t.Fatalf("average price not preserved: %v", rec.Pricing.AveragePrice)
	}
}

func TestResolvePriceFallbackWhenNoResearch(t *testing.T) {
	resolver := listing.NewResolver(testConfig(t))

	rec, err := resolver.Resolve(listing.Partial{MovieTitle: "Heat"}, nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if rec.Pricing.SuggestedPrice != 12.99 {
		t.Fatalf("fallback price = %v, want 12.99", rec.Pricing.SuggestedPrice)
	}
	if rec.Pricing.AveragePrice != nil {
		t.Fatal("average price should stay nil without research")
	}
}

func TestResolveQuantityAndPriceOverrides(t *testing.T) {
	resolver := listing.NewResolver(testConfig(t))

	rec, err := resolver.Resolve(listing.Partial{MovieTitle: "Heat"}, map[string]string{
		"quantity": "2",
		"price":    "24.50",
		"location": "Austin, TX",
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if rec.Custom.Quantity != 2 {
		t.Fatalf("quantity = %d", rec.Custom.Quantity)
	}
	if rec.Pricing.SuggestedPrice != 24.50 {
		t.Fatalf("price = %v", rec.Pricing.SuggestedPrice)
	}
	if rec.Custom.Location != "Austin, TX" {
		t.Fatalf("location = %q", rec.Custom.Location)
	}

	if _, err := resolver.Resolve(listing.Partial{}, map[string]string{"quantity": "zero"}); !errors.Is(err, listing.ErrUnrecognizedOverride) {
		t.Fatalf("expected ErrUnrecognizedOverride for bad quantity, got %v", err)
	}
}

func TestTitleFromFilename(t *testing.T) {
	cases := map[string]string{
		"the_dark_knight.jpg": "The Dark Knight",
		"blade-runner.png":    "Blade Runner",
		"heat.webp":           "Heat",
		"":                    "",
	}
	for input, want := range cases {
		if got := listing.TitleFromFilename(input); got != want {
			t.Errorf("TitleFromFilename(%q) = %q, want %q", input, got, want)
		}
	}
}
