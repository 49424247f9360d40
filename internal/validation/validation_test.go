package validation_test

import (
	"errors"
	"strings"
	"testing"

	"disclot/internal/config"
	"disclot/internal/listing"
	"disclot/internal/schema"
	"disclot/internal/template"
	"disclot/internal/validation"
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

func validRecord(t *testing.T, cfg *config.Config) listing.Record {
	t.Helper()
	rec, err := listing.NewResolver(cfg).Resolve(listing.Partial{
		MovieTitle:     "Heat",
		SuggestedPrice: 11.50,
		PhotoRefs:      []string{"https://img.example/heat.jpg"},
	}, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return rec
}

func TestValidRecordProducesNoFailures(t *testing.T) {
	cfg := testConfig(t)
	rec := validRecord(t, cfg)
	row := template.BuildRow(&rec, cfg)

	if failures := validation.Validate(&rec, row); len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if err := validation.Check(&rec, row); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestValidateCollectsEveryFailure(t *testing.T) {
	cfg := testConfig(t)
	rec := validRecord(t, cfg)
	rec.Pricing.SuggestedPrice = 0
	rec.Custom.Quantity = 0
	rec.PhotoRefs = nil
	rec.Tech.RegionCode = "Z"
	row := template.BuildRow(&rec, cfg)

	failures := validation.Validate(&rec, row)
	wantFields := map[string]bool{
		"region_code":        false,
		"suggested_price":    false,
		"quantity":           false,
		"photo_refs":         false,
		schema.ColStartPrice: false,
		schema.ColRegionCode: false,
	}
	for _, f := range failures {
		if _, tracked := wantFields[f.Field]; tracked {
			wantFields[f.Field] = true
		}
	}
	for field, seen := range wantFields {
		if !seen {
			t.Errorf("no failure reported for %s (got %v)", field, failures)
		}
	}
}

func TestValidateOrdersRecordChecksBeforeColumns(t *testing.T) {
	cfg := testConfig(t)
	rec := validRecord(t, cfg)
	rec.Condition = "Mint"
	rec.PhotoRefs = nil
	row := template.BuildRow(&rec, cfg)

	failures := validation.Validate(&rec, row)
	if len(failures) < 2 {
		t.Fatalf("expected multiple failures, got %v", failures)
	}
	if failures[0].Field != "condition" {
		t.Errorf("first failure = %s, want condition", failures[0].Field)
	}
}

func TestValidateRejectsTooManyPhotos(t *testing.T) {
	cfg := testConfig(t)
	rec := validRecord(t, cfg)
	rec.PhotoRefs = make([]string, schema.MaxPhotoURLs+1)
	for i := range rec.PhotoRefs {
		rec.PhotoRefs[i] = "https://img.example/p.jpg"
	}
	row := template.BuildRow(&rec, cfg)

	failures := validation.Validate(&rec, row)
	found := false
	for _, f := range failures {
		if f.Field == "photo_refs" && strings.Contains(f.Reason, "exceed") {
			found = true
		}
	}
	if !found {
		t.Fatalf("photo limit not enforced: %v", failures)
	}
}

func TestValidateFlagsOutOfDomainEnumCell(t *testing.T) {
	cfg := testConfig(t)
	rec := validRecord(t, cfg)
	rec.Custom.Duration = "Days_90"
	row := template.BuildRow(&rec, cfg)

	failures := validation.Validate(&rec, row)
	found := false
	for _, f := range failures {
		if f.Field == schema.ColDuration {
			found = true
		}
	}
	if !found {
		t.Fatalf("duration domain not enforced: %v", failures)
	}
}

func TestErrorMessageListsEveryIssue(t *testing.T) {
	cfg := testConfig(t)
	rec := validRecord(t, cfg)
	rec.PhotoRefs = nil
	rec.Custom.Quantity = -1
	row := template.BuildRow(&rec, cfg)

	err := validation.Check(&rec, row)
	if err == nil {
		t.Fatal("expected error")
	}
	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("error type %T", err)
	}
	if len(vErr.Failures) != 2 {
		t.Fatalf("failure count = %d, want 2", len(vErr.Failures))
	}
	msg := err.Error()
	for _, want := range []string{"quantity", "photo_refs"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q: %s", want, msg)
		}
	}
}
