package listing

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"disclot/internal/config"
	"disclot/internal/schema"
)

// Partial is the caller-assembled field set for one disc, handed over in one
// piece after the excluded metadata/pricing/upload calls complete.
type Partial struct {
	// MovieTitle is the caller's title input; falls back to metadata, then
	// to a title derived from the original filename.
	MovieTitle       string
	DisplayTitle     string
	SourceImage      string
	OriginalFilename string
	Metadata         *MovieMetadata
	// SuggestedPrice of 0 means "derive from research or fallback".
	SuggestedPrice float64
	AveragePrice   *float64
	PhotoRefs      []string
	UserNotes      string
}

// Resolver merges configured defaults, a caller partial, and an override map
// into a fully populated Record.
type Resolver struct {
	cfg *config.Config
}

// NewResolver returns a resolver bound to the given configuration.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve produces a fully populated, still unvalidated Record. Overrides are
// applied field by field through the coercion tables; an unrecognized key or
// value aborts with ErrUnrecognizedOverride and no record.
func (r *Resolver) Resolve(partial Partial, overrides map[string]string) (Record, error) {
	rec, err := r.skeleton()
	if err != nil {
		return Record{}, err
	}

	applyPartial(&rec, partial)

	// Deterministic override order keeps error reporting stable.
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := applyOverride(&rec, key, overrides[key]); err != nil {
			return Record{}, err
		}
	}

	r.derivePricing(&rec)

	if rec.Identity.Title == "" {
		rec.Identity.Title = DisplayTitle(rec.Metadata.Title, rec.Metadata.ReleaseYear, rec.Condition)
	}

	return rec, nil
}

func (r *Resolver) skeleton() (Record, error) {
	d := r.cfg.Defaults

	condition, err := CoerceCondition(d.Condition)
	if err != nil {
		return Record{}, fmt.Errorf("defaults.condition: %w", err)
	}
	region, err := CoerceRegion(d.RegionCode)
	if err != nil {
		return Record{}, fmt.Errorf("defaults.region_code: %w", err)
	}

	return Record{
		Condition: condition,
		Tech: TechnicalSpec{
			RegionCode: region,
			Language:   d.Language,
			CaseType:   d.CaseType,
		},
		Custom: CustomFields{
			Quantity:      d.Quantity,
			Location:      d.Location,
			Duration:      d.Duration,
			ListingFormat: d.ListingFormat,
		},
	}, nil
}

func applyPartial(rec *Record, partial Partial) {
	rec.Identity.Title = strings.TrimSpace(partial.DisplayTitle)
	rec.Identity.SourceImage = strings.TrimSpace(partial.SourceImage)
	rec.Identity.OriginalFilename = strings.TrimSpace(partial.OriginalFilename)

	if partial.Metadata != nil {
		rec.Metadata = *partial.Metadata
	}
	if title := strings.TrimSpace(partial.MovieTitle); title != "" && rec.Metadata.Title == "" {
		rec.Metadata.Title = title
	}
	if rec.Metadata.Title == "" {
		rec.Metadata.Title = TitleFromFilename(partial.OriginalFilename)
	}

	rec.PhotoRefs = append([]string(nil), partial.PhotoRefs...)
	rec.UserNotes = strings.TrimSpace(partial.UserNotes)
	rec.Pricing.SuggestedPrice = partial.SuggestedPrice
	if partial.AveragePrice != nil {
		avg := *partial.AveragePrice
		rec.Pricing.AveragePrice = &avg
	}
}

func applyOverride(rec *Record, key, value string) error {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "condition":
		condition, err := CoerceCondition(value)
		if err != nil {
			return err
		}
		rec.Condition = condition
	case "region_code":
		region, err := CoerceRegion(value)
		if err != nil {
			return err
		}
		rec.Tech.RegionCode = region
	case "case_type":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: case_type must not be empty", ErrUnrecognizedOverride)
		}
		rec.Tech.CaseType = strings.TrimSpace(value)
	case "language":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: language must not be empty", ErrUnrecognizedOverride)
		}
		rec.Tech.Language = strings.TrimSpace(value)
	case "location":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: location must not be empty", ErrUnrecognizedOverride)
		}
		rec.Custom.Location = strings.TrimSpace(value)
	case "quantity":
		quantity, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || quantity <= 0 {
			return fmt.Errorf("%w: quantity %q", ErrUnrecognizedOverride, value)
		}
		rec.Custom.Quantity = quantity
	case "price":
		price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || price <= 0 {
			return fmt.Errorf("%w: price %q", ErrUnrecognizedOverride, value)
		}
		rec.Pricing.SuggestedPrice = price
	case "duration":
		col, _ := schema.Lookup(schema.ColDuration)
		trimmed := strings.TrimSpace(value)
		if !col.InDomain(trimmed) {
			return fmt.Errorf("%w: duration %q", ErrUnrecognizedOverride, value)
		}
		rec.Custom.Duration = trimmed
	case "notes":
		rec.UserNotes = strings.TrimSpace(value)
	default:
		return fmt.Errorf("%w: unknown field %q", ErrUnrecognizedOverride, key)
	}
	return nil
}

// derivePricing fills the start price chain and cost fields: explicit price,
// then average market price with margin, then the configured fallback.
func (r *Resolver) derivePricing(rec *Record) {
	if rec.Pricing.SuggestedPrice <= 0 {
		if rec.Pricing.AveragePrice != nil && *rec.Pricing.AveragePrice > 0 {
			rec.Pricing.SuggestedPrice = roundCents(*rec.Pricing.AveragePrice * r.cfg.Pricing.Margin)
		} else if fallback, err := strconv.ParseFloat(r.cfg.Pricing.FallbackPrice, 64); err == nil {
			rec.Pricing.SuggestedPrice = fallback
		}
	}
	if shipping, err := strconv.ParseFloat(r.cfg.Defaults.ShippingCost, 64); err == nil {
		rec.Pricing.ShippingCost = shipping
	}
	rec.Pricing.TotalCost = roundCents(rec.Pricing.SuggestedPrice + rec.Pricing.ShippingCost)
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
