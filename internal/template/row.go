package template

import (
	"fmt"
	"strconv"
	"strings"

	"disclot/internal/config"
	"disclot/internal/listing"
	"disclot/internal/schema"
)

// Row is one projected listing in template column order. Its length always
// equals schema.Count().
type Row []string

// Get returns the cell for a column name, or "" for unknown columns.
func (r Row) Get(name string) string {
	i, ok := schema.Index(name)
	if !ok || i >= len(r) {
		return ""
	}
	return r[i]
}

// rule is a pure projection from a record (plus configuration constants)
// to one cell value.
type rule func(rec *listing.Record, cfg *config.Config) string

// rules maps template columns to their extraction rule. Columns absent here
// emit the schema registry's default literal.
var rules = map[string]rule{
	schema.ColCategory: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.CategoryID
	},
	schema.ColTitle: func(rec *listing.Record, _ *config.Config) string {
		return rec.Identity.Title
	},
	schema.ColConditionID: func(rec *listing.Record, _ *config.Config) string {
		return rec.Condition.ID()
	},
	schema.ColMovieTitle: func(rec *listing.Record, _ *config.Config) string {
		return rec.Metadata.Title
	},
	schema.ColStudio: func(rec *listing.Record, _ *config.Config) string {
		return rec.Metadata.Studio
	},
	schema.ColGenre: func(rec *listing.Record, _ *config.Config) string {
		if len(rec.Metadata.Genres) > 0 {
			return rec.Metadata.Genres[0]
		}
		return ""
	},
	schema.ColSubGenre: func(rec *listing.Record, _ *config.Config) string {
		if len(rec.Metadata.Genres) > 1 {
			return rec.Metadata.Genres[1]
		}
		return ""
	},
	schema.ColDirector: func(rec *listing.Record, _ *config.Config) string {
		return rec.Metadata.Director
	},
	schema.ColActor: func(rec *listing.Record, _ *config.Config) string {
		actors := rec.Metadata.Actors
		if len(actors) > 3 {
			actors = actors[:3]
		}
		return strings.Join(actors, ", ")
	},
	schema.ColReleaseYear: func(rec *listing.Record, _ *config.Config) string {
		return rec.Metadata.ReleaseYear
	},
	schema.ColRating: func(rec *listing.Record, _ *config.Config) string {
		return rec.Metadata.Rating
	},
	schema.ColRunTime: func(rec *listing.Record, _ *config.Config) string {
		if rec.Metadata.RuntimeMinutes > 0 {
			return strconv.Itoa(rec.Metadata.RuntimeMinutes)
		}
		return ""
	},
	schema.ColRegionCode: func(rec *listing.Record, _ *config.Config) string {
		return string(rec.Tech.RegionCode)
	},
	schema.ColLanguage: func(rec *listing.Record, _ *config.Config) string {
		return rec.Tech.Language
	},
	schema.ColSubtitleLang: func(rec *listing.Record, _ *config.Config) string {
		return strings.Join(rec.Tech.SubtitleLanguages, ", ")
	},
	schema.ColCaseType: func(rec *listing.Record, _ *config.Config) string {
		return rec.Tech.CaseType
	},
	schema.ColSpecialFeatures: func(rec *listing.Record, _ *config.Config) string {
		return rec.Tech.SpecialFeatures
	},
	schema.ColCountryOfOrigin: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.CountryOfOrigin
	},
	schema.ColDescription: func(rec *listing.Record, _ *config.Config) string {
		return Description(rec)
	},
	schema.ColListingFormat: func(rec *listing.Record, _ *config.Config) string {
		return rec.Custom.ListingFormat
	},
	schema.ColDuration: func(rec *listing.Record, _ *config.Config) string {
		return rec.Custom.Duration
	},
	schema.ColStartPrice: func(rec *listing.Record, _ *config.Config) string {
		return FormatPrice(rec.Pricing.SuggestedPrice)
	},
	schema.ColBuyItNowPrice: func(rec *listing.Record, _ *config.Config) string {
		return FormatPrice(rec.Pricing.SuggestedPrice)
	},
	schema.ColQuantity: func(rec *listing.Record, _ *config.Config) string {
		return strconv.Itoa(rec.Custom.Quantity)
	},
	schema.ColLocation: func(rec *listing.Record, _ *config.Config) string {
		return rec.Custom.Location
	},
	schema.ColPicURL: func(rec *listing.Record, _ *config.Config) string {
		return strings.Join(rec.PhotoRefs, ";")
	},
	schema.ColGalleryType: func(rec *listing.Record, _ *config.Config) string {
		if len(rec.PhotoRefs) > 0 {
			return "Gallery"
		}
		return ""
	},
	schema.ColShipService: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.ShippingService
	},
	schema.ColShipCost: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.ShippingCost
	},
	schema.ColDispatchTimeMax: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.DispatchTimeMax
	},
	schema.ColReturnsAccepted: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.ReturnsAccepted
	},
	schema.ColReturnsWithin: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.ReturnsWithin
	},
	schema.ColRefundOption: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.RefundOption
	},
	schema.ColReturnShipPaid: func(_ *listing.Record, cfg *config.Config) string {
		return cfg.Defaults.ReturnShipping
	},
	schema.ColBestOffer: func(_ *listing.Record, cfg *config.Config) string {
		if cfg.Defaults.BestOffer {
			return "1"
		}
		return "0"
	},
	schema.ColBestOfferAccept: func(rec *listing.Record, cfg *config.Config) string {
		if !cfg.Defaults.BestOffer {
			return ""
		}
		// Auto-accept offers at 90% of the asking price.
		return FormatPrice(rec.Pricing.SuggestedPrice * 0.90)
	},
	schema.ColBestOfferMin: func(rec *listing.Record, cfg *config.Config) string {
		if !cfg.Defaults.BestOffer {
			return ""
		}
		// Reject offers below 75% of the asking price.
		return FormatPrice(rec.Pricing.SuggestedPrice * 0.75)
	},
}

// BuildRow projects a record into the template's column order.
func BuildRow(rec *listing.Record, cfg *config.Config) Row {
	cols := schema.Columns()
	row := make(Row, len(cols))
	for i, col := range cols {
		if project, ok := rules[col.Name]; ok {
			row[i] = project(rec, cfg)
			continue
		}
		row[i] = col.Default
	}
	return row
}

// FormatPrice renders a price cell with two decimal places.
func FormatPrice(value float64) string {
	if value <= 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", value)
}
