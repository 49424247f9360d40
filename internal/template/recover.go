package template

import (
	"strconv"
	"strings"

	"disclot/internal/listing"
	"disclot/internal/schema"
)

// RecordFromRow rebuilds a listing record from a persisted template row.
// The reverse mapping is best-effort: generated cells (description) and
// fields the template never stores separately (user notes, source image)
// stay empty. It exists so a reopened store can present recovered rows the
// same way freshly added ones render.
func RecordFromRow(row Row) listing.Record {
	rec := listing.Record{
		Identity: listing.Identity{
			Title: row.Get(schema.ColTitle),
		},
		Metadata: listing.MovieMetadata{
			Title:       row.Get(schema.ColMovieTitle),
			Studio:      row.Get(schema.ColStudio),
			Director:    row.Get(schema.ColDirector),
			ReleaseYear: row.Get(schema.ColReleaseYear),
			Rating:      row.Get(schema.ColRating),
		},
		Tech: listing.TechnicalSpec{
			RegionCode: listing.Region(row.Get(schema.ColRegionCode)),
			Language:   row.Get(schema.ColLanguage),
			CaseType:   row.Get(schema.ColCaseType),
		},
		Custom: listing.CustomFields{
			Location:      row.Get(schema.ColLocation),
			Duration:      row.Get(schema.ColDuration),
			ListingFormat: row.Get(schema.ColListingFormat),
		},
	}

	if condition, ok := listing.ConditionFromID(row.Get(schema.ColConditionID)); ok {
		rec.Condition = condition
	}
	if genre := row.Get(schema.ColGenre); genre != "" {
		rec.Metadata.Genres = append(rec.Metadata.Genres, genre)
	}
	if sub := row.Get(schema.ColSubGenre); sub != "" {
		rec.Metadata.Genres = append(rec.Metadata.Genres, sub)
	}
	if actors := row.Get(schema.ColActor); actors != "" {
		rec.Metadata.Actors = splitList(actors, ",")
	}
	if subtitles := row.Get(schema.ColSubtitleLang); subtitles != "" {
		rec.Tech.SubtitleLanguages = splitList(subtitles, ",")
	}
	if runtime, err := strconv.Atoi(row.Get(schema.ColRunTime)); err == nil {
		rec.Metadata.RuntimeMinutes = runtime
	}
	if price, err := strconv.ParseFloat(row.Get(schema.ColStartPrice), 64); err == nil {
		rec.Pricing.SuggestedPrice = price
	}
	if quantity, err := strconv.Atoi(row.Get(schema.ColQuantity)); err == nil {
		rec.Custom.Quantity = quantity
	}
	if pics := row.Get(schema.ColPicURL); pics != "" {
		rec.PhotoRefs = splitList(pics, ";")
	}
	return rec
}

func splitList(value, sep string) []string {
	parts := strings.Split(value, sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
