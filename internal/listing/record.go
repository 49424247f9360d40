package listing

import "time"

// Identity names the listing and ties it back to the photographed disc.
type Identity struct {
	// Title is the marketplace display title. Generated from metadata when
	// the caller does not supply one.
	Title            string `json:"title"`
	SourceImage      string `json:"source_image,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
}

// MovieMetadata carries the movie facts looked up by the excluded metadata
// layer. Every field is optional; blank fields simply leave template cells
// empty.
type MovieMetadata struct {
	Title          string   `json:"title"`
	Studio         string   `json:"studio,omitempty"`
	Genres         []string `json:"genres,omitempty"`
	Director       string   `json:"director,omitempty"`
	Actors         []string `json:"actors,omitempty"`
	ReleaseYear    string   `json:"release_year,omitempty"`
	Rating         string   `json:"rating,omitempty"`
	RuntimeMinutes int      `json:"runtime,omitempty"`
	Overview       string   `json:"overview,omitempty"`
}

// TechnicalSpec describes the physical disc.
type TechnicalSpec struct {
	RegionCode        Region   `json:"region_code"`
	Language          string   `json:"language"`
	SubtitleLanguages []string `json:"subtitle_languages,omitempty"`
	CaseType          string   `json:"case_type"`
	SpecialFeatures   string   `json:"special_features,omitempty"`
}

// Pricing carries the asking price and optional market research.
type Pricing struct {
	// SuggestedPrice is the start price in the exported file.
	SuggestedPrice float64 `json:"suggested_price"`
	// AveragePrice is the researched market average. Nil until a pricing
	// lookup has run; validity never depends on it.
	AveragePrice *float64 `json:"average_price,omitempty"`
	ShippingCost float64  `json:"shipping_cost"`
	TotalCost    float64  `json:"total_cost"`
}

// CustomFields holds schema-required values that rarely vary per item.
type CustomFields struct {
	Quantity      int    `json:"quantity"`
	Location      string `json:"location"`
	Duration      string `json:"duration"`
	ListingFormat string `json:"listing_format"`
}

// Record is one disc's complete candidate listing.
type Record struct {
	Identity  Identity      `json:"identity"`
	Condition Condition     `json:"condition"`
	Metadata  MovieMetadata `json:"metadata"`
	Tech      TechnicalSpec `json:"tech"`
	Pricing   Pricing       `json:"pricing"`
	// PhotoRefs are externally hosted image URLs, in display order.
	PhotoRefs []string `json:"photo_refs"`
	UserNotes string   `json:"user_notes,omitempty"`
	Custom    CustomFields `json:"custom"`

	// SubmittedAt is set once, when the store accepts the record. The zero
	// value marks an in-progress record not yet eligible for export.
	SubmittedAt time.Time `json:"submitted_at,omitzero"`
}

// Submitted reports whether the record has been accepted into the store.
func (r *Record) Submitted() bool {
	return !r.SubmittedAt.IsZero()
}

// MarkSubmitted records the one-way transition into the store. Repeated
// calls keep the first timestamp.
func (r *Record) MarkSubmitted(at time.Time) {
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = at.UTC()
	}
}
