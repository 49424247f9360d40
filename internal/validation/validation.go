package validation

import (
	"fmt"
	"strconv"
	"strings"

	"disclot/internal/listing"
	"disclot/internal/schema"
	"disclot/internal/template"
)

// Failure describes one reason a record cannot be accepted. Field names a
// record attribute or a template column, depending on which layer caught it.
type Failure struct {
	Field  string
	Reason string
}

func (f Failure) String() string {
	return f.Field + ": " + f.Reason
}

// Error carries the complete, ordered failure list for one record.
type Error struct {
	Failures []Failure
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.String()
	}
	return fmt.Sprintf("listing validation failed (%d issue(s)): %s", len(e.Failures), strings.Join(parts, "; "))
}

// Validate runs every rule against a record and its projected row, returning
// all failures in a stable order: record-level checks first, then template
// columns in registry order. A nil slice means the record is acceptable.
func Validate(rec *listing.Record, row template.Row) []Failure {
	var failures []Failure

	failures = append(failures, recordFailures(rec)...)
	failures = append(failures, rowFailures(row)...)

	return failures
}

// Check wraps Validate for callers that want an error value. It returns nil
// when the record passes, otherwise an *Error holding every failure.
func Check(rec *listing.Record, row template.Row) error {
	failures := Validate(rec, row)
	if len(failures) == 0 {
		return nil
	}
	return &Error{Failures: failures}
}

func recordFailures(rec *listing.Record) []Failure {
	var failures []Failure

	if !rec.Condition.Valid() {
		failures = append(failures, Failure{
			Field:  "condition",
			Reason: fmt.Sprintf("%q is not a recognized condition", string(rec.Condition)),
		})
	}
	if !rec.Tech.RegionCode.Valid() {
		failures = append(failures, Failure{
			Field:  "region_code",
			Reason: fmt.Sprintf("%q is not a recognized region code", string(rec.Tech.RegionCode)),
		})
	}
	if rec.Pricing.SuggestedPrice <= 0 {
		failures = append(failures, Failure{
			Field:  "suggested_price",
			Reason: "must be greater than zero",
		})
	}
	if rec.Custom.Quantity <= 0 {
		failures = append(failures, Failure{
			Field:  "quantity",
			Reason: "must be greater than zero",
		})
	}
	if len(rec.PhotoRefs) == 0 {
		failures = append(failures, Failure{
			Field:  "photo_refs",
			Reason: "at least one photo reference is required",
		})
	}
	if len(rec.PhotoRefs) > schema.MaxPhotoURLs {
		failures = append(failures, Failure{
			Field:  "photo_refs",
			Reason: fmt.Sprintf("%d photo references exceed the template limit of %d", len(rec.PhotoRefs), schema.MaxPhotoURLs),
		})
	}

	return failures
}

func rowFailures(row template.Row) []Failure {
	var failures []Failure

	for i, col := range schema.Columns() {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		if cell == "" {
			if col.Required {
				failures = append(failures, Failure{Field: col.Name, Reason: "required column is empty"})
			}
			continue
		}
		switch col.Kind {
		case schema.KindNumeric:
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				failures = append(failures, Failure{
					Field:  col.Name,
					Reason: fmt.Sprintf("%q is not numeric", cell),
				})
			}
		case schema.KindEnumerated:
			if !col.InDomain(cell) {
				failures = append(failures, Failure{
					Field:  col.Name,
					Reason: fmt.Sprintf("%q is not one of %s", cell, strings.Join(col.Domain, ", ")),
				})
			}
		}
	}

	return failures
}
