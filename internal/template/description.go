package template

import (
	"fmt"
	"html"
	"strings"

	"disclot/internal/listing"
)

const overviewLimit = 300

// Description renders the HTML listing description for a record. The output
// lands in a single CSV cell, so the exporter's quoting handles the markup.
func Description(rec *listing.Record) string {
	var b strings.Builder
	b.WriteString("<div style='font-family: Arial, sans-serif;'>")

	meta := rec.Metadata
	if meta.Title != "" {
		fmt.Fprintf(&b, "<h3>%s</h3>", html.EscapeString(meta.Title))
	}
	if meta.Overview != "" {
		fmt.Fprintf(&b, "<p><strong>Plot:</strong> %s</p>", html.EscapeString(truncate(meta.Overview, overviewLimit)))
	}
	if meta.Director != "" {
		fmt.Fprintf(&b, "<p><strong>Director:</strong> %s</p>", html.EscapeString(meta.Director))
	}
	if len(meta.Actors) > 0 {
		actors := meta.Actors
		if len(actors) > 5 {
			actors = actors[:5]
		}
		fmt.Fprintf(&b, "<p><strong>Cast:</strong> %s</p>", html.EscapeString(strings.Join(actors, ", ")))
	}
	if len(meta.Genres) > 0 {
		fmt.Fprintf(&b, "<p><strong>Genre:</strong> %s</p>", html.EscapeString(strings.Join(meta.Genres, ", ")))
	}
	if meta.RuntimeMinutes > 0 {
		fmt.Fprintf(&b, "<p><strong>Runtime:</strong> %d minutes</p>", meta.RuntimeMinutes)
	}

	fmt.Fprintf(&b, "<p><strong>Condition:</strong> %s</p>", rec.Condition)
	b.WriteString("<p><strong>Format:</strong> Blu-ray</p>")
	fmt.Fprintf(&b, "<p><strong>Region:</strong> Region %s</p>", rec.Tech.RegionCode)

	if rec.UserNotes != "" {
		fmt.Fprintf(&b, "<p><strong>Notes:</strong> %s</p>", html.EscapeString(rec.UserNotes))
	}

	b.WriteString("<p>Fast shipping with tracking. Returns accepted within 30 days.</p>")
	b.WriteString("</div>")
	return b.String()
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
