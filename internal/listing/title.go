package listing

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// DisplayTitle builds the marketplace listing title from the record's
// metadata and condition: "Title (Blu-ray, 2008) - Very Good". The year is
// omitted when unknown.
func DisplayTitle(movieTitle, releaseYear string, condition Condition) string {
	title := strings.TrimSpace(movieTitle)
	if year := strings.TrimSpace(releaseYear); year != "" {
		return fmt.Sprintf("%s (Blu-ray, %s) - %s", title, year, condition)
	}
	return fmt.Sprintf("%s (Blu-ray) - %s", title, condition)
}

// TitleFromFilename derives a presentable movie title from a photo filename,
// e.g. "the_dark_knight.jpg" becomes "The Dark Knight".
func TitleFromFilename(name string) string {
	base := strings.TrimSpace(filepath.Base(name))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return ""
	}
	return titleCaser.String(base)
}
