package tv

import (
	"fmt"
	"strings"
	"unicode"
)

var sortArticles = []string{"the ", "a ", "an "}

// CleanSeriesTitle reduces a title to its lowercase alphanumeric core.
// The result is stable across punctuation and spacing variants and is
// used as the deduplication key and in the title slug.
func CleanSeriesTitle(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	lower = strings.TrimPrefix(lower, "the ")

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
		if r == '&' {
			b.WriteString("and")
		}
	}
	return b.String()
}

// NormalizeSortTitle lowercases a title and drops a leading article so
// media centers sort "The Wire" under W.
func NormalizeSortTitle(title string) string {
	sort := strings.ToLower(strings.TrimSpace(title))
	for _, article := range sortArticles {
		if strings.HasPrefix(sort, article) {
			return strings.TrimSpace(sort[len(article):])
		}
	}
	return sort
}

// TitleSlug builds the deterministic "{tmdbID}-{cleanTitle}" slug.
func TitleSlug(tmdbID int, title string) string {
	return fmt.Sprintf("%d-%s", tmdbID, CleanSeriesTitle(title))
}
