package tmdb

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match policies for choosing among search results.
const (
	// PolicyFirst always takes the first result in API order.
	PolicyFirst = "first"
	// PolicyExact prefers the first result whose normalized title equals the
	// query and falls back to the first result.
	PolicyExact = "exact"
)

// normalizeTitle folds case, strips diacritics and collapses punctuation
// so that "L'Été Meurtrier" and "l ete meurtrier" compare equal.
func normalizeTitle(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, title)
	if err != nil {
		stripped = title
	}
	folded := cases.Fold().String(stripped)

	var sb strings.Builder
	space := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			sb.WriteRune(r)
			space = false
			continue
		}
		if !space && sb.Len() > 0 {
			sb.WriteRune(' ')
			space = true
		}
	}
	return strings.TrimSpace(sb.String())
}

// selectResult picks one result according to policy. It returns nil only when
// results is empty.
func selectResult(results []SearchResult, query string, policy string) *SearchResult {
	if len(results) == 0 {
		return nil
	}
	if policy != PolicyExact {
		return &results[0]
	}

	want := normalizeTitle(query)
	for i := range results {
		r := &results[i]
		if normalizeTitle(r.DisplayTitle()) == want {
			return r
		}
		if r.OriginalTitle != "" && normalizeTitle(r.OriginalTitle) == want {
			return r
		}
	}
	return &results[0]
}
