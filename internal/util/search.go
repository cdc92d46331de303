package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchQuery represents the parsed components of a search string.
type SearchQuery struct {
	Status []string
	Type   []string
	Text   []string
}

var (
	statusRegex = regexp.MustCompile(`status:(\w+)`)
	typeRegex   = regexp.MustCompile(`type:(\w+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Status = extract(statusRegex)
	sq.Type = extract(typeRegex)
	for _, word := range strings.Fields(query) {
		sq.Text = append(sq.Text, Fold(word))
	}
	return sq
}

// Fold lowercases s and strips diacritics so "Café" matches "cafe".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	// Casers carry state and must not be shared across goroutines.
	return cases.Fold().String(out)
}

// MatchesAll reports whether every folded term occurs in text.
func MatchesAll(text string, terms []string) bool {
	folded := Fold(text)
	for _, term := range terms {
		if !strings.Contains(folded, term) {
			return false
		}
	}
	return true
}
