package utils

import (
	"regexp"
	"strings"
)

const slugSuffixLen = 10

var (
	slugStripRe   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpacesRe  = regexp.MustCompile(`\s+`)
	slugHyphensRe = regexp.MustCompile(`-+`)
)

// MakeSlug builds the URL path segment for a listing from its title and
// identifier. The title part is lossy (lower-cased, punctuation stripped,
// whitespace collapsed to hyphens); the trailing 10 characters of the
// identifier make the slug resolvable back to the record.
func MakeSlug(title, id string) string {
	s := strings.ToLower(title)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpacesRe.ReplaceAllString(s, "-")
	s = slugHyphensRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	return s + "-" + shortID(id)
}

// ShortIDFromSlug returns the identifier suffix carried by a slug. It is a
// prefix-matching hint only: callers must re-encode candidate records and
// compare full slugs to confirm a match.
func ShortIDFromSlug(slug string) string {
	return shortID(slug)
}

func shortID(s string) string {
	if len(s) <= slugSuffixLen {
		return s
	}
	return s[len(s)-slugSuffixLen:]
}
