package slug

import (
	"regexp"
	"strings"
)

var reSlug = regexp.MustCompile(`^[a-z0-9_]{2,40}$`)

// IsSlug returns true if s matches ^[a-z0-9_]{2,40}$
func IsSlug(s string) bool {
	return reSlug.MatchString(s)
}

// Normalize trims and lowercases s so that "  Token " and "token" name the same book.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
