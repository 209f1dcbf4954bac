package utility

import (
	"regexp"
	"strings"
)

var (
	slugSpaces    = regexp.MustCompile(`[\s\p{Zs}]+`)
	slugForbidden = regexp.MustCompile(`[^\x{0621}-\x{064A}\x{0660}-\x{0669}a-z0-9-]`)
	slugHyphens   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL slug from a title. Arabic letters and digits, a-z, 0-9 and
// hyphens survive; everything else is dropped. It does not check uniqueness.
func GenerateSlug(title string) string {
	s := strings.ToLower(title)
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugForbidden.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsSlug reports whether s is non-empty and already in GenerateSlug's canonical form
func IsSlug(s string) bool {
	return s != "" && GenerateSlug(s) == s
}
