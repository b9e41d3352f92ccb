package tenant

import (
	"regexp"
	"strings"
)

var (
	subdomainRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	stripRe     = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaceRe     = regexp.MustCompile(`\s+`)
	hyphenRe    = regexp.MustCompile(`-+`)
)

// ValidateSubdomain reports whether s is a usable subdomain: lowercase
// alphanumeric tokens separated by single hyphens, 3 to 50 characters.
func ValidateSubdomain(s string) bool {
	return len(s) >= 3 && len(s) <= 50 && subdomainRe.MatchString(s)
}

// GenerateSubdomain derives a subdomain suggestion from a shop name,
// e.g. "Ram's Cafe" -> "rams-cafe".
func GenerateSubdomain(name string) string {
	s := strings.ToLower(name)
	s = stripRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = spaceRe.ReplaceAllString(s, "-")
	s = hyphenRe.ReplaceAllString(s, "-")

	return s
}
