package blog

import (
	"regexp"
	"strings"
)

var (
	nonSlug = regexp.MustCompile(`[^a-z0-9\s-]+`)
	dashRun = regexp.MustCompile(`[\s-]+`)

	turkish = strings.NewReplacer(
		"ç", "c",
		"ğ", "g",
		"ı", "i",
		"ö", "o",
		"ş", "s",
		"ü", "u",
	)
)

// MakeSlug derives a URL-safe slug from free text. Turkish characters
// are transliterated to their ASCII equivalents before stripping.
// Example: "Boşanma Davası Süreci" -> "bosanma-davasi-sureci"
func MakeSlug(text string) string {
	slug := strings.ToLower(text)
	slug = turkish.Replace(slug)
	slug = nonSlug.ReplaceAllString(slug, "")
	slug = dashRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
