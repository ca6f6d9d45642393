// Package validate holds the request-level field checks shared by the
// API handlers: required fields, string sanitization and the closed
// value sets used by the contact form.
package validate

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var legalAreas = map[string]bool{
	"project_financing":    true,
	"banking_finance":      true,
	"corporate_law":        true,
	"maritime_law":         true,
	"mergers_acquisitions": true,
	"energy_law":           true,
	"competition_law":      true,
	"capital_markets":      true,
	"dispute_resolution":   true,
	"labor_law":            true,
	"compliance":           true,
	"real_estate":          true,
	"restructuring":        true,
	"criminal_law":         true,
	"family_law":           true,
	"administrative_law":   true,
	"immigration_law":      true,
	"other":                true,
}

var urgencies = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
	"urgent": true,
}

var languages = map[string]bool{
	"tr": true,
	"en": true,
	"de": true,
	"ru": true,
}

// Required returns every name in fields whose value is missing or empty,
// in the order given. An empty string counts as absent.
func Required(values map[string]string, fields []string) []string {
	var missing []string
	for _, field := range fields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// SanitizeString trims surrounding whitespace and HTML-escapes the
// result, so markup survives as visible text rather than being
// stripped. The strict policy then removes anything the escape left
// parseable. Applied to plain-text fields only; HTML-bearing fields
// are stored raw.
func SanitizeString(input string) string {
	return strict.Sanitize(html.EscapeString(strings.TrimSpace(input)))
}

func Email(email string) bool {
	return emailPattern.MatchString(email)
}

func LegalArea(area string) bool {
	return legalAreas[area]
}

func Urgency(urgency string) bool {
	return urgencies[urgency]
}

func Language(code string) bool {
	return languages[code]
}
