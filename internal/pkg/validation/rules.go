package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// CGPA bounds
	CGPAMin = 0.0
	CGPAMax = 10.0
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the email matches the configured pattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// IsValidCGPA reports whether a CGPA value is in the accepted 0-10 range
func IsValidCGPA(cgpa float64) bool {
	return cgpa >= CGPAMin && cgpa <= CGPAMax
}

// NormalizeStringSet trims entries and drops empty strings while keeping
// the caller's ordering. List fields (skills, certifications, achievements)
// are stored as given; growth detection happens downstream.
func NormalizeStringSet(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
