package domain

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. Deliberately
// loose; the unique constraint and mail delivery are the real checks.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Sanitize trims whitespace and strips angle brackets from user-supplied
// free text before it is stored.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return -1
		}
		return r
	}, s)
}

// SanitizePtr applies Sanitize through an optional string.
func SanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Sanitize(*s)
	return &clean
}
