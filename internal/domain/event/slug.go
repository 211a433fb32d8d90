package event

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultSlug is the event every installation starts with.
	DefaultSlug = "onlocation"
	// DefaultName is the display name of DefaultSlug.
	DefaultName = "On Location"

	fallbackSlug = "event"
)

var lower = cases.Lower(language.Und)

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Slugify derives a URL and directory safe slug from a display name.
// The name is lowercased, characters other than word characters, whitespace
// and '-' are dropped, runs of whitespace and '-' collapse to a single '-'
// and leading or trailing '-' are trimmed. An empty result becomes "event".
func Slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range lower.String(name) {
		switch {
		case isWordRune(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingDash = true
		}
	}
	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}

// IsValidSlug reports whether s is non-empty and consists only of word
// characters and '-'. Session event slugs become directory names, so this
// is enforced on every slug accepted from a client.
func IsValidSlug(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '-' && !isWordRune(r) {
			return false
		}
	}
	return true
}

// CandidateSlug returns base for attempt 0 and base-N for attempt N.
func CandidateSlug(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}
