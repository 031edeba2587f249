package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// gramUnit is the weight marker the scraper left on weight fields ("grams").
const gramUnit = "گرم"

// digitMapper rewrites extended arabic-indic digits (U+06F0..U+06F9, the
// persian digit block) to their ASCII counterparts and leaves every other
// rune alone. ASCII digits already present pass through, which makes the
// mapping idempotent.
var digitMapper = runes.Map(func(r rune) rune {
	if r >= '۰' && r <= '۹' {
		return '0' + (r - '۰')
	}
	return r
})

// NormalizeDigits converts persian digits in s to ASCII digits.
func NormalizeDigits(s string) string {
	out, _, _ := transform.String(digitMapper, s)
	return out
}

var leadingNumber = regexp.MustCompile(`^\d+(\.\d+)?`)

// ExtractLeadingNumber parses the numeric prefix of a weight field like
// "12.5 گرم". The unit marker and surrounding whitespace are stripped and
// digits are normalized first, so native-script weights parse too.
// Returns false when no numeric prefix exists.
func ExtractLeadingNumber(s string) (float64, bool) {
	s = NormalizeDigits(s)
	s = strings.TrimSpace(strings.ReplaceAll(s, gramUnit, ""))

	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseScore coerces a satisfaction score to a float. Non-numeric text
// means the score is absent, never an error.
func ParseScore(s string) (float64, bool) {
	s = strings.TrimSpace(NormalizeDigits(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses a comment date. Unparseable dates come back false; the
// row keeps its text and is only excluded from date-bucketed aggregation.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(NormalizeDigits(s))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NameKey is the plain-text match key used for exact name and brand
// lookups: trimmed and lowercased, computed once at flatten time.
func NameKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
