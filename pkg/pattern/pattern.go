package pattern

import (
	"regexp"
	"strings"
	"unicode"
)

// Punctuation lists the non-alphanumeric characters accepted in free text fields.
const Punctuation = `+-(){}.,/\_@#$%^&*:;"' `

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^A-Za-z0-9]`)

	nonAlphanumericPunctuationRegex = regexp.MustCompile(`[^A-Za-z0-9+\-(){}.,/\\_@#$%^&*:;"' ]`)

	nonAlphanumericPunctuationNewlineRegex = regexp.MustCompile(`[^A-Za-z0-9+\-(){}.,/\\_@#$%^&*:;"' \r\n]`)

	// Optional "+", then digit groups split by at most one space, dot or dash.
	// Any group may be wrapped in parentheses.
	phoneRegex = regexp.MustCompile(`^\+?(\(\d+\)|\d+)([ .-]?(\(\d+\)|\d+))*$`)
)

// HasNonAlphanumeric reports whether s contains anything other than ASCII letters and digits.
func HasNonAlphanumeric(s string) bool {
	return nonAlphanumericRegex.MatchString(s)
}

// HasNonAlphanumericPunctuation reports whether s contains anything other than
// ASCII letters, digits, spaces and the characters in Punctuation.
func HasNonAlphanumericPunctuation(s string) bool {
	return nonAlphanumericPunctuationRegex.MatchString(s)
}

// HasNonAlphanumericPunctuationNewline is HasNonAlphanumericPunctuation that
// also accepts line breaks. Used for multi-line message bodies.
func HasNonAlphanumericPunctuationNewline(s string) bool {
	return nonAlphanumericPunctuationNewlineRegex.MatchString(s)
}

// Digit count bounds for phone numbers. A leading "+" carries a country
// code, so those numbers may be as long as E.164 allows.
const (
	phoneMinDigits         = 8
	phoneMaxNationalDigits = 12
	phoneMaxDigits         = 15
)

// IsInvalidPhone reports whether s is not a usable phone number.
func IsInvalidPhone(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	if strings.IndexFunc(s, unicode.IsLetter) >= 0 {
		return true
	}
	if !phoneRegex.MatchString(s) {
		return true
	}

	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	limit := phoneMaxNationalDigits
	if strings.HasPrefix(s, "+") {
		limit = phoneMaxDigits
	}
	return digits < phoneMinDigits || digits > limit
}
