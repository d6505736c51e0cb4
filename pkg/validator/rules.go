package validator

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cruzhacks/portal/pkg/pattern"
)

// Rule codes reported in ValidationError.Code.
const (
	CodeRequired  = "required"
	CodeMaxLength = "max_length"
	CodeMin       = "min"
	CodeMax       = "max"
	CodeOneOf     = "one_of"
	CodeEach      = "each"
	CodeCharset   = "charset"
	CodeEmail     = "email"
	CodePhone     = "phone"
	CodeCustom    = "custom"
)

func failure(field, code, message string) ValidationError {
	return ValidationError{Field: field, Message: message, Code: code}
}

// RequiredString fails on an empty or whitespace-only value.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: failure(field, CodeRequired, "field is required"),
	}
}

// MaxLenString fails when value has more than max runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: failure(field, CodeMaxLength, fmt.Sprintf("must be at most %d characters long", max)),
	}
}

func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: failure(field, CodeMin, fmt.Sprintf("must be at least %v", min)),
	}
}

func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: failure(field, CodeMax, fmt.Sprintf("must be at most %v", max)),
	}
}

// InListString fails unless value is exactly one of allowed.
func InListString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: failure(field, CodeOneOf, "must be one of: "+strings.Join(allowed, ", ")),
	}
}

// Each validates every element with the rule built by build and reports
// the first failing element's error.
func Each[T any](field string, values []T, build func(T) Rule) Rule {
	rules := make([]Rule, 0, len(values))
	for _, v := range values {
		rules = append(rules, build(v))
	}
	each := First(rules...)
	each.Error = failure(field, CodeEach, "contains an invalid item")
	return each
}

// Charset fails when reject(value) is true. reject is one of the pattern
// predicates.
func Charset(field, value string, reject func(string) bool) Rule {
	return Rule{
		Check: func() bool { return !reject(value) },
		Error: failure(field, CodeCharset, "contains invalid characters"),
	}
}

// SafeText accepts letters, digits, spaces and common punctuation.
func SafeText(field, value string) Rule {
	return Charset(field, value, pattern.HasNonAlphanumericPunctuation)
}

// SafeMultilineText is SafeText that also accepts line breaks.
func SafeMultilineText(field, value string) Rule {
	return Charset(field, value, pattern.HasNonAlphanumericPunctuationNewline)
}

// Alphanumeric accepts ASCII letters and digits only.
func Alphanumeric(field, value string) Rule {
	return Charset(field, value, pattern.HasNonAlphanumeric)
}

// ValidEmail accepts a bare addr-spec with a dotted domain. Display-name
// forms such as "Jo <jo@example.com>" are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return isEmail(value) },
		Error: failure(field, CodeEmail, "must be a valid email address"),
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// ValidPhone accepts numbers such as "925-111-1111", "(925) 111-1111",
// "+1 925.111.1111" or "+44 20 7946 0958".
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool { return !pattern.IsInvalidPhone(value) },
		Error: failure(field, CodePhone, "must be a valid phone number"),
	}
}
