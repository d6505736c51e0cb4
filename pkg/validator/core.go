package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidationFailed matches any ValidationErrors with errors.Is.
var ErrValidationFailed = errors.New("validation failed")

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError is one failed rule. Message is shown to users; Code names
// the rule that failed and is stable across message overrides.
type ValidationError struct {
	Field   string
	Message string
	Code    string
}

// ValidationErrors represents an ordered collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field failed at least once.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Messages returns every message in evaluation order.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

// Fields lists the failed fields once each, in order of first failure.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError

	// cause reports the failure of a composite rule; nil for plain rules.
	cause func() ValidationError
}

// Failure returns the error to report after Check has returned false.
func (r Rule) Failure() ValidationError {
	if r.cause != nil {
		return r.cause()
	}
	return r.Error
}

// WithMessage returns a copy of the rule that reports msg instead of its default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	if inner := r.cause; inner != nil {
		r.cause = func() ValidationError {
			err := inner()
			err.Message = msg
			return err
		}
	}
	return r
}

// First combines rules for a single field. The combined rule fails when any
// of them fails and reports only the first failure, in argument order.
func First(rules ...Rule) Rule {
	var failed ValidationError
	combined := Rule{
		Check: func() bool {
			for _, rule := range rules {
				if !rule.Check() {
					failed = rule.Failure()
					return false
				}
			}
			return true
		},
		cause: func() ValidationError { return failed },
	}
	if len(rules) > 0 {
		combined.Error = rules[0].Error
	}
	return combined
}

// When applies rule only if cond holds; otherwise it always passes.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{
		Check: func() bool { return true },
		Error: rule.Error,
	}
}

// Custom builds a rule from an arbitrary check and message.
func Custom(field, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{Field: field, Message: message, Code: CodeCustom},
	}
}

// Apply executes every rule in order and returns the failures as ValidationErrors.
// It returns nil when all rules pass.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Failure())
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
