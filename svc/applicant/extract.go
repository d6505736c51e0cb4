package applicant

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ArrayField is a logical array rebuilt from its count and indexed keys.
type ArrayField struct {
	// Count is the declared count; missing, non-numeric and negative counts are 0.
	Count int
	// Values holds the trimmed entries when Parsed is true.
	Values []string
	// Parsed is false when Count exceeds the limit or an entry is missing or empty.
	Parsed bool
}

// Candidate is a submission reshaped for validation. It carries no
// guarantees beyond trimmed strings.
type Candidate struct {
	Email           string
	FirstName       string
	LastName        string
	Phone           string
	Age             int
	Pronouns        ArrayField
	Sexuality       ArrayField
	Race            string
	School          string
	College         string
	EventLocation   string
	Major           string
	CurrentStanding string
	Country         string
}

// Extract reshapes raw into a Candidate. It never fails: structural
// problems are left in the Candidate for the validator to report.
func Extract(raw RawFieldMap, maxArraySize int) Candidate {
	return Candidate{
		Email:           scalar(raw[FieldEmail]),
		FirstName:       scalar(raw[FieldFirstName]),
		LastName:        scalar(raw[FieldLastName]),
		Phone:           scalar(raw[FieldPhone]),
		Age:             integer(raw[FieldAge]),
		Pronouns:        indexed(raw, FieldPronouns, FieldPronounCount, maxArraySize),
		Sexuality:       indexed(raw, FieldSexuality, FieldSexualityCount, maxArraySize),
		Race:            scalar(raw[FieldRace]),
		School:          scalar(raw[FieldSchool]),
		College:         scalar(raw[FieldCollege]),
		EventLocation:   scalar(raw[FieldEventLocation]),
		Major:           scalar(raw[FieldMajor]),
		CurrentStanding: scalar(raw[FieldCurrentStanding]),
		Country:         scalar(raw[FieldCountry]),
	}
}

// indexed rebuilds name[0..count-1] using the count stored under countKey.
// No indexed key is read when the count is above max.
func indexed(raw RawFieldMap, name, countKey string, max int) ArrayField {
	count := integer(raw[countKey])
	if count < 0 {
		count = 0
	}

	field := ArrayField{Count: count}
	if count > max {
		return field
	}

	values := make([]string, 0, count)
	for i := range count {
		v := scalar(raw[fmt.Sprintf("%s[%d]", name, i)])
		if v == "" {
			return field
		}
		values = append(values, v)
	}

	field.Values = values
	field.Parsed = true
	return field
}

// scalar renders a form value as a trimmed string. Numbers are written in
// decimal; any other type becomes "".
func scalar(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// integer parses a form value as a whole number, or returns 0.
func integer(v any) int {
	s := scalar(v)
	// Out-of-range values saturate instead of falling back to 0.
	if n, err := strconv.Atoi(s); err == nil || errors.Is(err, strconv.ErrRange) {
		return n
	}
	// Whole-valued decimals such as "24.0" from JSON clients.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		return int(f)
	}
	return 0
}
