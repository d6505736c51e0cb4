package applicant

import (
	"strings"

	"github.com/cruzhacks/portal/pkg/validator"
)

// Validator checks submissions against a Limits table. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	limits Limits
}

// NewValidator creates a Validator. The limits are copied.
func NewValidator(limits Limits) *Validator {
	limits.Colleges = append([]string(nil), limits.Colleges...)
	limits.EventLocations = append([]string(nil), limits.EventLocations...)
	return &Validator{limits: limits}
}

// Limits returns the table the validator checks against.
func (v *Validator) Limits() Limits {
	return v.limits
}

// Validate extracts and checks raw. It returns the record, or a
// validator.ValidationErrors listing one message per failing field in
// check order. Never both.
func (v *Validator) Validate(raw RawFieldMap) (*Record, error) {
	c := Extract(raw, v.limits.MaxArraySize)

	if err := validator.Apply(v.rules(c)...); err != nil {
		return nil, err
	}

	rec := &Record{
		Email:           c.Email,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Phone:           c.Phone,
		Age:             c.Age,
		Pronouns:        c.Pronouns.Values,
		Sexuality:       c.Sexuality.Values,
		Race:            c.Race,
		School:          c.School,
		EventLocation:   c.EventLocation,
		Major:           c.Major,
		CurrentStanding: c.CurrentStanding,
		Country:         c.Country,
	}
	if v.affiliated(c.School) {
		rec.College, _ = v.college(c.College)
	}
	return rec, nil
}

func (v *Validator) affiliated(school string) bool {
	return strings.EqualFold(school, v.limits.AffiliatedSchool)
}

// college returns the configured spelling of name, ignoring case.
func (v *Validator) college(name string) (string, bool) {
	for _, c := range v.limits.Colleges {
		if strings.EqualFold(name, c) {
			return c, true
		}
	}
	return "", false
}

// rules lists one rule per field. The order is the order of reported messages.
func (v *Validator) rules(c Candidate) []validator.Rule {
	l := v.limits
	return []validator.Rule{
		validator.First(
			validator.RequiredString(FieldEmail, c.Email),
			validator.MaxLenString(FieldEmail, c.Email, l.EmailMax),
			validator.ValidEmail(FieldEmail, c.Email),
			validator.SafeText(FieldEmail, c.Email),
		).WithMessage(MsgEmailInvalid),

		textRule(FieldFirstName, c.FirstName, l.FirstNameMax, MsgFirstNameEmpty, MsgFirstNameTooLong, MsgFirstNameInvalid),
		textRule(FieldLastName, c.LastName, l.LastNameMax, MsgLastNameEmpty, MsgLastNameTooLong, MsgLastNameInvalid),

		validator.First(
			validator.RequiredString(FieldPhone, c.Phone).WithMessage(MsgPhoneEmpty),
			validator.MaxLenString(FieldPhone, c.Phone, l.PhoneMax).WithMessage(MsgPhoneTooLong),
			validator.ValidPhone(FieldPhone, c.Phone).WithMessage(MsgPhoneInvalid),
		),

		validator.First(
			validator.MinNum(FieldAge, c.Age, l.AgeMin).WithMessage(MsgAgeTooLow),
			validator.MaxNum(FieldAge, c.Age, l.AgeMax).WithMessage(MsgAgeTooHigh),
		),

		arrayRule(FieldPronouns, c.Pronouns, l, MsgNoPronouns, MsgPronounsInvalid),
		textRule(FieldRace, c.Race, l.RaceMax, MsgRaceEmpty, MsgRaceTooLong, MsgRaceInvalid),
		arrayRule(FieldSexuality, c.Sexuality, l, MsgNoSexuality, MsgSexualityInvalid),
		textRule(FieldSchool, c.School, l.SchoolMax, MsgSchoolEmpty, MsgSchoolTooLong, MsgSchoolInvalid),

		validator.When(v.affiliated(c.School),
			validator.Custom(FieldCollege, MsgCollegeInvalid, func() bool {
				_, ok := v.college(c.College)
				return ok
			}),
		),
		validator.InListString(FieldEventLocation, c.EventLocation, l.EventLocations).WithMessage(MsgEventLocation),

		textRule(FieldMajor, c.Major, l.MajorMax, MsgMajorEmpty, MsgMajorTooLong, MsgMajorInvalid),
		textRule(FieldCurrentStanding, c.CurrentStanding, l.StandingMax, MsgStandingEmpty, MsgStandingTooLong, MsgStandingInvalid),
		textRule(FieldCountry, c.Country, l.CountryMax, MsgCountryEmpty, MsgCountryTooLong, MsgCountryInvalid),
	}
}

// textRule is the empty, too long, bad characters sequence shared by free-text fields.
func textRule(field, value string, max int, emptyMsg, longMsg, charsetMsg string) validator.Rule {
	return validator.First(
		validator.RequiredString(field, value).WithMessage(emptyMsg),
		validator.MaxLenString(field, value, max).WithMessage(longMsg),
		validator.SafeText(field, value).WithMessage(charsetMsg),
	)
}

func arrayRule(field string, a ArrayField, l Limits, emptyMsg, invalidMsg string) validator.Rule {
	return validator.First(
		validator.Custom(field, emptyMsg, func() bool { return a.Count > 0 }),
		validator.Custom(field, MsgArrayTooBig, func() bool { return a.Count <= l.MaxArraySize }),
		validator.Custom(field, invalidMsg, func() bool { return a.Parsed }),
		validator.Each(field, a.Values, func(entry string) validator.Rule {
			return validator.First(
				validator.MaxLenString(field, entry, l.ArrayEntryMax),
				validator.SafeText(field, entry),
			)
		}).WithMessage(invalidMsg),
	)
}
