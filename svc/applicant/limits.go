package applicant

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cruzhacks/portal/pkg/config"
	"github.com/cruzhacks/portal/pkg/validator"
)

// Limits is the table of every bound and enumeration the validator checks
// against. Treat it as immutable once passed to NewValidator.
type Limits struct {
	EmailMax     int `yaml:"email_max"`
	FirstNameMax int `yaml:"first_name_max"`
	LastNameMax  int `yaml:"last_name_max"`
	PhoneMax     int `yaml:"phone_max"`
	AgeMin       int `yaml:"age_min"`
	AgeMax       int `yaml:"age_max"`

	// MaxArraySize bounds pronounCount and sexualityCount.
	MaxArraySize  int `yaml:"max_array_size"`
	ArrayEntryMax int `yaml:"array_entry_max"`

	RaceMax     int `yaml:"race_max"`
	SchoolMax   int `yaml:"school_max"`
	MajorMax    int `yaml:"major_max"`
	StandingMax int `yaml:"standing_max"`
	CountryMax  int `yaml:"country_max"`

	// AffiliatedSchool is compared case-insensitively; applicants from it
	// must pick one of Colleges.
	AffiliatedSchool string   `yaml:"affiliated_school"`
	Colleges         []string `yaml:"colleges"`
	EventLocations   []string `yaml:"event_locations"`
}

// DefaultLimits returns the production limits.
func DefaultLimits() Limits {
	return Limits{
		EmailMax:      100,
		FirstNameMax:  50,
		LastNameMax:   25,
		PhoneMax:      15,
		AgeMin:        13,
		AgeMax:        99,
		MaxArraySize:  4,
		ArrayEntryMax: 50,
		RaceMax:       50,
		SchoolMax:     100,
		MajorMax:      50,
		StandingMax:   50,
		CountryMax:    50,

		AffiliatedSchool: "ucsc",
		Colleges: []string{
			"Cowell",
			"Stevenson",
			"Crown",
			"Merrill",
			"Porter",
			"Kresge",
			"Oakes",
			"Rachel Carson",
			"College Nine",
			"John R. Lewis",
		},
		EventLocations: []string{
			"On-campus at UC Santa Cruz",
			"Off-campus in Santa Cruz",
			"Remote",
		},
	}
}

// LoadLimits reads a YAML file over DefaultLimits and validates the result.
// An empty path returns the defaults.
func LoadLimits(path string) (Limits, error) {
	limits := DefaultLimits()
	if path == "" {
		return limits, nil
	}
	if err := config.LoadYAML(path, &limits); err != nil {
		return Limits{}, err
	}
	if err := limits.Validate(); err != nil {
		return Limits{}, err
	}
	return limits, nil
}

// Validate reports every inconsistent entry of the table.
func (l Limits) Validate() error {
	positive := func(name string, v int) validator.Rule {
		return validator.Custom(name, fmt.Sprintf("%s must be positive", name), func() bool { return v > 0 })
	}
	nonEmpty := func(name string, vs []string) validator.Rule {
		return validator.Custom(name, fmt.Sprintf("%s must not be empty", name), func() bool {
			return len(vs) > 0 && !slices.Contains(vs, "")
		})
	}

	err := validator.Apply(
		positive("email_max", l.EmailMax),
		positive("first_name_max", l.FirstNameMax),
		positive("last_name_max", l.LastNameMax),
		positive("phone_max", l.PhoneMax),
		validator.Custom("age_min", "age_min must not be negative", func() bool { return l.AgeMin >= 0 }),
		validator.Custom("age_max", "age_max must not be below age_min", func() bool { return l.AgeMax >= l.AgeMin }),
		positive("max_array_size", l.MaxArraySize),
		positive("array_entry_max", l.ArrayEntryMax),
		positive("race_max", l.RaceMax),
		positive("school_max", l.SchoolMax),
		positive("major_max", l.MajorMax),
		positive("standing_max", l.StandingMax),
		positive("country_max", l.CountryMax),
		validator.Custom("affiliated_school", "affiliated_school must be set", func() bool { return l.AffiliatedSchool != "" }),
		nonEmpty("colleges", l.Colleges),
		nonEmpty("event_locations", l.EventLocations),
	)
	if err != nil {
		return errors.Join(ErrInvalidLimits, err)
	}
	return nil
}
