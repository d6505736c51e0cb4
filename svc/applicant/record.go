package applicant

import "time"

// RawFieldMap is a decoded form body: field name to string or number.
type RawFieldMap = map[string]any

// Form field names. Array fields are sent as <name>Count plus <name>[i].
const (
	FieldEmail           = "email"
	FieldFirstName       = "fname"
	FieldLastName        = "lname"
	FieldPhone           = "phone"
	FieldAge             = "age"
	FieldPronouns        = "pronouns"
	FieldPronounCount    = "pronounCount"
	FieldSexuality       = "sexuality"
	FieldSexualityCount  = "sexualityCount"
	FieldRace            = "race"
	FieldSchool          = "school"
	FieldCollege         = "college"
	FieldEventLocation   = "eventLocation"
	FieldMajor           = "major"
	FieldCurrentStanding = "currentStanding"
	FieldCountry         = "country"
)

// Record is a validated application.
type Record struct {
	Email           string   `json:"email" bson:"email"`
	FirstName       string   `json:"fname" bson:"fname"`
	LastName        string   `json:"lname" bson:"lname"`
	Phone           string   `json:"phone" bson:"phone"`
	Age             int      `json:"age" bson:"age"`
	Pronouns        []string `json:"pronouns" bson:"pronouns"`
	Sexuality       []string `json:"sexuality" bson:"sexuality"`
	Race            string   `json:"race" bson:"race"`
	School          string   `json:"school" bson:"school"`
	College         string   `json:"college,omitempty" bson:"college,omitempty"`
	EventLocation   string   `json:"eventLocation" bson:"eventLocation"`
	Major           string   `json:"major" bson:"major"`
	CurrentStanding string   `json:"currentStanding" bson:"currentStanding"`
	Country         string   `json:"country" bson:"country"`
}

// Status of a stored application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Application is what a Repository stores for one subject.
type Application struct {
	Subject   string    `json:"subject" bson:"_id"`
	Record    Record    `json:"record" bson:"record"`
	Status    Status    `json:"status" bson:"status"`
	ResumeURL string    `json:"resumeUrl,omitempty" bson:"resumeUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
