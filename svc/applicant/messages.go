package applicant

// Validation messages, in check order.
const (
	MsgEmailInvalid = "Email is Invalid"

	MsgFirstNameEmpty    = "First Name is Empty"
	MsgFirstNameTooLong  = "First Name is Too Long"
	MsgFirstNameInvalid  = "First Name Contains Invalid Characters"
	MsgLastNameEmpty     = "Last Name is Empty"
	MsgLastNameTooLong   = "Last Name is Too Long"
	MsgLastNameInvalid   = "Last Name Contains Invalid Characters"
	MsgPhoneEmpty        = "Phone Number is Empty"
	MsgPhoneTooLong      = "Phone Number is Too Long"
	MsgPhoneInvalid      = "Phone Number is Invalid"
	MsgAgeTooLow         = "Age is Too Low"
	MsgAgeTooHigh        = "Age is Too High"
	MsgArrayTooBig       = "Too Big of an Array"
	MsgNoPronouns        = "No Pronouns Selected"
	MsgPronounsInvalid   = "Pronoun Input Not Parsable"
	MsgRaceEmpty         = "No Race Inputted"
	MsgRaceTooLong       = "Race String Too Long"
	MsgRaceInvalid       = "Race Contains Invalid Characters"
	MsgNoSexuality       = "No Sexuality Selected"
	MsgSexualityInvalid  = "Sexuality Input Not Parsable"
	MsgSchoolEmpty       = "No School Inputted"
	MsgSchoolTooLong     = "School Input too Long"
	MsgSchoolInvalid     = "School Contains Invalid Characters"
	MsgCollegeInvalid    = "Invalid College Affiliation"
	MsgEventLocation     = "Not a valid event location"
	MsgMajorEmpty        = "No major inputted"
	MsgMajorTooLong      = "Major Name Too Long"
	MsgMajorInvalid      = "Major Contains Invalid Characters"
	MsgStandingEmpty     = "No standing inputted"
	MsgStandingTooLong   = "Standing Name Too Long"
	MsgStandingInvalid   = "Standing Contains Invalid Characters"
	MsgCountryEmpty      = "No country inputted"
	MsgCountryTooLong    = "Country Name Too Long"
	MsgCountryInvalid    = "Country Contains Invalid Characters"
)
