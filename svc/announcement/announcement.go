package announcement

import (
	"errors"
	"time"

	"github.com/cruzhacks/portal/pkg/validator"
)

const (
	TitleMax   = 25
	MessageMax = 100

	// LatestLimit is how many announcements Latest returns.
	LatestLimit = 4

	MsgInvalidTitle   = "Invalid title"
	MsgInvalidMessage = "Invalid Message"
)

// ErrInvalidID is returned by Delete for ids that are not UUIDs.
var ErrInvalidID = errors.New("invalid announcement id")

// Announcement is a published notice.
type Announcement struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"date" bson:"date"`
}

// Validate checks a new announcement. The title is checked first.
func Validate(title, message string) error {
	return validator.Apply(
		validator.First(
			validator.RequiredString("title", title),
			validator.MaxLenString("title", title, TitleMax),
			validator.Alphanumeric("title", title),
		).WithMessage(MsgInvalidTitle),
		validator.First(
			// Untrimmed: a message of only line breaks is a valid notice.
			validator.Custom("message", "must not be empty", func() bool { return message != "" }),
			validator.MaxLenString("message", message, MessageMax),
			validator.SafeMultilineText("message", message),
		).WithMessage(MsgInvalidMessage),
	)
}
