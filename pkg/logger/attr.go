package logger

import "log/slog"

// Attribute keys shared by every log line the portal writes.
const (
	KeyError     = "error"
	KeySubject   = "subject"
	KeyRequestID = "request_id"
	KeyReasons   = "reasons"
	KeyComponent = "component"
	KeyDriver    = "driver"
)

// Error returns an empty Attr for a nil err, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// Subject is the JWT sub of the applicant or organizer.
func Subject(sub string) slog.Attr {
	if sub == "" {
		return slog.Attr{}
	}
	return slog.String(KeySubject, sub)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String(KeyRequestID, id)
}

// Reasons holds the messages of a rejected submission.
func Reasons(msgs []string) slog.Attr {
	return slog.Any(KeyReasons, msgs)
}

func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Driver names the storage backend, e.g. "postgres" or "mongo".
func Driver(name string) slog.Attr {
	return slog.String(KeyDriver, name)
}
