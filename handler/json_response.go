package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the JSON body returned by every portal endpoint that reports
// an outcome rather than data.
type Envelope struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON encodes v as the response body, 200 OK unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Message responds with an Envelope whose code matches the HTTP status.
func Message(status int, message string, reasons ...string) Response {
	return JSON(Envelope{Code: status, Message: message, Errors: reasons}, WithJSONStatus(status))
}

// Error responds with the envelope of an HTTPError found in err's chain,
// or a 500 Internal Server Error envelope.
func Error(err error) Response {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return Message(httpErr.Code, httpErr.Message)
	}
	return Message(ErrInternalServerError.Code, ErrInternalServerError.Message)
}
