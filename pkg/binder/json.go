package binder

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultMaxJSONSize caps JSON bodies at 1 MiB.
const DefaultMaxJSONSize = 1 << 20

// JSON creates a binder that decodes an application/json body into v.
// Unknown fields and trailing data are rejected.
//
//	h := handler.Wrap(create, handler.WithBinder[createRequest](binder.JSON()))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		media, _, err := contentType(r)
		if err != nil {
			return err
		}
		if media != mediaJSON {
			return fmt.Errorf("%w: %s, want %s", ErrUnsupportedMediaType, media, mediaJSON)
		}

		return readJSON(r.Body, v, (*json.Decoder).DisallowUnknownFields)
	}
}
