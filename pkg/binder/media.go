package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

const (
	mediaJSON      = "application/json"
	mediaForm      = "application/x-www-form-urlencoded"
	mediaMultipart = "multipart/form-data"
)

// contentType parses the request's Content-Type header.
func contentType(r *http.Request) (string, map[string]string, error) {
	raw := r.Header.Get("Content-Type")
	if raw == "" {
		return "", nil, ErrMissingContentType
	}
	media, params, err := mime.ParseMediaType(raw)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, raw)
	}
	return media, params, nil
}

// readJSON decodes exactly one JSON value from at most DefaultMaxJSONSize
// bytes of body.
func readJSON(body io.Reader, v any, configure func(*json.Decoder)) error {
	data, err := io.ReadAll(io.LimitReader(body, DefaultMaxJSONSize+1))
	if err != nil {
		return errors.Join(ErrFailedToParseJSON, err)
	}
	if len(data) > DefaultMaxJSONSize {
		return fmt.Errorf("%w: body exceeds %d bytes", ErrFailedToParseJSON, DefaultMaxJSONSize)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if configure != nil {
		configure(dec)
	}
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return errors.Join(ErrFailedToParseJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after value", ErrFailedToParseJSON)
	}
	return nil
}
