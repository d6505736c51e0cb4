package binder

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cruzhacks/portal/pkg/file"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// RawForm is an untyped request body. Values holds the first value of each
// form key, or the decoded value of each top-level JSON key. Files holds the
// uploaded files of a multipart body keyed by field name.
type RawForm struct {
	Values map[string]any
	Files  map[string][]*multipart.FileHeader
}

// File returns the first file uploaded under name, or nil.
func (f RawForm) File(name string) *multipart.FileHeader {
	if fhs := f.Files[name]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// Fields creates a binder that fills a *RawForm.
//
// Accepted content types are application/x-www-form-urlencoded,
// multipart/form-data and application/json (an object at the top level;
// numbers are kept as json.Number).
//
// Example:
//
//	h := handler.Wrap(submit, handler.WithBinder[binder.RawForm](binder.Fields()))
func Fields() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		form, ok := v.(*RawForm)
		if !ok || form == nil {
			return fmt.Errorf("%w: expected *binder.RawForm, got %T", ErrInvalidTarget, v)
		}

		media, params, err := contentType(r)
		if err != nil {
			return err
		}

		switch media {
		case mediaForm:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			form.Values = firstValues(r.PostForm)
			form.Files = map[string][]*multipart.FileHeader{}

		case mediaMultipart:
			if !validBoundary(params["boundary"]) {
				return fmt.Errorf("%w: missing or invalid boundary", ErrFailedToParseForm)
			}
			// Request size limits are enforced by server middleware.
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			form.Values = firstValues(r.MultipartForm.Value)
			form.Files = make(map[string][]*multipart.FileHeader, len(r.MultipartForm.File))
			for name, fhs := range r.MultipartForm.File {
				for _, fh := range fhs {
					fh.Filename = file.SanitizeFilename(fh.Filename)
				}
				form.Files[name] = fhs
			}

		case mediaJSON:
			var values map[string]any
			if err := readJSON(r.Body, &values, (*json.Decoder).UseNumber); err != nil {
				return err
			}
			if values == nil {
				return fmt.Errorf("%w: want a JSON object", ErrFailedToParseJSON)
			}
			form.Values = values
			form.Files = map[string][]*multipart.FileHeader{}

		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, media)
		}

		return nil
	}
}

func firstValues(values map[string][]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// validBoundary applies RFC 2046: 1-70 characters from the bchars set,
// not ending in a space.
func validBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 {
		return false
	}
	if boundary[len(boundary)-1] == ' ' {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}
