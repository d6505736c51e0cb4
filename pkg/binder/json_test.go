package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cruzhacks/portal/pkg/binder"
)

type announcementBody struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        announcementBody
		wantErr     error
	}{
		{
			name:        "valid",
			contentType: "application/json; charset=utf-8",
			body:        `{"title":"Welcome","message":"Doors open at 9."}`,
			want:        announcementBody{Title: "Welcome", Message: "Doors open at 9."},
		},
		{
			name:        "unknown field",
			contentType: "application/json",
			body:        `{"title":"Welcome","author":"x"}`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "trailing data",
			contentType: "application/json",
			body:        `{"title":"Welcome"}{"title":"again"}`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "empty body",
			contentType: "application/json",
			body:        ``,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "wrong type",
			contentType: "application/json",
			body:        `{"title":42}`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:    "missing content type",
			body:    `{}`,
			wantErr: binder.ErrMissingContentType,
		},
		{
			name:        "form content type",
			contentType: "application/x-www-form-urlencoded",
			body:        `title=x`,
			wantErr:     binder.ErrUnsupportedMediaType,
		},
		{
			name:        "too large",
			contentType: "application/json",
			body:        `{"title":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}

			var got announcementBody
			err := bind(r, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
