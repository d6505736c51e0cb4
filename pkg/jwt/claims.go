package jwt

import (
	"encoding/json"
	"slices"
	"time"
)

// Audience is the aud claim. Identity providers send either a single
// string or an array; both decode into a slice.
type Audience []string

func (a *Audience) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Audience{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return ErrInvalidClaims
	}
	*a = many
	return nil
}

func (a Audience) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

// Contains reports whether aud is one of the audiences.
func (a Audience) Contains(aud string) bool {
	return slices.Contains(a, aud)
}

// StandardClaims are the registered claims of RFC 7519 section 4.1.
// Temporal claims are Unix seconds; zero means unset.
type StandardClaims struct {
	ID        string   `json:"jti,omitempty"`
	Subject   string   `json:"sub,omitempty"`
	Issuer    string   `json:"iss,omitempty"`
	Audience  Audience `json:"aud,omitempty"`
	ExpiresAt int64    `json:"exp,omitempty"`
	NotBefore int64    `json:"nbf,omitempty"`
	IssuedAt  int64    `json:"iat,omitempty"`
}

// Valid checks the temporal claims against the current time.
func (c StandardClaims) Valid() error {
	now := time.Now().Unix()

	if c.ExpiresAt > 0 && now > c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore > 0 && now < c.NotBefore {
		return ErrInvalidToken
	}
	return nil
}

// Claims are the claims the portal reads: the subject and the RBAC
// permissions granted to it.
type Claims struct {
	StandardClaims
	Permissions []string `json:"permissions,omitempty"`
}

// HasPermission reports whether perm was granted.
func (c Claims) HasPermission(perm string) bool {
	return slices.Contains(c.Permissions, perm)
}
