package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Config is loaded from the environment with pkg/config. Issuer and
// Audience are only checked when set.
type Config struct {
	SigningKey string `env:"JWT_SIGNING_KEY,required"`
	Issuer     string `env:"JWT_ISSUER"`
	Audience   string `env:"JWT_AUDIENCE"`
}

// Service signs and verifies HS256 tokens.
type Service struct {
	signingKey []byte
	issuer     string
	audience   string
}

// New creates a Service. The key should be at least 32 bytes.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromConfig creates a Service that also checks iss and aud.
func NewFromConfig(cfg Config) (*Service, error) {
	s, err := New([]byte(cfg.SigningKey))
	if err != nil {
		return nil, err
	}
	s.issuer = cfg.Issuer
	s.audience = cfg.Audience
	return s, nil
}

// Generate signs any JSON-serializable claims. The portal only parses
// tokens in production; Generate serves tests and local tooling.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	header, err := json.Marshal(Header{Type: HeaderType, Algorithm: HeaderAlgorithm})
	if err != nil {
		return "", fmt.Errorf("jwt: encode header: %w", err)
	}
	body, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("jwt: encode claims: %w", err)
	}

	signed := encodeSegment(header) + "." + encodeSegment(body)
	return signed + "." + encodeSegment(s.mac(signed)), nil
}

// Parse verifies the signature of token, then its header, then decodes the
// claims into claims. Claims with a Valid method are checked last.
func (s *Service) Parse(token string, claims any) error {
	signed, sig, ok := cutLast(token)
	if !ok || strings.Count(signed, ".") != 1 {
		return ErrInvalidToken
	}

	got, err := decodeSegment(sig)
	if err != nil {
		return ErrInvalidToken
	}
	if !hmac.Equal(got, s.mac(signed)) {
		return ErrInvalidSignature
	}

	rawHeader, rawClaims, _ := strings.Cut(signed, ".")

	var header Header
	if err := decodeJSONSegment(rawHeader, &header); err != nil {
		return err
	}
	if header.Algorithm != HeaderAlgorithm {
		return ErrUnexpectedSigningMethod
	}

	if err := decodeJSONSegment(rawClaims, claims); err != nil {
		return err
	}

	if v, ok := claims.(interface{ Valid() error }); ok {
		return v.Valid()
	}
	return nil
}

// ParseClaims verifies token and checks the configured issuer and audience.
func (s *Service) ParseClaims(token string) (*Claims, error) {
	var claims Claims
	if err := s.Parse(token, &claims); err != nil {
		return nil, err
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, ErrInvalidIssuer
	}
	if s.audience != "" && !claims.Audience.Contains(s.audience) {
		return nil, ErrInvalidAudience
	}
	return &claims, nil
}

func (s *Service) mac(signed string) []byte {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(signed))
	return h.Sum(nil)
}

func cutLast(token string) (before, after string, ok bool) {
	i := strings.LastIndexByte(token, '.')
	if i < 0 {
		return "", "", false
	}
	return token[:i], token[i+1:], true
}

// Segments are base64url without padding (RFC 7515).
func encodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeSegment(seg string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(seg)
}

func decodeJSONSegment(seg string, v any) error {
	raw, err := decodeSegment(seg)
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Join(ErrInvalidClaims, err)
	}
	return nil
}
