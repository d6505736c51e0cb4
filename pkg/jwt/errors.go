package jwt

import "errors"

var ErrMissingSigningKey = errors.New("jwt: missing signing key")

// Token errors. The middleware answers all of these with 401.
var (
	ErrInvalidToken            = errors.New("jwt: invalid token")
	ErrInvalidSignature        = errors.New("jwt: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrInvalidClaims           = errors.New("jwt: invalid claims")
	ErrMissingClaims           = errors.New("jwt: missing claims")
	ErrInvalidIssuer           = errors.New("jwt: invalid issuer")
	ErrInvalidAudience         = errors.New("jwt: invalid audience")
)

// ErrForbidden means the token is valid but lacks a permission (403).
var ErrForbidden = errors.New("jwt: missing permission")
