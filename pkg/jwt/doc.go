// Package jwt verifies HS256 bearer tokens and enforces permission claims.
//
//	svc, err := jwt.NewFromConfig(cfg) // JWT_SIGNING_KEY, JWT_ISSUER, JWT_AUDIENCE
//	r.Use(jwt.Middleware(svc))
//	r.With(jwt.RequirePermission("update:application")).Post("/submit", h)
//
// Inside a handler the subject is available with jwt.Subject(r.Context()).
// A token that fails verification gets a 401; a verified token without
// the permission gets a 403.
package jwt
