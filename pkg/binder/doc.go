// Package binder decodes HTTP request bodies for handler.Wrap.
//
// Two binders are provided:
//
//   - JSON() decodes a strict application/json body into a struct.
//   - Fields() decodes urlencoded, multipart or JSON-object bodies into a
//     RawForm, an untyped field map plus any uploaded files. It is meant for
//     forms whose keys are only known at runtime, such as indexed array
//     entries ("pronouns[0]", "pronouns[1]", ...).
//
// Every failure wraps one of the package errors, so callers can tell a
// structural decode failure apart from anything that happens after binding:
//
//	if errors.Is(err, binder.ErrFailedToParseForm) { ... }
package binder
