// Package application mounts the applicant endpoints:
//
//	POST /submit    store or replace the caller's application (update:application)
//	GET  /checkApp  report whether the caller has applied (read:application)
//
// Both require a bearer token; the application is keyed by its sub claim.
package application
