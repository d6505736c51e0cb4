// Package announcements mounts the announcement feed:
//
//	GET    /      latest announcements, newest first (X-API-Key)
//	POST   /      publish one (bearer token, update:announcements)
//	DELETE /{id}  remove one (bearer token, delete:announcements)
//
// Responses use the feed's envelope {"error", "status", "message"}; the
// list adds "count" and "announcements".
package announcements
