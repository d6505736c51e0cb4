// Package handler turns typed handler functions into http.HandlerFunc.
//
// A HandlerFunc receives a Context and a request value filled by the
// configured binders, and returns a Response:
//
//	func checkApp(ctx handler.Context, _ struct{}) handler.Response {
//		st, err := svc.Status(ctx, jwt.Subject(ctx))
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(st)
//	}
//
//	r.Get("/checkApp", handler.Wrap(checkApp))
//
// Binding and rendering failures go to the ErrorHandler; NewErrorHandler
// logs them and writes the portal's JSON error envelope:
//
//	{"code": 500, "message": "Server Error"}
//
// Message builds the same envelope for successful or rejected outcomes,
// with an optional list of reasons:
//
//	handler.Message(http.StatusBadRequest, "Form Validation Failed", reasons...)
package handler
