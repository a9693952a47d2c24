// Package apperr defines the error taxonomy the API exposes to clients.
// Every error that reaches a handler is either an *Error carrying its HTTP
// status and client-facing message, or an unclassified failure that the HTTP
// layer reports as a generic 500.
package apperr

import (
	"net/http"
)

// Client-facing messages. These strings are part of the external contract
// and must not be reworded.
const (
	MsgArticleNotFound  = "Article Not found"
	MsgUsernameNotFound = "Username Not Found"
	MsgTopicNotFound    = "Topic Not Found"
	MsgCommentNotFound  = "Comment Not Found"
	MsgBadRequest       = "Bad Request"
	MsgInvalidRequest   = "Invalid Request"
	MsgRouteNotFound    = "Route not found"
	MsgServerError      = "Server Error!"
)

// Error is a domain error with a fixed HTTP status and message.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// BadRequest reports malformed input: bad id format, bad query values, or a
// payload that fails the shape check.
func BadRequest() *Error {
	return &Error{Status: http.StatusBadRequest, Msg: MsgBadRequest}
}

// Forbidden reports a payload carrying keys beyond the accepted schema.
func Forbidden() *Error {
	return &Error{Status: http.StatusForbidden, Msg: MsgInvalidRequest}
}

// NotFound reports a missing entity with its resource-specific message.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}
