package common

import (
	"context"
	"net/http"

	"github.com/bornholm/todo/internal/http/handler/webui/common/component"
)

// Error is an error carrying what the error page needs to render it.
type Error struct {
	reason      string
	userMessage string
	statusCode  int
	links       []component.LinkItem
}

func (e *Error) Error() string {
	return e.reason
}

func (e *Error) UserMessage() string {
	return e.userMessage
}

func (e *Error) StatusCode() int {
	return e.statusCode
}

func (e *Error) Links() []component.LinkItem {
	return e.links
}

var (
	_ UserFacingError = &Error{}
	_ HTTPError       = &Error{}
	_ WithErrorLinks  = &Error{}
)

func NewError(reason string, userMessage string, statusCode int, links ...component.LinkItem) *Error {
	return &Error{
		reason:      reason,
		userMessage: userMessage,
		statusCode:  statusCode,
		links:       links,
	}
}

func NewHTTPError(statusCode int, links ...component.LinkItem) *Error {
	text := http.StatusText(statusCode)
	return NewError(text, text, statusCode, links...)
}

// NewNotFoundError is rendered for missing records and for records
// owned by someone else alike.
func NewNotFoundError(ctx context.Context) *Error {
	return NewError(
		"not found", "Not found", http.StatusNotFound,
		component.LinkItem{URL: component.CurrentTodosURL(ctx), Label: "Back to your todos"},
	)
}

// NewBadFormError is rendered when a submitted form cannot be decoded.
func NewBadFormError(ctx context.Context) *Error {
	return NewError(
		"could not parse form", "Bad data passed in. Try again.", http.StatusBadRequest,
		component.LinkItem{URL: component.HomeURL(ctx), Label: "Back to the home page"},
	)
}
