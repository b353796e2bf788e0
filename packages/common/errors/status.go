package errs

import (
	"fmt"
	"net/http"
)

// Status is an error which carries the HTTP status it must be answered with.
// Every layer returns it, so the router renders it without guessing.
type Status struct {
	status  int
	message string
}

// Status must be between 100 and 599, anything else is a programming error.
func NewStatusError(message string, status int) *Status {
	if status < 100 || status > 599 {
		panic(fmt.Sprintf("status code out of range [100, 599]: %d", status))
	}
	return &Status{status: status, message: message}
}

func (e *Status) Error() string {
	return e.message
}

func (e *Status) Status() int {
	return e.status
}

// Two status errors are equal if both code and message match,
// so errors.Is works with copies made by WithMessage.
func (e *Status) Is(target error) bool {
	t, ok := target.(*Status)
	if !ok {
		return false
	}
	return t.status == e.status && t.message == e.message
}

// Returns new error with the same status and a different message.
func (e *Status) WithMessage(message string) *Status {
	return NewStatusError(message, e.status)
}

var (
	StatusInternalError      = NewStatusError("Internal Server Error", http.StatusInternalServerError)
	StatusNotFound           = NewStatusError("Requested resource wasn't found", http.StatusNotFound)
	StatusTimeout            = NewStatusError("Operation timeout exceeded", http.StatusRequestTimeout)
	StatusUnauthorized       = NewStatusError("You are not authorized", http.StatusUnauthorized)
	StatusForbidden          = NewStatusError("Not enough permissions to perform this action", http.StatusForbidden)
	StatusServiceUnavailable = NewStatusError("Service temporarily unavailable", http.StatusServiceUnavailable)
)

// Like http.StatusText, but never returns empty string.
func StatusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Unknown Error"
}
