package errs

import (
	"net/http"
)

// Do not create new instances of this error,
// instead use NoValue and InvalidValue sentinel errors.
type Validation struct {
	message string
}

func (e *Validation) Error() string {
	return e.message
}

// Converts Validation error to the "Bad Request" Status error
// which names the field that failed validation.
func (e *Validation) ToStatus(field string, expected string) *Status {
	if e == NoValue {
		return NewStatusError(field+" is missing", http.StatusBadRequest)
	}
	return NewStatusError(
		field+" has invalid format (expected: "+expected+")",
		http.StatusBadRequest,
	)
}

func newValidationError(message string) *Validation {
	return &Validation{message}
}

var NoValue = newValidationError("validation error: no value")
var InvalidValue = newValidationError("validation error: invalid value")
