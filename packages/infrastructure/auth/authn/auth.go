package authn

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

var log = logger.NewSource("AUTHN", logger.Default)

var InvalidAuthCreditinals = Error.NewStatusError(
	"Incorrect username or password",
	http.StatusUnauthorized,
)

// Verifies user credentials and returns scopes granted to the user.
type Authenticator interface {
	Authenticate(ctx context.Context, username string, password string) ([]string, *Error.Status)
}

// IMPORTANT: This is expensive operation! (Takes about 200-220 ms)
//
// Comapres hashed password with it's possible plaintext equivalent.
// Returns nil on success, otherwise returns InvalidAuthCreditinals error.
func CompareHashAndPassword(hash string, password string) *Error.Status {
	e := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if e != nil {
		return InvalidAuthCreditinals
	}

	return nil
}
