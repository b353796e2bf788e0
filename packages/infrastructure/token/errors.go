package token

import (
	"errors"
	Error "hobbes/packages/common/errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// According to RFC 7235 (https://datatracker.ietf.org/doc/html/rfc7235#section-3.1)
// 401 response status code indicates that the request lacks VALID authentication credentials,
// no matter if token was invalid, missing or expired.

var TokenMissing = Error.NewStatusError(
	"Authorization token is missing",
	http.StatusUnauthorized,
)

var TokenMalformed = Error.NewStatusError(
	"Token is malformed or has invalid format",
	http.StatusUnauthorized,
)

var TokenExpired = Error.NewStatusError(
	"Token expired",
	http.StatusUnauthorized,
)

var TokenInvalidSignature = Error.NewStatusError(
	"Invalid Token Signature",
	http.StatusUnauthorized,
)

var TokenMissingRequiredClaims = Error.NewStatusError(
	"At least one of required token claims is missing",
	http.StatusUnauthorized,
)

var TokenInvalidIssuer = Error.NewStatusError(
	"Token was issued by unknown issuer",
	http.StatusUnauthorized,
)

var InvalidToken = Error.NewStatusError(
	"Could not validate credentials",
	http.StatusUnauthorized,
)

var TokenInsufficientScope = Error.NewStatusError(
	"Not enough permissions",
	http.StatusUnauthorized,
)

func IsTokenError(err *Error.Status) bool {
	return err == TokenMissing ||
		err == TokenMalformed ||
		err == TokenExpired ||
		err == TokenInvalidSignature ||
		err == TokenMissingRequiredClaims ||
		err == TokenInvalidIssuer ||
		err == InvalidToken ||
		err == TokenInsufficientScope
}

// Maps errors returned by jwt parser to the token status errors.
func convertError(err error) *Error.Status {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return TokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return TokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrSignatureInvalid):
		return TokenInvalidSignature
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return TokenMissingRequiredClaims
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return TokenInvalidIssuer
	default:
		return InvalidToken
	}
}
