package middleware

import (
	Error "hobbes/packages/common/errors"
	"hobbes/packages/infrastructure/token"
	"hobbes/packages/presentation/api/http/request"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const claimsKey = "token_claims"

const realm = "hobbes"

var invalidAuthorizationHeaderFormat = Error.NewStatusError(
	"Authorization header has invalid format. Expected token bearer format. ('Bearer <token>')",
	http.StatusUnauthorized,
)

// See RFC 6750 section 3
func applyWWWAuthenticate(ctx echo.Context, errCode string, description string, scopes []string) {
	value := `Bearer realm="` + realm + `"`

	if errCode != "" {
		value += `, error="` + errCode + `", error_description="` + strings.ReplaceAll(description, `"`, `'`) + `"`
	}
	if len(scopes) != 0 {
		value += `, scope="` + strings.Join(scopes, " ") + `"`
	}

	ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, value)
}

// Allows access only for requests with valid bearer token which grants all of the specified scopes.
func Secure(issuer *token.Issuer, scopes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			reqMeta := request.GetMetadata(ctx)

			log.Trace("Extracting access token from the request...", reqMeta)

			authHeader := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if strings.TrimSpace(authHeader) == "" {
				applyWWWAuthenticate(ctx, "", "", scopes)
				return token.TokenMissing
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" || strings.ContainsRune(tokenStr, ' ') {
				applyWWWAuthenticate(ctx, "invalid_request", invalidAuthorizationHeaderFormat.Error(), scopes)
				return invalidAuthorizationHeaderFormat
			}

			claims, err := issuer.Authorize(tokenStr, scopes...)
			if err != nil {
				errCode := "invalid_token"
				if err == token.TokenInsufficientScope {
					errCode = "insufficient_scope"
				}
				applyWWWAuthenticate(ctx, errCode, err.Error(), scopes)

				log.Trace("Access token rejected: "+err.Error(), reqMeta)

				return err
			}

			ctx.Set(claimsKey, claims)
			reqMeta["user"] = claims.Subject

			log.Trace("Extracting access token from the request: OK", reqMeta)

			return next(ctx)
		}
	}
}

// Returns claims of the access token.
// Returns nil if route wasn't secured via Secure middleware.
func GetClaims(ctx echo.Context) *token.Claims {
	claims, _ := ctx.Get(claimsKey).(*token.Claims)
	return claims
}
