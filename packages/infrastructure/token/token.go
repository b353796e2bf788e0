package token

import (
	"fmt"
	"hobbes/packages/common/logger"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	Error "hobbes/packages/common/errors"
)

var tokenLogger = logger.NewSource("TOKEN", logger.Default)

const (
	ScopeRead  = "read"
	ScopeWrite = "write"
)

type SignedToken struct {
	value string
	ttl   int64
}

func (t *SignedToken) String() string {
	return t.value
}

// Token TTL in milliseconds
func (t *SignedToken) TTL() int64 {
	return t.ttl
}

type Claims struct {
	Scope []string `json:"scope"`

	jwt.RegisteredClaims
}

// Reports whether claims grant every one of the required scopes.
func (c *Claims) HasScopes(required ...string) bool {
	for _, scope := range required {
		if !slices.Contains(c.Scope, scope) {
			return false
		}
	}
	return true
}

// Creates and parses HS256 access tokens.
type Issuer struct {
	key    []byte
	ttl    time.Duration
	issuer string
	parser *jwt.Parser
}

const leeway = 5 * time.Second

func NewIssuer(key []byte, ttl time.Duration, issuer string) *Issuer {
	if len(key) == 0 {
		panic("token signing key is empty")
	}
	if ttl <= 0 {
		panic(fmt.Sprintf("token TTL must be positive, but got - %s", ttl))
	}

	return &Issuer{
		key:    key,
		ttl:    ttl,
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(leeway),
		),
	}
}

func (i *Issuer) New(subject string, scopes []string) (*SignedToken, *Error.Status) {
	if subject == "" {
		tokenLogger.Error("Failed to create signed token", "subject is empty", nil)
		return nil, Error.StatusInternalError
	}

	now := time.Now().UTC()

	claims := Claims{
		Scope: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		tokenLogger.Error("Failed to sign token", err.Error(), nil)
		return nil, Error.StatusInternalError
	}

	return &SignedToken{tokenStr, i.ttl.Milliseconds()}, nil
}

func (i *Issuer) keyFunc(*jwt.Token) (any, error) {
	return i.key, nil
}

// Parses and validates given token.
func (i *Issuer) Parse(tokenStr string) (*Claims, *Error.Status) {
	if tokenStr == "" {
		return nil, TokenMissing
	}

	claims := &Claims{}

	if _, err := i.parser.ParseWithClaims(tokenStr, claims, i.keyFunc); err != nil {
		tokenLogger.Trace("Token rejected: "+err.Error(), nil)
		return nil, convertError(err)
	}

	if claims.Subject == "" {
		return nil, TokenMissingRequiredClaims
	}

	return claims, nil
}

// Same as Parse, but also checks that token grants all required scopes.
func (i *Issuer) Authorize(tokenStr string, required ...string) (*Claims, *Error.Status) {
	claims, err := i.Parse(tokenStr)
	if err != nil {
		return nil, err
	}

	if !claims.HasScopes(required...) {
		tokenLogger.Trace(
			"Insufficient scope for "+claims.Subject+": required "+strings.Join(required, " "),
			nil,
		)
		return nil, TokenInsufficientScope
	}

	return claims, nil
}
