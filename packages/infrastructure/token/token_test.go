package token

import (
	Error "hobbes/packages/common/errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func sign(t *testing.T, method jwt.SigningMethod, key []byte, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestIssuerRoundTrip(t *testing.T) {
	issuer := NewIssuer(testKey, time.Hour, "hobbes")

	signed, err := issuer.New("alice", []string{ScopeRead, ScopeWrite})
	require.Nil(t, err)
	assert.Equal(t, time.Hour.Milliseconds(), signed.TTL())

	claims, err := issuer.Parse(signed.String())
	require.Nil(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "hobbes", claims.Issuer)
	assert.Equal(t, []string{ScopeRead, ScopeWrite}, claims.Scope)
	assert.True(t, claims.HasScopes(ScopeRead))
	assert.True(t, claims.HasScopes())
}

func TestIssuerRejects(t *testing.T) {
	issuer := NewIssuer(testKey, time.Hour, "hobbes")
	now := time.Now()

	valid := func() Claims {
		return Claims{
			Scope: []string{ScopeRead},
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "hobbes",
				Subject:   "alice",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))

	foreign := valid()
	foreign.Issuer = "someone-else"

	noSubject := valid()
	noSubject.Subject = ""

	noExpiry := valid()
	noExpiry.ExpiresAt = nil

	cases := []struct {
		name  string
		token string
		want  *Error.Status
	}{
		{"missing", "", TokenMissing},
		{"malformed", "not.a.token", TokenMalformed},
		{"expired", sign(t, jwt.SigningMethodHS256, testKey, expired), TokenExpired},
		{"wrong key", sign(t, jwt.SigningMethodHS256, []byte("another-key-another-key"), valid()), TokenInvalidSignature},
		{"wrong method", sign(t, jwt.SigningMethodHS512, testKey, valid()), TokenInvalidSignature},
		{"wrong issuer", sign(t, jwt.SigningMethodHS256, testKey, foreign), TokenInvalidIssuer},
		{"no subject", sign(t, jwt.SigningMethodHS256, testKey, noSubject), TokenMissingRequiredClaims},
		{"no expiry", sign(t, jwt.SigningMethodHS256, testKey, noExpiry), TokenMissingRequiredClaims},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := issuer.Parse(tc.token)
			assert.Nil(t, claims)
			require.NotNil(t, err)
			assert.Same(t, tc.want, err)
			assert.True(t, IsTokenError(err))
			assert.Equal(t, 401, err.Status())
		})
	}
}

func TestIssuerAuthorize(t *testing.T) {
	issuer := NewIssuer(testKey, time.Hour, "hobbes")

	reader, err := issuer.New("bob", []string{ScopeRead})
	require.Nil(t, err)

	_, err = issuer.Authorize(reader.String(), ScopeRead)
	assert.Nil(t, err)

	_, err = issuer.Authorize(reader.String(), ScopeRead, ScopeWrite)
	assert.Same(t, TokenInsufficientScope, err)
}

func TestNewIssuerPanics(t *testing.T) {
	assert.Panics(t, func() { NewIssuer(nil, time.Hour, "hobbes") })
	assert.Panics(t, func() { NewIssuer(testKey, 0, "hobbes") })
}
