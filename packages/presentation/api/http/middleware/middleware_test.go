package middleware

import (
	Error "hobbes/packages/common/errors"
	"hobbes/packages/infrastructure/token"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	t.Run("sets standard security headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		err := SecurityHeaders(ok)(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		headers := rec.Header()
		assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
		assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
		assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
		assert.NotEmpty(t, headers.Get("Permissions-Policy"))
		assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	})

	t.Run("relaxes CSP for docs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs/index.html", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		assert.NoError(t, SecurityHeaders(ok)(ctx))

		csp := rec.Header().Get("Content-Security-Policy")
		assert.Contains(t, csp, "script-src 'self' 'unsafe-inline'")
		assert.Contains(t, csp, "style-src 'self' 'unsafe-inline'")
	})
}

func TestCheckOriginMiddleware(t *testing.T) {
	handler := CheckOrigin([]string{"http://allowed.example"})(ok)

	cases := []struct {
		name   string
		method string
		origin string
		code   int
	}{
		{"GET is never checked", http.MethodGet, "http://evil.example", http.StatusOK},
		{"HEAD is never checked", http.MethodHead, "http://evil.example", http.StatusOK},
		{"POST without origin", http.MethodPost, "", http.StatusOK},
		{"POST from allowed origin", http.MethodPost, "http://allowed.example", http.StatusOK},
		{"POST from other origin", http.MethodPost, "http://evil.example", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/", nil)
			if tc.origin != "" {
				req.Header.Set(echo.HeaderOrigin, tc.origin)
			}
			rec := httptest.NewRecorder()

			err := handler(echo.New().NewContext(req, rec))

			if tc.code == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			var status *Error.Status
			require.ErrorAs(t, err, &status)
			assert.Equal(t, tc.code, status.Status())
			assert.ErrorIs(t, err, Error.StatusForbidden.WithMessage("Invalid origin"))
		})
	}
}

func TestNoCacheMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	assert.NoError(t, NoCache(ok)(ctx))

	headers := rec.Header()
	assert.Equal(t, "no-store, max-age=0", headers.Get("Cache-Control"))
	assert.Equal(t, "no-cache", headers.Get("Pragma"))
	assert.Equal(t, "0", headers.Get("Expires"))
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.GET("/", ok, RateLimiter(1, 2))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// other clients have their own limit
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecure(t *testing.T) {
	issuer := token.NewIssuer([]byte("0123456789abcdef0123456789abcdef"), time.Hour, "hobbes")

	reader, err := issuer.New("alice", []string{token.ScopeRead})
	require.Nil(t, err)

	cases := []struct {
		name      string
		header    string
		scopes    []string
		wantErr   error
		challenge string
	}{
		{"missing header", "", nil, token.TokenMissing, `Bearer realm="hobbes"`},
		{"not bearer", "Basic abc", nil, invalidAuthorizationHeaderFormat, `error="invalid_request"`},
		{"garbage token", "Bearer abc", nil, token.TokenMalformed, `error="invalid_token"`},
		{"insufficient scope", "Bearer " + reader.String(), []string{token.ScopeWrite}, token.TokenInsufficientScope, `error="insufficient_scope"`},
		{"valid token", "Bearer " + reader.String(), []string{token.ScopeRead}, nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			ctx := echo.New().NewContext(req, rec)

			var claims *token.Claims
			err := Secure(issuer, tc.scopes...)(func(ctx echo.Context) error {
				claims = GetClaims(ctx)
				return ok(ctx)
			})(ctx)

			if tc.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "alice", claims.Subject)
				return
			}

			assert.Equal(t, tc.wantErr, err)
			assert.Contains(t, rec.Header().Get(echo.HeaderWWWAuthenticate), tc.challenge)
			assert.Nil(t, claims)
		})
	}
}
