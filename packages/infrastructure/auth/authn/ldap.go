package authn

import (
	"context"
	"errors"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/common/structs"
	"hobbes/packages/infrastructure/token"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/sony/gobreaker/v2"
)

// Bound LDAP connection. Satisfied by *ldap.Conn.
type binder interface {
	Bind(username string, password string) error
	Unbind() error
}

type dialFunc func(url string) (binder, error)

type LDAPOptions struct {
	// Servers are tried in the given order, first reachable one wins
	URLs   []string
	Domain string

	ConnectTimeout time.Duration
	ReceiveTimeout time.Duration
	// Limits whole authentication, including fallbacks to the next servers.
	// Zero means no limit.
	TimeLimit time.Duration
}

var errInvalidCredentials = errors.New("ldap: invalid credentials")

// Authenticator that binds "username@domain" against LDAP (Active Directory).
// Any user that was able to bind gets read and write scopes.
type LDAP struct {
	opt     LDAPOptions
	dial    dialFunc
	breaker *gobreaker.CircuitBreaker[[]string]
}

func NewLDAP(opt LDAPOptions) *LDAP {
	return newLDAP(opt, dialer(opt.ConnectTimeout, opt.ReceiveTimeout))
}

func newLDAP(opt LDAPOptions, dial dialFunc) *LDAP {
	if len(opt.URLs) == 0 {
		panic("no LDAP URLs specified")
	}

	return &LDAP{
		opt:  opt,
		dial: dial,
		breaker: gobreaker.NewCircuitBreaker[[]string](gobreaker.Settings{
			Name:        "LDAP",
			Interval:    time.Minute,
			Timeout:     time.Second * 30,
			MaxRequests: 5,
			// Wrong password is a valid answer of a healthy server
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, errInvalidCredentials)
			},
		}),
	}
}

func dialer(connectTimeout time.Duration, receiveTimeout time.Duration) dialFunc {
	return func(url string) (binder, error) {
		conn, err := ldap.DialURL(url, ldap.DialWithDialer(&net.Dialer{Timeout: connectTimeout}))
		if err != nil {
			return nil, err
		}
		if receiveTimeout > 0 {
			conn.SetTimeout(receiveTimeout)
		}
		return conn, nil
	}
}

func (l *LDAP) Authenticate(ctx context.Context, username string, password string) ([]string, *Error.Status) {
	// LDAP treats bind with empty password as unauthenticated bind, which always succeeds
	if username == "" || password == "" {
		return nil, InvalidAuthCreditinals
	}

	meta := logger.Meta{"username": username}

	log.Trace("Authenticating via LDAP...", meta)

	scopes, err := l.breaker.Execute(func() ([]string, error) {
		return structs.WithTimeout(ctx, l.opt.TimeLimit, func(ctx context.Context) ([]string, error) {
			return l.bind(ctx, username, password)
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, errInvalidCredentials):
			log.Trace("Authenticating via LDAP: invalid credentials", meta)
			return nil, InvalidAuthCreditinals
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			log.Error("Request to LDAP has been blocked by circuit breaker", err.Error(), meta)
			return nil, Error.StatusServiceUnavailable
		case err == Error.StatusTimeout:
			log.Error("LDAP authentication timeout", err.Error(), meta)
			return nil, Error.StatusTimeout
		default:
			log.Error("LDAP authentication failed", err.Error(), meta)
			return nil, Error.StatusServiceUnavailable
		}
	}

	log.Trace("Authenticating via LDAP: OK", meta)

	return scopes, nil
}

// Tries servers one by one till one of them answers.
// Servers that can't be reached are skipped, any answer (positive or not) is final.
func (l *LDAP) bind(ctx context.Context, username string, password string) ([]string, error) {
	user := username + "@" + l.opt.Domain

	var lastErr error

	for _, url := range l.opt.URLs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		conn, err := l.dial(url)
		if err != nil {
			log.Warning("Failed to connect to LDAP server "+url+": "+err.Error(), nil)
			lastErr = err
			continue
		}

		err = conn.Bind(user, password)
		conn.Unbind()

		if err != nil {
			if ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials) {
				return nil, errInvalidCredentials
			}
			return nil, err
		}

		return []string{token.ScopeRead, token.ScopeWrite}, nil
	}

	return nil, lastErr
}
