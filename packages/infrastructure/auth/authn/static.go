package authn

import (
	"context"
	"hobbes/packages/common/config"
	Error "hobbes/packages/common/errors"
	"slices"
)

type staticUser struct {
	passwordHash string
	scopes       []string
}

// Authenticator over fixed set of users with bcrypt-hashed passwords.
// Used in testing mode instead of LDAP.
type Static struct {
	users map[string]staticUser
}

func NewStatic(users []config.TestingUser) *Static {
	s := &Static{users: make(map[string]staticUser, len(users))}

	for _, u := range users {
		s.users[u.Username] = staticUser{
			passwordHash: u.PasswordHash,
			scopes:       slices.Clone(u.Scopes),
		}
	}

	return s
}

func (s *Static) Authenticate(ctx context.Context, username string, password string) ([]string, *Error.Status) {
	if err := ctx.Err(); err != nil {
		return nil, Error.StatusTimeout
	}

	user, ok := s.users[username]
	if !ok || password == "" {
		log.Trace("Rejected unknown user or empty password: "+username, nil)
		return nil, InvalidAuthCreditinals
	}

	if err := CompareHashAndPassword(user.passwordHash, password); err != nil {
		return nil, err
	}

	return slices.Clone(user.scopes), nil
}
