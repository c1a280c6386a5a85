package session

import (
	"errors"

	"go.uber.org/zap"
)

// ErrBadCredentials is returned on a credential mismatch; the role stays
// unset.
var ErrBadCredentials = errors.New("invalid username or password")

// Role identifies which of the two fixed identities is signed in.
type Role string

const (
	RoleNone    Role = ""
	RoleCashier Role = "cashier"
	RoleAdmin   Role = "admin"
)

// Credentials is one fixed identity: exact-match username and password
// bound to a role.
type Credentials struct {
	Username string
	Password string
	Role     Role
}

// Session holds the in-memory authentication state for the single active
// operator. There is no token and no expiry; the role lives only for the
// session.
type Session struct {
	accounts []Credentials
	role     Role
	logger   *zap.Logger
}

// New creates a logged-out session over the given fixed identities.
func New(accounts []Credentials, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{accounts: accounts, logger: logger}
}

// Login matches the credentials against the fixed identities and sets the
// session role on success.
func (s *Session) Login(username, password string) (Role, error) {
	for _, a := range s.accounts {
		if a.Username == username && a.Password == password {
			s.role = a.Role
			s.logger.Info("user logged in", zap.String("role", string(a.Role)))
			return a.Role, nil
		}
	}
	s.logger.Warn("failed login attempt", zap.String("username", username))
	return RoleNone, ErrBadCredentials
}

// Logout clears the session role.
func (s *Session) Logout() {
	s.role = RoleNone
}

// Role returns the currently signed-in role, RoleNone when logged out.
func (s *Session) Role() Role {
	return s.role
}
