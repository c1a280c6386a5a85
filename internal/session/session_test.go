package session

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

func testAccounts() []Credentials {
	return []Credentials{
		{Username: "Caja", Password: "123456", Role: RoleCashier},
		{Username: "Administrador", Password: "Administrador", Role: RoleAdmin},
	}
}

func TestLoginMatchesExactCredentials(t *testing.T) {
	s := New(testAccounts(), zaptest.NewLogger(t))

	role, err := s.Login("Caja", "123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if role != RoleCashier || s.Role() != RoleCashier {
		t.Errorf("expected cashier role, got %q", role)
	}
}

func TestLoginMismatchLeavesRoleUnset(t *testing.T) {
	s := New(testAccounts(), zaptest.NewLogger(t))

	cases := [][2]string{
		{"Caja", "wrong"},
		{"caja", "123456"}, // username is case sensitive
		{"nobody", "123456"},
	}
	for _, tc := range cases {
		if _, err := s.Login(tc[0], tc[1]); !errors.Is(err, ErrBadCredentials) {
			t.Errorf("Login(%q, %q): expected ErrBadCredentials, got %v", tc[0], tc[1], err)
		}
		if s.Role() != RoleNone {
			t.Errorf("failed login set role %q", s.Role())
		}
	}
}

func TestLogoutClearsRole(t *testing.T) {
	s := New(testAccounts(), zaptest.NewLogger(t))
	s.Login("Administrador", "Administrador")

	s.Logout()

	if s.Role() != RoleNone {
		t.Errorf("expected no role after logout, got %q", s.Role())
	}
}
