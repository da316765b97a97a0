package session

import (
	"fmt"
	"strings"
)

// Session is the authentication state supplied to the menu on every update.
type Session struct {
	Authenticated bool
	Role          string
	Token         string
	Email         string
}

// Guest returns the signed-out session.
func Guest() Session {
	return Session{}
}

// Provider yields the current session and tears it down on sign-out.
type Provider interface {
	Session() Session
	SignOut() error
}

// fileSession mirrors session.toml. Role is decoded loosely because older
// writers stored it as a number or a table.
type fileSession struct {
	Authenticated bool   `toml:"authenticated"`
	Token         string `toml:"token"`
	Role          any    `toml:"role"`
	User          struct {
		Email string `toml:"email"`
		Role  any    `toml:"role"`
	} `toml:"user"`
}

func (f fileSession) session() Session {
	role := roleString(f.Role)
	if role == "" {
		role = roleString(f.User.Role)
	}
	return Session{
		Authenticated: f.Authenticated,
		Role:          role,
		Token:         strings.TrimSpace(f.Token),
		Email:         strings.TrimSpace(f.User.Email),
	}
}

// roleString keeps string roles as-is. Anything else becomes an opaque
// non-empty marker so it classifies as a plain customer.
func roleString(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(r)
	default:
		return fmt.Sprintf("invalid:%T", r)
	}
}
