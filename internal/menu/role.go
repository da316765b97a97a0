package menu

import (
	"strings"

	"github.com/five82/minimarket/internal/session"
)

// Role is the normalized classification of a session.
type Role int

const (
	RoleGuest Role = iota
	RoleCustomer
	RoleAdmin
)

// Resolve classifies a session. Unauthenticated sessions are always guests;
// only an exact (case-insensitive) "admin" role grants admin access.
func Resolve(s session.Session) Role {
	if !s.Authenticated {
		return RoleGuest
	}
	if strings.EqualFold(strings.TrimSpace(s.Role), "admin") {
		return RoleAdmin
	}
	return RoleCustomer
}

// Label is the drawer subtitle for the role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleCustomer:
		return "Customer"
	default:
		return "Guest"
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleCustomer:
		return "customer"
	default:
		return "guest"
	}
}
