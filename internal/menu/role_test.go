package menu

import (
	"testing"

	"github.com/five82/minimarket/internal/session"
)

func TestResolve_UnauthenticatedIsAlwaysGuest(t *testing.T) {
	for _, role := range []string{"", "admin", "ADMIN", "customer", "root", "invalid:int64"} {
		got := Resolve(session.Session{Authenticated: false, Role: role})
		if got != RoleGuest {
			t.Fatalf("Resolve(unauthenticated, %q) = %v, want guest", role, got)
		}
	}
}

func TestResolve_AdminAnyCasing(t *testing.T) {
	for _, role := range []string{"admin", "Admin", "ADMIN", "aDmIn", " admin "} {
		got := Resolve(session.Session{Authenticated: true, Role: role})
		if got != RoleAdmin {
			t.Fatalf("Resolve(%q) = %v, want admin", role, got)
		}
	}
}

func TestResolve_OtherRolesFallBackToCustomer(t *testing.T) {
	for _, role := range []string{"", "customer", "user", "administrator", "admins", "invalid:int64"} {
		got := Resolve(session.Session{Authenticated: true, Role: role})
		if got != RoleCustomer {
			t.Fatalf("Resolve(%q) = %v, want customer", role, got)
		}
	}
}

func TestRoleLabels(t *testing.T) {
	cases := map[Role]string{
		RoleGuest:    "Guest",
		RoleCustomer: "Customer",
		RoleAdmin:    "Administrator",
		Role(42):     "Guest",
	}
	for role, want := range cases {
		if got := role.Label(); got != want {
			t.Fatalf("%v.Label() = %q, want %q", role, got, want)
		}
	}
}
