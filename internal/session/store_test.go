package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSession(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestOpen_MissingFileIsGuest(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if got := s.Session(); got != Guest() {
		t.Fatalf("Session = %#v, want guest", got)
	}
}

func TestOpen_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Open("")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if !strings.HasPrefix(s.path, home) {
		t.Fatalf("path = %q, want it under HOME %q", s.path, home)
	}
}

func TestOpen_ReadsRoleVariants(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Session
	}{
		{
			name: "top level role",
			body: "authenticated = true\ntoken = \" abc \"\nrole = \"ADMIN\"\n",
			want: Session{Authenticated: true, Role: "ADMIN", Token: "abc"},
		},
		{
			name: "nested user role",
			body: "authenticated = true\n[user]\nemail = \"ana@example.com\"\nrole = \"admin\"\n",
			want: Session{Authenticated: true, Role: "admin", Email: "ana@example.com"},
		},
		{
			name: "top level wins",
			body: "authenticated = true\nrole = \"customer\"\n[user]\nrole = \"admin\"\n",
			want: Session{Authenticated: true, Role: "customer"},
		},
		{
			name: "no role",
			body: "authenticated = true\n",
			want: Session{Authenticated: true},
		},
		{
			name: "numeric role",
			body: "authenticated = true\nrole = 7\n",
			want: Session{Authenticated: true, Role: "invalid:int64"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Open(writeSession(t, tc.body))
			if err != nil {
				t.Fatalf("Open returned error: %v", err)
			}
			if got := s.Session(); got != tc.want {
				t.Fatalf("Session = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestOpen_InvalidTOMLFails(t *testing.T) {
	_, err := Open(writeSession(t, "authenticated = [\n"))
	if err == nil {
		t.Fatalf("Open returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse session") {
		t.Fatalf("Open error = %q, want it to mention parse session", err.Error())
	}
}

func TestStore_SignOutRemovesFile(t *testing.T) {
	path := writeSession(t, "authenticated = true\nrole = \"admin\"\n")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := s.SignOut(); err != nil {
		t.Fatalf("SignOut returned error: %v", err)
	}
	if got := s.Session(); got != Guest() {
		t.Fatalf("Session after SignOut = %#v, want guest", got)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("session file still present: %v", err)
	}
	// Signing out twice is harmless.
	if err := s.SignOut(); err != nil {
		t.Fatalf("second SignOut returned error: %v", err)
	}
}

func TestNewMemory_SignOutNeverTouchesDisk(t *testing.T) {
	s := NewMemory(Session{Authenticated: true, Role: "admin"})
	if err := s.SignOut(); err != nil {
		t.Fatalf("SignOut returned error: %v", err)
	}
	if s.Session().Authenticated {
		t.Fatalf("Session still authenticated after SignOut")
	}
}

func TestStore_ReloadPicksUpSignIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	changed, err := s.Reload()
	if err != nil || changed {
		t.Fatalf("Reload on unchanged file = %v, %v; want false, nil", changed, err)
	}

	if err := os.WriteFile(path, []byte("authenticated = true\nrole = \"admin\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	changed, err = s.Reload()
	if err != nil || !changed {
		t.Fatalf("Reload after sign-in = %v, %v; want true, nil", changed, err)
	}
	if got := s.Session(); !got.Authenticated || got.Role != "admin" {
		t.Fatalf("Session after Reload = %#v, want admin", got)
	}
}

func TestStore_ReloadKeepsSessionOnParseError(t *testing.T) {
	path := writeSession(t, "authenticated = true\n")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := os.WriteFile(path, []byte("authenticated = [\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := s.Reload(); err == nil {
		t.Fatalf("Reload returned nil error for a broken file")
	}
	if !s.Session().Authenticated {
		t.Fatalf("a failed Reload replaced the session")
	}
}
