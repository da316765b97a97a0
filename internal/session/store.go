package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultSessionPath = "~/.config/minimarket/session.toml"

// Ensure Store implements Provider at compile time.
var _ Provider = (*Store)(nil)

// Store coordinates concurrent reads of the session with reloads and
// sign-out. The UI reads it on every update while the watcher reloads it
// from disk.
type Store struct {
	mu      sync.RWMutex
	current Session
	path    string
}

// Open reads the session file at path (empty uses the default location).
// A missing file yields a guest session.
func Open(path string) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	current, err := readFile(resolved)
	if err != nil {
		return nil, err
	}
	return &Store{path: resolved, current: current}, nil
}

// Reload re-reads the backing file, picking up a sign-in written by the
// storefront tooling. It reports whether the session changed. Memory stores
// never change.
func (s *Store) Reload() (bool, error) {
	if s.path == "" {
		return false, nil
	}
	next, err := readFile(s.path)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if next == s.current {
		return false, nil
	}
	s.current = next
	return true, nil
}

func readFile(path string) (Session, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Guest(), nil
		}
		return Session{}, fmt.Errorf("open session: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var raw fileSession
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Session{}, fmt.Errorf("parse session: %w", err)
	}
	return raw.session(), nil
}

// NewMemory returns a Store that is never persisted.
func NewMemory(initial Session) *Store {
	return &Store{current: initial}
}

// Session returns a copy of the current session.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SignOut resets to a guest session. The in-memory state is cleared even when
// the file cannot be rewritten.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Guest()
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSessionPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
