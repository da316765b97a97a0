package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func writePrefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p != Default() {
		t.Fatalf("prefs = %#v, want %#v", p, Default())
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "minimarket")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("theme = \"Slate\"\npage_size = 10\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" || p.PageSize != 10 {
		t.Fatalf("prefs = %#v, want Slate/10", p)
	}
}

func TestLoad_Normalizes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Prefs
	}{
		{"empty theme", "theme = \"\"\n", Default()},
		{"missing page size", "theme = \"Nord\"\n", Prefs{Theme: "Nord", PageSize: defaultPageSize}},
		{"negative page size", "page_size = -4\n", Default()},
		{"huge page size", "page_size = 1000\n", Prefs{Theme: defaultTheme, PageSize: MaxPageSize}},
		{"invalid toml", "not valid toml {{{\n", Default()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Load(writePrefs(t, tc.body))
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if p != tc.want {
				t.Fatalf("prefs = %#v, want %#v", p, tc.want)
			}
		})
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate", PageSize: 8}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != "Slate" || loaded.PageSize != 8 {
		t.Fatalf("prefs = %#v, want Slate/8", loaded)
	}
}

func TestSave_NormalizesBeforeWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, _ := Load(path)
	if loaded != Default() {
		t.Fatalf("prefs = %#v, want defaults", loaded)
	}
}
