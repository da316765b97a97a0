package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != SourceHTTP || cfg.APIURL != defaultAPIURL {
		t.Fatalf("source = %q api = %q, want http defaults", cfg.Source, cfg.APIURL)
	}
	if cfg.Locale != defaultLocale || cfg.Table != defaultTable {
		t.Fatalf("locale = %q table = %q", cfg.Locale, cfg.Table)
	}
	if cfg.FetchTimeout() != 5*time.Second {
		t.Fatalf("FetchTimeout = %v, want 5s", cfg.FetchTimeout())
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.SessionFile != "" {
		t.Fatalf("SessionFile = %q, want empty", cfg.SessionFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
source = " SQLite "
dsn = "  ~/shop/orders.db  "
table = " shop_orders "
locale = " es-AR "
timezone = "America/Argentina/Buenos_Aires"
fetch_timeout_seconds = 12
session_file = "~/.shop/session.toml"

[s3]
bucket = "unused"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != SourceSQLite {
		t.Fatalf("Source = %q, want sqlite", cfg.Source)
	}
	if cfg.DSN != filepath.Join(home, "shop/orders.db") {
		t.Fatalf("DSN = %q, want it expanded under HOME", cfg.DSN)
	}
	if cfg.Table != "shop_orders" || cfg.Locale != "es-AR" {
		t.Fatalf("table = %q locale = %q", cfg.Table, cfg.Locale)
	}
	if cfg.FetchTimeout() != 12*time.Second {
		t.Fatalf("FetchTimeout = %v, want 12s", cfg.FetchTimeout())
	}
	if cfg.Location().String() != "America/Argentina/Buenos_Aires" {
		t.Fatalf("Location = %v", cfg.Location())
	}
	if !strings.HasPrefix(cfg.SessionFile, home) {
		t.Fatalf("SessionFile = %q, want it under HOME %q", cfg.SessionFile, home)
	}
	if cfg.S3.Key != defaultS3Key || cfg.S3.Region != defaultS3Region {
		t.Fatalf("s3 defaults lost: %#v", cfg.S3)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MINIMARKET_SOURCE", "s3")
	t.Setenv("MINIMARKET_S3_BUCKET", "exports")
	t.Setenv("MINIMARKET_S3_KEY", "daily/orders.json")
	t.Setenv("MINIMARKET_S3_PATH_STYLE", "true")
	t.Setenv("MINIMARKET_LOCALE", "de-DE")

	path := writeConfig(t, `
source = "http"
api_url = "https://shop.example.com"
locale = "en-GB"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != SourceS3 || cfg.S3.Bucket != "exports" || cfg.S3.Key != "daily/orders.json" || !cfg.S3.PathStyle {
		t.Fatalf("env overrides not applied: %#v", cfg)
	}
	if cfg.Locale != "de-DE" {
		t.Fatalf("Locale = %q, want env value", cfg.Locale)
	}
	if cfg.APIURL != "https://shop.example.com" {
		t.Fatalf("APIURL = %q, want file value kept", cfg.APIURL)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
source = "   "
api_url = ""
locale = " "
fetch_timeout_seconds = -3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != SourceHTTP || cfg.APIURL != defaultAPIURL || cfg.Locale != defaultLocale {
		t.Fatalf("defaults not restored: %#v", cfg)
	}
	if cfg.FetchTimeoutSeconds != defaultFetchTimeout {
		t.Fatalf("FetchTimeoutSeconds = %d, want default", cfg.FetchTimeoutSeconds)
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"invalid toml", `source = [`, "parse config"},
		{"unknown source", `source = "ftp"`, "unsupported source"},
		{"postgres without dsn", `source = "postgresql"`, "requires dsn"},
		{"s3 without bucket", `source = "s3"`, "requires s3.bucket"},
		{"bad timezone", `timezone = "Mars/Olympus"`, "parse timezone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestLoad_InvalidEnvFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MINIMARKET_FETCH_TIMEOUT_SECONDS", "soon")
	_, err := Load(writeConfig(t, ``))
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("Load error = %v, want parse env", err)
	}
}

func TestLoad_PostgresAlias(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(writeConfig(t, `
source = "pgx"
dsn = "postgres://localhost/shop"
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != SourcePostgres || cfg.DSN != "postgres://localhost/shop" {
		t.Fatalf("source = %q dsn = %q", cfg.Source, cfg.DSN)
	}
}

func TestLoad_SQLiteDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg, err := Load(writeConfig(t, `source = "sqlite"`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DSN != filepath.Join(home, ".local/share/minimarket/orders.db") {
		t.Fatalf("DSN = %q, want default under HOME", cfg.DSN)
	}
}

func TestLocation_DefaultsToLocal(t *testing.T) {
	var cfg Config
	if cfg.Location() != time.Local {
		t.Fatalf("Location = %v, want Local", cfg.Location())
	}
	cfg.TimeZone = "Not/AZone"
	if cfg.Location() != time.Local {
		t.Fatalf("invalid zone should fall back to Local")
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
