package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Source drivers understood by the app.
const (
	SourceHTTP     = "http"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
	SourceS3       = "s3"
)

// Config holds everything Minimarket needs to reach its order source.
type Config struct {
	Source              string `toml:"source" env:"MINIMARKET_SOURCE"`
	APIURL              string `toml:"api_url" env:"MINIMARKET_API_URL"`
	DSN                 string `toml:"dsn" env:"MINIMARKET_DSN"`
	Table               string `toml:"table" env:"MINIMARKET_TABLE"`
	S3                  S3     `toml:"s3"`
	Locale              string `toml:"locale" env:"MINIMARKET_LOCALE"`
	TimeZone            string `toml:"timezone" env:"MINIMARKET_TIMEZONE"`
	FetchTimeoutSeconds int    `toml:"fetch_timeout_seconds" env:"MINIMARKET_FETCH_TIMEOUT_SECONDS"`
	LogFile             string `toml:"log_file" env:"MINIMARKET_LOG_FILE"`
	SessionFile         string `toml:"session_file" env:"MINIMARKET_SESSION_FILE"`
}

// S3 locates an orders export object.
type S3 struct {
	Bucket    string `toml:"bucket" env:"MINIMARKET_S3_BUCKET"`
	Key       string `toml:"key" env:"MINIMARKET_S3_KEY"`
	Region    string `toml:"region" env:"MINIMARKET_S3_REGION"`
	Endpoint  string `toml:"endpoint" env:"MINIMARKET_S3_ENDPOINT"`
	PathStyle bool   `toml:"path_style" env:"MINIMARKET_S3_PATH_STYLE"`
}

const (
	defaultConfigPath   = "~/.config/minimarket/config.toml"
	defaultLogFile      = "~/.local/state/minimarket/minimarket.log"
	defaultSQLitePath   = "~/.local/share/minimarket/orders.db"
	defaultAPIURL       = "http://127.0.0.1:8080"
	defaultTable        = "orders"
	defaultLocale       = "en-US"
	defaultFetchTimeout = 5
	defaultS3Key        = "orders.json"
	defaultS3Region     = "us-east-1"
)

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Source:              SourceHTTP,
		APIURL:              defaultAPIURL,
		Table:               defaultTable,
		Locale:              defaultLocale,
		FetchTimeoutSeconds: defaultFetchTimeout,
		LogFile:             mustExpand(defaultLogFile),
		S3:                  S3{Key: defaultS3Key, Region: defaultS3Region},
	}
}

// Load reads the config file (missing is fine), applies MINIMARKET_*
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	data, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if data != nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return data, nil
}

func (c *Config) normalize() error {
	def := Default()

	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	switch c.Source {
	case "":
		c.Source = def.Source
	case SourceHTTP, SourceSQLite, SourcePostgres, SourceS3:
	case "postgresql", "pgx":
		c.Source = SourcePostgres
	default:
		return fmt.Errorf("unsupported source %q", c.Source)
	}

	c.APIURL = orDefault(c.APIURL, def.APIURL)
	c.Table = orDefault(c.Table, def.Table)
	c.Locale = orDefault(c.Locale, def.Locale)
	c.DSN = strings.TrimSpace(c.DSN)
	c.TimeZone = strings.TrimSpace(c.TimeZone)
	c.S3.Bucket = strings.TrimSpace(c.S3.Bucket)
	c.S3.Endpoint = strings.TrimSpace(c.S3.Endpoint)
	c.S3.Key = orDefault(c.S3.Key, def.S3.Key)
	c.S3.Region = orDefault(c.S3.Region, def.S3.Region)
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = def.FetchTimeoutSeconds
	}

	c.LogFile = mustExpand(orDefault(c.LogFile, defaultLogFile))
	if s := strings.TrimSpace(c.SessionFile); s != "" {
		c.SessionFile = mustExpand(s)
	}

	switch c.Source {
	case SourceSQLite:
		c.DSN = orDefault(c.DSN, defaultSQLitePath)
		if strings.HasPrefix(c.DSN, "~") {
			c.DSN = mustExpand(c.DSN)
		}
	case SourcePostgres:
		if c.DSN == "" {
			return fmt.Errorf("postgres source requires dsn")
		}
	case SourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3 source requires s3.bucket")
		}
	}

	if c.TimeZone != "" {
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			return fmt.Errorf("parse timezone: %w", err)
		}
	}
	return nil
}

// FetchTimeout bounds a single order fetch.
func (c Config) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return defaultFetchTimeout * time.Second
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Location returns the zone dates render in, the local zone when unset.
func (c Config) Location() *time.Location {
	if c.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

func orDefault(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
