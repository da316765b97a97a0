package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/minimarket/internal/config"
	"github.com/five82/minimarket/internal/orderblob"
	"github.com/five82/minimarket/internal/orderdb"
	"github.com/five82/minimarket/internal/orders"
	"github.com/five82/minimarket/internal/prefs"
	"github.com/five82/minimarket/internal/session"
	"github.com/five82/minimarket/internal/storefront"
	"github.com/five82/minimarket/internal/ui"
)

// Options configure the minimarket application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/minimarket/prefs.toml
	SessionPath string // overrides the config's session_file
	WatchEvery  int    // session reload interval in seconds; zero uses default
}

// Run boots the minimarket TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	sessionPath := opts.SessionPath
	if sessionPath == "" {
		sessionPath = cfg.SessionFile
	}
	sessions, err := session.Open(sessionPath)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	fetcher, closeFetcher, err := openFetcher(ctx, cfg, sessions)
	if err != nil {
		return fmt.Errorf("init %s order source: %w", cfg.Source, err)
	}
	defer closeFetcher()

	changes := WatchSession(ctx, sessions, watchInterval(opts.WatchEvery))

	log.Printf("minimarket starting: source=%s locale=%s", cfg.Source, cfg.Locale)
	return ui.Run(ui.Options{
		Context:        ctx,
		Fetcher:        fetcher,
		Sessions:       sessions,
		Formatter:      orders.NewFormatter(cfg.Locale, cfg.Location()),
		FetchTimeout:   cfg.FetchTimeout(),
		Prefs:          userPrefs,
		PrefsPath:      prefsPath,
		SourceLabel:    sourceLabel(cfg),
		SessionChanges: changes,
	})
}

// openFetcher builds the order source named by the config. The returned
// close function is always safe to call.
func openFetcher(ctx context.Context, cfg config.Config, sessions session.Provider) (orders.Fetcher, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.SourceHTTP:
		client, err := storefront.NewClient(cfg.APIURL,
			storefront.WithTimeout(cfg.FetchTimeout()),
			storefront.WithToken(func() string { return sessions.Session().Token }),
		)
		if err != nil {
			return nil, noop, err
		}
		return client, noop, nil

	case config.SourceSQLite, config.SourcePostgres:
		source, err := orderdb.Open(cfg.Source, cfg.DSN, cfg.Table)
		if err != nil {
			return nil, noop, err
		}
		return source, func() {
			if err := source.Close(); err != nil {
				log.Printf("close order database: %v", err)
			}
		}, nil

	case config.SourceS3:
		source, err := orderblob.New(ctx, orderblob.Config{
			Bucket:    cfg.S3.Bucket,
			Key:       cfg.S3.Key,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		})
		if err != nil {
			return nil, noop, err
		}
		return source, noop, nil

	default:
		return nil, noop, fmt.Errorf("unsupported source %q", cfg.Source)
	}
}

// sourceLabel is the short description shown in the orders title.
func sourceLabel(cfg config.Config) string {
	switch cfg.Source {
	case config.SourceHTTP:
		return strings.TrimPrefix(strings.TrimPrefix(cfg.APIURL, "https://"), "http://")
	case config.SourceSQLite:
		return "sqlite " + filepath.Base(strings.TrimPrefix(cfg.DSN, "file:"))
	case config.SourcePostgres:
		return "postgres " + cfg.Table
	case config.SourceS3:
		return "s3://" + cfg.S3.Bucket + "/" + cfg.S3.Key
	default:
		return cfg.Source
	}
}

// openLog routes the standard logger to path; the terminal belongs to the UI.
func openLog(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return tea.LogToFile(path, "minimarket")
}
