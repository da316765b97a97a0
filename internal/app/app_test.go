package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/minimarket/internal/config"
	"github.com/five82/minimarket/internal/orderblob"
	"github.com/five82/minimarket/internal/orderdb"
	"github.com/five82/minimarket/internal/session"
	"github.com/five82/minimarket/internal/storefront"
)

func TestOpenFetcher_PicksSourceDriver(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	sessions := session.NewMemory(session.Session{Authenticated: true, Token: "tok"})

	cases := []struct {
		name  string
		cfg   config.Config
		check func(t *testing.T, fetcher any)
	}{
		{
			name: "http",
			cfg:  config.Config{Source: config.SourceHTTP, APIURL: "http://127.0.0.1:9"},
			check: func(t *testing.T, fetcher any) {
				if _, ok := fetcher.(*storefront.Client); !ok {
					t.Fatalf("fetcher = %T, want *storefront.Client", fetcher)
				}
			},
		},
		{
			name: "sqlite",
			cfg: config.Config{
				Source: config.SourceSQLite,
				DSN:    filepath.Join(t.TempDir(), "orders.db"),
				Table:  "orders",
			},
			check: func(t *testing.T, fetcher any) {
				if _, ok := fetcher.(*orderdb.Source); !ok {
					t.Fatalf("fetcher = %T, want *orderdb.Source", fetcher)
				}
			},
		},
		{
			name: "s3",
			cfg: config.Config{
				Source: config.SourceS3,
				S3:     config.S3{Bucket: "shop", Key: "orders.json", Region: "us-east-1", Endpoint: "https://mock.s3.local", PathStyle: true},
			},
			check: func(t *testing.T, fetcher any) {
				if _, ok := fetcher.(*orderblob.Source); !ok {
					t.Fatalf("fetcher = %T, want *orderblob.Source", fetcher)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher, closeFn, err := openFetcher(context.Background(), tc.cfg, sessions)
			if err != nil {
				t.Fatalf("openFetcher returned error: %v", err)
			}
			defer closeFn()
			tc.check(t, fetcher)
		})
	}
}

func TestOpenFetcher_UnsupportedSource(t *testing.T) {
	_, closeFn, err := openFetcher(context.Background(), config.Config{Source: "ftp"}, session.NewMemory(session.Guest()))
	closeFn()
	if err == nil || !strings.Contains(err.Error(), "unsupported source") {
		t.Fatalf("err = %v, want unsupported source", err)
	}
}

func TestSourceLabel(t *testing.T) {
	cases := []struct {
		cfg  config.Config
		want string
	}{
		{config.Config{Source: config.SourceHTTP, APIURL: "https://shop.example.com/api"}, "shop.example.com/api"},
		{config.Config{Source: config.SourceSQLite, DSN: "file:/var/lib/shop/orders.db"}, "sqlite orders.db"},
		{config.Config{Source: config.SourcePostgres, Table: "public.orders"}, "postgres public.orders"},
		{config.Config{Source: config.SourceS3, S3: config.S3{Bucket: "shop", Key: "exports/orders.json"}}, "s3://shop/exports/orders.json"},
	}
	for _, tc := range cases {
		if got := sourceLabel(tc.cfg); got != tc.want {
			t.Fatalf("sourceLabel(%s) = %q, want %q", tc.cfg.Source, got, tc.want)
		}
	}
}

func TestOpenLog_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "minimarket.log")
	closer, err := openLog(path)
	if err != nil {
		t.Fatalf("openLog returned error: %v", err)
	}
	_ = closer.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
