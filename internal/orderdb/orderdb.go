package orderdb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver

	"github.com/five82/minimarket/internal/orders"
)

// Compile-time contract assertion.
var _ orders.Fetcher = (*Source)(nil)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultTable = "orders"
)

var (
	sqlOpen   = sql.Open
	openMu    sync.Mutex
	tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
)

// Source fetches orders with a single SELECT over the configured table.
// Expected columns: id, name, date, status, address, total, products, where
// date holds unix seconds or display text and products holds JSON.
type Source struct {
	db    *sql.DB
	query string
}

// Open connects to the database. driver is "sqlite" or "postgres"; an empty
// table name means "orders".
func Open(driver, dsn, table string) (*Source, error) {
	sqlDriver, err := driverName(driver)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%s dsn required", driver)
	}
	if table == "" {
		table = defaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	openMu.Lock()
	db, err := sqlOpen(sqlDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return &Source{
		db:    db,
		query: fmt.Sprintf(`SELECT id, name, date, status, address, total, products FROM %s ORDER BY id`, table),
	}, nil
}

func driverName(driver string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite, "sqlite3":
		return "sqlite", nil
	case DriverPostgres, "postgresql", "pgx":
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// Close releases the connection pool.
func (s *Source) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// FetchOrders runs the order query.
func (s *Source) FetchOrders(ctx context.Context) ([]orders.Record, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("source is nil")
	}
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []orders.Record
	for rows.Next() {
		var (
			rec      orders.Record
			name     sql.NullString
			date     any
			status   sql.NullString
			address  sql.NullString
			total    any
			products sql.NullString
		)
		if err := rows.Scan(&rec.ID, &name, &date, &status, &address, &total, &products); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		rec.Name = name.String
		rec.Status = status.String
		rec.Address = address.String
		rec.Date = dateFromColumn(date)
		rec.Total = totalFromColumn(total)
		if products.Valid && products.String != "" {
			if err := rec.Products.UnmarshalJSON([]byte(products.String)); err != nil {
				log.Printf("order %s: %v", rec.ID, err)
				rec.Products = nil
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return out, nil
}

// totalFromColumn reads numeric columns and numeric text; anything else is
// absent.
func totalFromColumn(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil
	case int64:
		f = float64(t)
	case float64:
		f = t
	case []byte:
		return parseTotal(string(t))
	case string:
		return parseTotal(t)
	default:
		return parseTotal(fmt.Sprint(t))
	}
	return &f
}

func parseTotal(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func dateFromColumn(v any) orders.Date {
	switch d := v.(type) {
	case nil:
		return orders.Date{}
	case int64:
		return orders.Timestamp(d)
	case float64:
		return orders.Timestamp(int64(math.Floor(d)))
	case time.Time:
		return orders.Date{Seconds: d.Unix(), Nanos: int64(d.Nanosecond()), Stamped: true}
	case []byte:
		return orders.RawDate(string(d))
	case string:
		return orders.RawDate(d)
	default:
		return orders.RawDate(fmt.Sprint(d))
	}
}
