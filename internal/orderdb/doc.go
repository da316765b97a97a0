// Package orderdb reads storefront orders from a SQL table, either a local
// SQLite export or the shop's Postgres database.
//
// The table needs the columns id, name, date, status, address, total and
// products. Dates may be timestamps, integer seconds or text; totals may be
// numbers or numeric text; products hold the JSON array or keyed object the
// storefront writes. A row with an unreadable total or products column is
// kept with that field absent.
package orderdb
