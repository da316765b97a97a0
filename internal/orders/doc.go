// Package orders holds the storefront's order records and the pipeline
// that turns a fetched record set into the visible page: search filtering,
// pagination, selection for detail and the display formatting of dates,
// totals, statuses and product lines.
package orders
