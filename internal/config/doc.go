// Package config loads Minimarket's configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/minimarket/config.toml (default)
//  3. If the config file doesn't exist, start from defaults
//  4. Apply MINIMARKET_* environment variables over the file values
//  5. Blank fields fall back to defaults; paths starting with ~ are expanded
//
// # Order Sources
//
// The source field picks where orders come from:
//
//   - http: the storefront API at api_url (GET /api/orders)
//   - sqlite: a local export database at dsn (default ~/.local/share/minimarket/orders.db)
//   - postgres: the shop database at dsn, read through pgx
//   - s3: a JSON export object at s3.bucket/s3.key
//
// # TOML Format
//
//	source = "http"
//	api_url = "https://shop.example.com"
//	locale = "es-AR"
//	timezone = "America/Argentina/Buenos_Aires"
//	fetch_timeout_seconds = 5
//	log_file = "~/.local/state/minimarket/minimarket.log"
//	session_file = "~/.config/minimarket/session.toml"
//
//	[s3]
//	bucket = "shop-exports"
//	key = "orders.json"
//	region = "us-east-1"
//	endpoint = "http://127.0.0.1:9000"
//	path_style = true
//
// # Environment
//
// MINIMARKET_SOURCE, MINIMARKET_API_URL, MINIMARKET_DSN, MINIMARKET_TABLE,
// MINIMARKET_LOCALE, MINIMARKET_TIMEZONE, MINIMARKET_FETCH_TIMEOUT_SECONDS,
// MINIMARKET_LOG_FILE, MINIMARKET_SESSION_FILE and MINIMARKET_S3_BUCKET,
// MINIMARKET_S3_KEY, MINIMARKET_S3_REGION, MINIMARKET_S3_ENDPOINT,
// MINIMARKET_S3_PATH_STYLE.
//
// # Error Handling
//
// Load returns errors for unreadable files, malformed TOML or environment
// values, unknown sources, a postgres source without a DSN, an s3 source
// without a bucket and unknown time zones. A missing file is not an error.
package config
