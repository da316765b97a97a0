// Package storefront provides an HTTP client for the storefront order API.
//
// # Client Usage
//
//	client, err := storefront.NewClient(cfg.APIURL,
//		storefront.WithTimeout(cfg.FetchTimeout()),
//		storefront.WithToken(func() string { return store.Session().Token }),
//	)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//	records, err := client.FetchOrders(ctx)
//
// # API Endpoints
//
//   - GET /api/orders: every order visible to the caller, either as a bare
//     JSON array or wrapped in {"items": [...]}
//
// Records decode through orders.DecodeRecords, which normalizes timestamp
// dates and the two product collection shapes. Loosely typed fields degrade
// to absent values, and entries that are not orders are skipped.
//
// # Request Handling
//
// All requests use the caller's context, send Accept: application/json and
// User-Agent: minimarket/0.1, and carry "Authorization: Bearer <token>" when
// the token source returns a non-blank token. The default timeout is five
// seconds. Status codes of 400 and above are returned as errors such as
// "api /api/orders returned status 401".
//
// # URL Construction
//
//   - "" → http://127.0.0.1:8080
//   - "shop.local:8080" → http://shop.local:8080
//   - "https://example.com/shop/" → https://example.com/shop (orders at /shop/api/orders)
//
// The client never writes: order status changes are not part of this API.
package storefront
