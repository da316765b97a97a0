// Package ui provides the Bubble Tea terminal interface for minimarket.
//
// The root Model owns a small navigator: a current route, a back stack and
// one menu.Controller per mounted screen. Leaving a screen stops its
// controller so a drawer animation never completes against a screen that is
// gone. The session is re-read on every update, so the drawer entries always
// match the current role.
//
// The admin orders screen is the one screen with real content. It fetches
// once per activation and renders the orders.Pipeline: search box, the
// current page of records with status tones, a "Showing a-b of n" footer and
// page dots. Enter opens a read-only detail modal.
//
// Preferences (theme and page size) persist through internal/prefs.
package ui
