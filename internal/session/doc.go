// Package session holds the signed-in state MiniMarket reads from disk.
// The session file is written by the storefront's login tooling; this client
// reads and reloads it, and removes it on sign-out.
package session
