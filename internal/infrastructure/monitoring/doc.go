// Package monitoring exposes Prometheus metrics for the HTTP surface, the
// filesystem store, and the WebSocket event stream, plus the gin middleware
// that records per-request metrics.
package monitoring
