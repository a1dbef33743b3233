// Package main is the entry point for the VaultView backend server.
//
// The server owns an in-memory hierarchical filesystem of folders and
// files with per-file comments and properties, and exposes it over a
// REST API plus a WebSocket session stream.
//
// The server provides:
//   - REST API for tree browsing and mutation
//   - WebSocket streaming for per-session navigation state
//   - Folder-tree import as atomic batches
//   - Glob search over virtual paths
//   - Rate limiting and Prometheus metrics
//
// Configuration:
//   - Environment variables (12-factor)
//   - Optional TOML file override via CONFIG_FILE
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	PORT=8000 ./server
//
//	# Development mode (colored logs, debug level)
//	LOG_DEV=true ./server
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
