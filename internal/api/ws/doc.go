// Package ws serves the /stream endpoint: a WebSocket feed of store
// mutation events plus per-connection navigation, selection, and
// opened-file state.
package ws
