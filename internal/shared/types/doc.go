// Package types defines the entity model shared across the backend: folders,
// files, comments, properties, the tagged entry union, and the request
// shapes accepted by the API surface.
package types
