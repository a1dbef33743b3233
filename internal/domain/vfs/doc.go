// Package vfs implements the in-memory virtual filesystem: the store owning
// all folders, files, comments and properties, the cascade-delete closure,
// batch folder-tree import, glob search, and the sorted view projection.
//
// The store is the single mutation choke point. It is guarded by one RWMutex
// and every multi-collection mutation commits under a single write lock, so
// readers never observe a partially applied cascade or import.
package vfs
