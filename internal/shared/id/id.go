// Package id provides centralized ID generation for the backend.
//
// Entity ids are prefixed ULIDs (fld_*, fil_*, cmt_*, prp_*): lexicographically
// sortable, unique across prior state and within a batch, and immutable once
// assigned. Prefixes make logs readable and keep folder and file id spaces
// visibly distinct even though uniqueness already holds jointly.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Prefixes per entity kind.
const (
	FolderPrefix   = "fld"
	FilePrefix     = "fil"
	CommentPrefix  = "cmt"
	PropertyPrefix = "prp"
)

// Generator generates ULIDs with optional prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand entropy.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewFolderID generates a folder id.
func NewFolderID() string {
	return Default().GenerateWithPrefix(FolderPrefix)
}

// NewFileID generates a file id.
func NewFileID() string {
	return Default().GenerateWithPrefix(FilePrefix)
}

// NewCommentID generates a comment id.
func NewCommentID() string {
	return Default().GenerateWithPrefix(CommentPrefix)
}

// NewPropertyID generates a property id.
func NewPropertyID() string {
	return Default().GenerateWithPrefix(PropertyPrefix)
}
