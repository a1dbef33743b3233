// Package seed populates a fresh store with demo content, either from a
// YAML manifest on disk or from the built-in default tree.
package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/vaultview/backend/internal/domain/vfs"
	"github.com/vaultview/backend/internal/infrastructure/logging"
)

// Manifest describes a tree of demo content.
type Manifest struct {
	Folders []FolderSpec `yaml:"folders"`
	Files   []FileSpec   `yaml:"files"`
}

// FolderSpec is one folder to create. Path is the slash-separated chain of
// folder names below the root; every segment is created if missing.
type FolderSpec struct {
	Path string `yaml:"path"`
}

// FileSpec is one file to create, with optional annotations.
type FileSpec struct {
	Path       string   `yaml:"path"` // folder chain, empty for root
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Size       int64    `yaml:"size"`
	URL        string   `yaml:"url"`
	Comments   []string `yaml:"comments"`
	Properties []string `yaml:"properties"`
}

// Seeder applies manifests to a store.
type Seeder struct {
	store  *vfs.Store
	logger *logging.Logger

	// Folder chains already created, path -> folder id. Shared prefixes are
	// created once across the whole manifest.
	pathToID map[string]string
}

// NewSeeder creates a seeder.
func NewSeeder(store *vfs.Store, logger *logging.Logger) *Seeder {
	return &Seeder{
		store:    store,
		logger:   logger,
		pathToID: make(map[string]string),
	}
}

// SeedFile loads a YAML manifest from disk and applies it.
func (s *Seeder) SeedFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("failed to parse seed manifest: %w", err)
	}

	return s.Apply(&manifest)
}

// SeedDefault applies the built-in demo tree.
func (s *Seeder) SeedDefault() error {
	return s.Apply(DefaultManifest())
}

// Apply creates the manifest's folders and files under the store root.
func (s *Seeder) Apply(manifest *Manifest) error {
	for _, folder := range manifest.Folders {
		if _, err := s.ensurePath(folder.Path); err != nil {
			return fmt.Errorf("failed to seed folder %q: %w", folder.Path, err)
		}
	}

	for _, file := range manifest.Files {
		parentID, err := s.ensurePath(file.Path)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", file.Name, err)
		}

		created, err := s.store.CreateFile(parentID, file.Name, file.Type, file.Size, file.URL)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", file.Name, err)
		}

		for _, text := range file.Comments {
			if _, err := s.store.AddComment(created.ID, text); err != nil {
				return fmt.Errorf("failed to seed comment on %s: %w", file.Name, err)
			}
		}
		for _, text := range file.Properties {
			if _, err := s.store.AddProperty(created.ID, text); err != nil {
				return fmt.Errorf("failed to seed property on %s: %w", file.Name, err)
			}
		}
	}

	s.logger.Info("Seeded demo content",
		zap.Int("folders", len(manifest.Folders)),
		zap.Int("files", len(manifest.Files)),
	)
	return nil
}

// ensurePath creates each missing segment of a folder chain below the root
// and returns the id of the final folder. An empty path resolves to the
// root itself.
func (s *Seeder) ensurePath(path string) (string, error) {
	parentID := s.store.RootID()
	prefix := ""
	for _, segment := range strings.Split(path, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if prefix == "" {
			prefix = segment
		} else {
			prefix = prefix + "/" + segment
		}

		if existing, ok := s.pathToID[prefix]; ok {
			parentID = existing
			continue
		}
		folder, err := s.store.CreateFolder(parentID, segment)
		if err != nil {
			return "", err
		}
		s.pathToID[prefix] = folder.ID
		parentID = folder.ID
	}
	return parentID, nil
}
