package vfs

import (
	"fmt"
	"strings"
	"time"

	"github.com/vaultview/backend/internal/shared/id"
	"github.com/vaultview/backend/internal/shared/types"
)

// ImportTree applies a folder-tree upload as one atomic batch. Each entry
// names a file plus the slash-separated chain of folders it sits under,
// relative to parentID. Entries sharing a path prefix share the folders:
// "a/b/f1" and "a/b/f2" create folder a once and folder b once. The whole
// batch is staged first and committed under a single write lock; any invalid
// entry rejects the batch with nothing applied.
func (s *Store) ImportTree(parentID string, entries []types.ImportEntry) (*types.ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[parentID]; !ok {
		return nil, s.reject("import_tree", fmt.Errorf("parent folder %s: %w", parentID, ErrNotFound))
	}

	now := time.Now()
	pathToID := make(map[string]string)
	var newFolders []*types.Folder
	var newFiles []*types.File

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, s.reject("import_tree", ErrEmptyName)
		}
		if entry.Size < 0 {
			return nil, s.reject("import_tree", ErrNegativeSize)
		}

		levelParent := parentID
		prefix := ""
		for _, segment := range strings.Split(entry.Path, "/") {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}
			if prefix == "" {
				prefix = segment
			} else {
				prefix = prefix + "/" + segment
			}

			if existing, ok := pathToID[prefix]; ok {
				levelParent = existing
				continue
			}
			folder := &types.Folder{
				ID:        id.NewFolderID(),
				Name:      segment,
				ParentID:  levelParent,
				CreatedAt: now,
			}
			newFolders = append(newFolders, folder)
			pathToID[prefix] = folder.ID
			levelParent = folder.ID
		}

		newFiles = append(newFiles, &types.File{
			ID:        id.NewFileID(),
			Name:      name,
			Type:      entry.Type,
			Size:      entry.Size,
			URL:       entry.URL,
			ParentID:  levelParent,
			CreatedAt: now,
		})
	}

	// Commit. Everything becomes visible together.
	result := &types.ImportResult{
		Folders: make([]*types.Folder, 0, len(newFolders)),
		Files:   make([]*types.File, 0, len(newFiles)),
	}
	for _, folder := range newFolders {
		s.insertFolder(folder)
		out := *folder
		result.Folders = append(result.Folders, &out)
	}
	for _, file := range newFiles {
		s.insertFile(file)
		out := *file
		result.Files = append(result.Files, &out)
	}

	s.record("import_tree")
	return result, nil
}
