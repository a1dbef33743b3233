package vfs

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vaultview/backend/internal/shared/types"
)

// Glob matches folders and files against a gitignore-style pattern applied
// to their virtual slash paths below the root ("Documents/notes/a.txt").
// Results come back in depth-first, name-sorted order.
func (s *Store) Glob(pattern string) ([]types.Match, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []types.Match
	s.walkLocked(s.rootID, "", func(path string, entry types.Entry) {
		if ok, _ := doublestar.Match(pattern, path); ok {
			matches = append(matches, types.Match{Path: path, Entry: entry})
		}
	})
	return matches, nil
}

// walkLocked visits the subtree below folderID depth-first with children
// ordered by name (must hold read lock). The root itself is not visited; its
// name is not part of any virtual path.
func (s *Store) walkLocked(folderID, prefix string, visit func(path string, entry types.Entry)) {
	folderIDs := make([]string, 0, len(s.folderKids[folderID]))
	for kid := range s.folderKids[folderID] {
		folderIDs = append(folderIDs, kid)
	}
	sort.Slice(folderIDs, func(i, j int) bool {
		return s.folders[folderIDs[i]].Name < s.folders[folderIDs[j]].Name
	})

	fileIDs := make([]string, 0, len(s.fileKids[folderID]))
	for kid := range s.fileKids[folderID] {
		fileIDs = append(fileIDs, kid)
	}
	sort.Slice(fileIDs, func(i, j int) bool {
		return s.files[fileIDs[i]].Name < s.files[fileIDs[j]].Name
	})

	for _, kid := range folderIDs {
		folder := s.folders[kid]
		path := join(prefix, folder.Name)
		out := *folder
		visit(path, types.FolderEntry(&out))
		s.walkLocked(kid, path, visit)
	}
	for _, kid := range fileIDs {
		file := s.files[kid]
		out := *file
		visit(join(prefix, file.Name), types.FileEntry(&out))
	}
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
