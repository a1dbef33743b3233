package vfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vaultview/backend/internal/shared/types"
)

// ListChildren projects the immediate children of a folder into display
// order: folders first, each group sorted by the requested key and
// direction. The projection is derived from current state only; it holds no
// state of its own.
func (s *Store) ListChildren(folderID string, key types.SortKey, order types.SortOrder) ([]types.Entry, error) {
	s.mu.RLock()
	if _, ok := s.folders[folderID]; !ok {
		s.mu.RUnlock()
		return nil, fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
	}

	entries := make([]types.Entry, 0, len(s.folderKids[folderID])+len(s.fileKids[folderID]))
	for kid := range s.folderKids[folderID] {
		out := *s.folders[kid]
		entries = append(entries, types.FolderEntry(&out))
	}
	for kid := range s.fileKids[folderID] {
		out := *s.files[kid]
		entries = append(entries, types.FileEntry(&out))
	}
	s.mu.RUnlock()

	// Map iteration order is random; pin a base order first so the stable
	// sort cannot reshuffle equal-key items between renders.
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID() < entries[j].ID() })

	SortEntries(entries, key, order)
	return entries, nil
}

// SortEntries orders entries in place: folders always sort before files
// regardless of key; folders compare by case-folded name even under the size
// key; files compare by case-folded name or numeric size. Descending order
// reverses the comparison within each group. The sort is stable.
func SortEntries(entries []types.Entry, key types.SortKey, order types.SortOrder) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		aFolder := a.Kind == types.KindFolder
		bFolder := b.Kind == types.KindFolder
		if aFolder != bFolder {
			return aFolder
		}

		var cmp int
		switch {
		case aFolder || key == types.SortByName:
			cmp = strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
		case key == types.SortBySize:
			switch {
			case a.File.Size < b.File.Size:
				cmp = -1
			case a.File.Size > b.File.Size:
				cmp = 1
			}
		}

		if order == types.SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
}
