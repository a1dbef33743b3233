package vfs

import (
	"sort"
	"time"

	"github.com/vaultview/backend/internal/shared/types"
)

// Snapshot returns a consistent copy of all four collections, taken under a
// single read lock. Folders and files come back sorted by id so exports are
// deterministic.
func (s *Store) Snapshot() *types.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &types.Snapshot{
		Folders:    make([]*types.Folder, 0, len(s.folders)),
		Files:      make([]*types.File, 0, len(s.files)),
		Comments:   make(map[string][]types.Comment, len(s.comments)),
		Properties: make(map[string][]types.Property, len(s.properties)),
		TakenAt:    time.Now(),
	}

	for _, folder := range s.folders {
		out := *folder
		snap.Folders = append(snap.Folders, &out)
	}
	for _, file := range s.files {
		out := *file
		snap.Files = append(snap.Files, &out)
	}
	sort.Slice(snap.Folders, func(i, j int) bool { return snap.Folders[i].ID < snap.Folders[j].ID })
	sort.Slice(snap.Files, func(i, j int) bool { return snap.Files[i].ID < snap.Files[j].ID })

	for fid, list := range s.comments {
		snap.Comments[fid] = append([]types.Comment(nil), list...)
	}
	for fid, list := range s.properties {
		snap.Properties[fid] = append([]types.Property(nil), list...)
	}

	return snap
}
