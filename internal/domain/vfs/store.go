package vfs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vaultview/backend/internal/infrastructure/monitoring"
	"github.com/vaultview/backend/internal/shared/id"
	"github.com/vaultview/backend/internal/shared/types"
)

// Store is the single source of truth for folders, files, comments and
// properties. All structural mutations pass through it so the tree invariants
// hold after every operation: every non-root parent id resolves, no comment
// or property outlives its file, names never persist blank, ids are never
// reused.
type Store struct {
	mu         sync.RWMutex
	folders    map[string]*types.Folder   // Protected by mu
	files      map[string]*types.File     // Protected by mu
	comments   map[string][]types.Comment // Keyed by file id
	properties map[string][]types.Property

	// Adjacency indexes, parent folder id -> child ids. Maintained on every
	// insert and remove so cascade delete walks the index instead of
	// rescanning the whole collection per queue pop.
	folderKids map[string]map[string]struct{}
	fileKids   map[string]map[string]struct{}

	rootID  string
	metrics *monitoring.Metrics
}

// RootName is the display name of the tree root.
const RootName = "Home"

// New creates a store holding only the root folder.
func New() *Store {
	s := &Store{
		folders:    make(map[string]*types.Folder),
		files:      make(map[string]*types.File),
		comments:   make(map[string][]types.Comment),
		properties: make(map[string][]types.Property),
		folderKids: make(map[string]map[string]struct{}),
		fileKids:   make(map[string]map[string]struct{}),
	}

	root := &types.Folder{
		ID:        id.NewFolderID(),
		Name:      RootName,
		CreatedAt: time.Now(),
	}
	s.folders[root.ID] = root
	s.rootID = root.ID

	return s
}

// WithMetrics adds metrics tracking to the store.
func (s *Store) WithMetrics(metrics *monitoring.Metrics) *Store {
	s.metrics = metrics
	s.publishGauges()
	return s
}

// RootID returns the id of the root folder.
func (s *Store) RootID() string {
	return s.rootID
}

// CreateFolder allocates a fresh folder under an existing parent.
func (s *Store) CreateFolder(parentID, name string) (*types.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, s.reject("create_folder", ErrEmptyName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[parentID]; !ok {
		return nil, s.reject("create_folder", fmt.Errorf("parent folder %s: %w", parentID, ErrNotFound))
	}

	folder := &types.Folder{
		ID:        id.NewFolderID(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
	s.insertFolder(folder)

	s.record("create_folder")
	out := *folder
	return &out, nil
}

// CreateFile registers file metadata under an existing parent. The url is
// stored as given; previewability classification belongs to the caller.
func (s *Store) CreateFile(parentID, name, mime string, size int64, url string) (*types.File, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, s.reject("create_file", ErrEmptyName)
	}
	if size < 0 {
		return nil, s.reject("create_file", ErrNegativeSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[parentID]; !ok {
		return nil, s.reject("create_file", fmt.Errorf("parent folder %s: %w", parentID, ErrNotFound))
	}

	file := &types.File{
		ID:        id.NewFileID(),
		Name:      name,
		Type:      mime,
		Size:      size,
		URL:       url,
		ParentID:  parentID,
		CreatedAt: time.Now(),
	}
	s.insertFile(file)

	s.record("create_file")
	out := *file
	return &out, nil
}

// Rename updates the name of a folder or file. Ids are globally unique so a
// lookup in either collection suffices. Renaming to the current name is a
// successful no-op.
func (s *Store) Rename(itemID, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return s.reject("rename", ErrEmptyName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if folder, ok := s.folders[itemID]; ok {
		folder.Name = newName
		s.record("rename")
		return nil
	}
	if file, ok := s.files[itemID]; ok {
		file.Name = newName
		s.record("rename")
		return nil
	}
	return s.reject("rename", fmt.Errorf("item %s: %w", itemID, ErrNotFound))
}

// Delete removes a file, or a folder with its entire transitive contents.
// The cascade computes the descendant closure first and removes everything
// under one write lock, so observers never see a partially deleted subtree.
func (s *Store) Delete(itemID string) (*types.Deleted, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[itemID]; ok {
		s.removeFile(itemID)
		s.record("delete")
		return &types.Deleted{FolderIDs: []string{}, FileIDs: []string{itemID}}, nil
	}

	folder, ok := s.folders[itemID]
	if !ok {
		return nil, s.reject("delete", fmt.Errorf("item %s: %w", itemID, ErrNotFound))
	}
	if folder.IsRoot() {
		return nil, s.reject("delete", ErrRootDelete)
	}

	// Breadth-first closure over the adjacency index. Each folder is queued
	// exactly once; files are collected but never queued.
	queue := []string{itemID}
	folderSet := map[string]struct{}{itemID: {}}
	fileSet := make(map[string]struct{})
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for kid := range s.folderKids[current] {
			if _, seen := folderSet[kid]; !seen {
				folderSet[kid] = struct{}{}
				queue = append(queue, kid)
			}
		}
		for kid := range s.fileKids[current] {
			fileSet[kid] = struct{}{}
		}
	}

	deleted := &types.Deleted{
		FolderIDs: make([]string, 0, len(folderSet)),
		FileIDs:   make([]string, 0, len(fileSet)),
	}
	for fid := range fileSet {
		s.removeFile(fid)
		deleted.FileIDs = append(deleted.FileIDs, fid)
	}
	for fid := range folderSet {
		s.removeFolder(fid)
		deleted.FolderIDs = append(deleted.FolderIDs, fid)
	}
	sort.Strings(deleted.FolderIDs)
	sort.Strings(deleted.FileIDs)

	s.record("delete")
	return deleted, nil
}

// AddComment appends a comment to an existing file.
func (s *Store) AddComment(fileID, text string) (*types.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, s.reject("add_comment", ErrEmptyText)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[fileID]; !ok {
		return nil, s.reject("add_comment", fmt.Errorf("file %s: %w", fileID, ErrNotFound))
	}

	comment := types.Comment{
		ID:        id.NewCommentID(),
		FileID:    fileID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.comments[fileID] = append(s.comments[fileID], comment)

	s.record("add_comment")
	return &comment, nil
}

// AddProperty appends a property to an existing file. Insertion order is
// preserved.
func (s *Store) AddProperty(fileID, text string) (*types.Property, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, s.reject("add_property", ErrEmptyText)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[fileID]; !ok {
		return nil, s.reject("add_property", fmt.Errorf("file %s: %w", fileID, ErrNotFound))
	}

	property := types.Property{
		ID:     id.NewPropertyID(),
		FileID: fileID,
		Text:   text,
	}
	s.properties[fileID] = append(s.properties[fileID], property)

	s.record("add_property")
	return &property, nil
}

// Comments returns the comments of a file in insertion order.
func (s *Store) Comments(fileID string) ([]types.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.files[fileID]; !ok {
		return nil, fmt.Errorf("file %s: %w", fileID, ErrNotFound)
	}
	return append([]types.Comment(nil), s.comments[fileID]...), nil
}

// Properties returns the properties of a file in insertion order.
func (s *Store) Properties(fileID string) ([]types.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.files[fileID]; !ok {
		return nil, fmt.Errorf("file %s: %w", fileID, ErrNotFound)
	}
	return append([]types.Property(nil), s.properties[fileID]...), nil
}

// Get retrieves a folder or file by id as a tagged entry.
func (s *Store) Get(itemID string) (types.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if folder, ok := s.folders[itemID]; ok {
		out := *folder
		return types.FolderEntry(&out), true
	}
	if file, ok := s.files[itemID]; ok {
		out := *file
		return types.FileEntry(&out), true
	}
	return types.Entry{}, false
}

// ChildCount returns the number of immediate children of a folder, both
// subfolders and files.
func (s *Store) ChildCount(folderID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.folders[folderID]; !ok {
		return 0, fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
	}
	return len(s.folderKids[folderID]) + len(s.fileKids[folderID]), nil
}

// Stats returns store totals.
func (s *Store) Stats() types.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statsLocked()
}

func (s *Store) statsLocked() types.Stats {
	stats := types.Stats{
		TotalFolders: len(s.folders),
		TotalFiles:   len(s.files),
	}
	for _, list := range s.comments {
		stats.TotalComments += len(list)
	}
	for _, list := range s.properties {
		stats.TotalProperties += len(list)
	}
	return stats
}

// insertFolder adds a folder and indexes it (must hold write lock).
func (s *Store) insertFolder(folder *types.Folder) {
	s.folders[folder.ID] = folder
	kids := s.folderKids[folder.ParentID]
	if kids == nil {
		kids = make(map[string]struct{})
		s.folderKids[folder.ParentID] = kids
	}
	kids[folder.ID] = struct{}{}
}

// insertFile adds a file and indexes it (must hold write lock).
func (s *Store) insertFile(file *types.File) {
	s.files[file.ID] = file
	kids := s.fileKids[file.ParentID]
	if kids == nil {
		kids = make(map[string]struct{})
		s.fileKids[file.ParentID] = kids
	}
	kids[file.ID] = struct{}{}
}

// removeFile drops a file with its comments and properties (must hold write
// lock).
func (s *Store) removeFile(fileID string) {
	file, ok := s.files[fileID]
	if !ok {
		return
	}
	delete(s.files, fileID)
	delete(s.comments, fileID)
	delete(s.properties, fileID)
	if kids, ok := s.fileKids[file.ParentID]; ok {
		delete(kids, fileID)
		if len(kids) == 0 {
			delete(s.fileKids, file.ParentID)
		}
	}
}

// removeFolder drops a folder and its index entries (must hold write lock).
// Descendants are the caller's responsibility.
func (s *Store) removeFolder(folderID string) {
	folder, ok := s.folders[folderID]
	if !ok {
		return
	}
	delete(s.folders, folderID)
	delete(s.folderKids, folderID)
	delete(s.fileKids, folderID)
	if kids, ok := s.folderKids[folder.ParentID]; ok {
		delete(kids, folderID)
		if len(kids) == 0 {
			delete(s.folderKids, folder.ParentID)
		}
	}
}

// record counts a successful mutation and refreshes entity gauges (must hold
// write lock).
func (s *Store) record(op string) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordStoreOp(op, "ok")
	stats := s.statsLocked()
	s.metrics.SetEntityCounts(stats.TotalFolders, stats.TotalFiles, stats.TotalComments, stats.TotalProperties)
}

// reject counts a failed operation and passes the error through.
func (s *Store) reject(op string, err error) error {
	if s.metrics != nil {
		s.metrics.RecordStoreOp(op, "rejected")
	}
	return err
}

func (s *Store) publishGauges() {
	if s.metrics == nil {
		return
	}
	stats := s.Stats()
	s.metrics.SetEntityCounts(stats.TotalFolders, stats.TotalFiles, stats.TotalComments, stats.TotalProperties)
}
