package types

import (
	"strings"
	"time"
)

// Folder is a container node in the hierarchy. ParentID is empty only for
// the single root folder.
type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsRoot reports whether the folder is the tree root.
func (f *Folder) IsRoot() bool {
	return f.ParentID == ""
}

// File is a leaf node carrying content metadata only; no bytes are stored.
// URL is set only for previewable media (image/video).
type File struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	URL       string    `json:"url,omitempty"`
	ParentID  string    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is an append-only note attached to a file. It lives and dies with
// its owning file.
type Comment struct {
	ID        string    `json:"id"`
	FileID    string    `json:"file_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Property is an append-only key-style annotation on a file, ordered by
// insertion.
type Property struct {
	ID     string `json:"id"`
	FileID string `json:"file_id"`
	Text   string `json:"text"`
}

// EntryKind discriminates tree entries.
type EntryKind string

const (
	KindFolder EntryKind = "folder"
	KindFile   EntryKind = "file"
)

// Entry is a tagged union over folder and file. Exactly one of Folder/File
// is non-nil, matching Kind.
type Entry struct {
	Kind   EntryKind `json:"kind"`
	Folder *Folder   `json:"folder,omitempty"`
	File   *File     `json:"file,omitempty"`
}

// FolderEntry wraps a folder as an entry.
func FolderEntry(f *Folder) Entry {
	return Entry{Kind: KindFolder, Folder: f}
}

// FileEntry wraps a file as an entry.
func FileEntry(f *File) Entry {
	return Entry{Kind: KindFile, File: f}
}

// ID returns the id of the underlying entity.
func (e Entry) ID() string {
	if e.Kind == KindFolder {
		return e.Folder.ID
	}
	return e.File.ID
}

// Name returns the name of the underlying entity.
func (e Entry) Name() string {
	if e.Kind == KindFolder {
		return e.Folder.Name
	}
	return e.File.Name
}

// SortKey selects the comparison field for view projection.
type SortKey string

// SortOrder selects the comparison direction.
type SortOrder string

const (
	SortByName SortKey = "name"
	SortBySize SortKey = "size"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortKey validates a sort key string, defaulting to name.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortBySize:
		return SortBySize, true
	case SortByName, "":
		return SortByName, true
	}
	return SortByName, false
}

// ParseSortOrder validates a sort order string, defaulting to ascending.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case SortDesc:
		return SortDesc, true
	case SortAsc, "":
		return SortAsc, true
	}
	return SortAsc, false
}

// Previewable reports whether a MIME type gets an inline preview in the UI.
// The store never makes this call; classification belongs to the caller.
func Previewable(mime string) bool {
	return strings.HasPrefix(mime, "image/") || strings.HasPrefix(mime, "video/")
}

// Deleted lists everything removed by a single delete operation.
type Deleted struct {
	FolderIDs []string `json:"folders"`
	FileIDs   []string `json:"files"`
}

// ImportEntry is one file in a folder-tree upload. Path is the
// slash-separated chain of intermediate folder names, possibly empty.
type ImportEntry struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	URL  string `json:"url,omitempty"`
}

// ImportResult lists everything created by a folder-tree upload.
type ImportResult struct {
	Folders []*Folder `json:"folders"`
	Files   []*File   `json:"files"`
}

// Match is one search hit: the entry plus its virtual path below the root.
type Match struct {
	Path  string `json:"path"`
	Entry Entry  `json:"entry"`
}

// Snapshot is a consistent copy of the whole store, used by the export
// endpoint.
type Snapshot struct {
	Folders    []*Folder             `json:"folders"`
	Files      []*File               `json:"files"`
	Comments   map[string][]Comment  `json:"comments"`
	Properties map[string][]Property `json:"properties"`
	TakenAt    time.Time             `json:"taken_at"`
}

// Stats contains store totals.
type Stats struct {
	TotalFolders    int `json:"total_folders"`
	TotalFiles      int `json:"total_files"`
	TotalComments   int `json:"total_comments"`
	TotalProperties int `json:"total_properties"`
}
