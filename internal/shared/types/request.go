package types

// CreateFolderRequest creates one folder under an existing parent.
type CreateFolderRequest struct {
	ParentID string `json:"parent_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// CreateFileRequest registers file metadata under an existing parent.
type CreateFileRequest struct {
	ParentID string `json:"parent_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type"`
	Size     int64  `json:"size"`
	URL      string `json:"url,omitempty"`
}

// RenameRequest updates the name of a folder or file.
type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

// AnnotateRequest appends a comment or property to a file.
type AnnotateRequest struct {
	Text string `json:"text" binding:"required"`
}

// ImportRequest uploads a folder tree as one atomic batch.
type ImportRequest struct {
	ParentID string        `json:"parent_id" binding:"required"`
	Entries  []ImportEntry `json:"entries" binding:"required"`
}
