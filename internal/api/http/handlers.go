package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultview/backend/internal/api/ws"
	"github.com/vaultview/backend/internal/domain/vfs"
	"github.com/vaultview/backend/internal/infrastructure/logging"
	"github.com/vaultview/backend/internal/shared/types"
)

// Handlers contains all HTTP handlers. Mutating handlers publish typed
// events to the hub after the store accepts the operation.
type Handlers struct {
	store    *vfs.Store
	hub      *ws.Hub
	logger   *logging.Logger
	maxBytes int64
}

// NewHandlers creates a new handler set.
func NewHandlers(store *vfs.Store, hub *ws.Hub, logger *logging.Logger, maxUploadBytes int64) *Handlers {
	return &Handlers{
		store:    store,
		hub:      hub,
		logger:   logger,
		maxBytes: maxUploadBytes,
	}
}

// Root handles the service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "VaultView Backend",
		"root_id": h.store.RootID(),
	})
}

// Health handles the health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"store":  h.store.Stats(),
	})
}

// ListChildren returns the sorted immediate children of a folder.
func (h *Handlers) ListChildren(c *gin.Context) {
	key, ok := types.ParseSortKey(c.Query("sort_key"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort_key must be name or size"})
		return
	}
	order, ok := types.ParseSortOrder(c.Query("sort_order"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort_order must be asc or desc"})
		return
	}

	entries, err := h.store.ListChildren(c.Param("id"), key, order)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// CreateFolder creates one folder.
func (h *Handlers) CreateFolder(c *gin.Context) {
	var req types.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder, err := h.store.CreateFolder(req.ParentID, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.hub.Publish(ws.Event{Type: ws.EventFolderCreated, Payload: folder})
	c.JSON(http.StatusCreated, folder)
}

// CreateFile registers file metadata directly, without an upload.
func (h *Handlers) CreateFile(c *gin.Context) {
	var req types.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Preview URLs are only meaningful for previewable media.
	url := req.URL
	if !types.Previewable(req.Type) {
		url = ""
	}

	file, err := h.store.CreateFile(req.ParentID, req.Name, req.Type, req.Size, url)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.hub.Publish(ws.Event{Type: ws.EventFileCreated, Payload: file})
	c.JSON(http.StatusCreated, file)
}

// Import applies a folder-tree upload as one atomic batch.
func (h *Handlers) Import(c *gin.Context) {
	var req types.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entries must not be empty"})
		return
	}

	result, err := h.store.ImportTree(req.ParentID, req.Entries)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.hub.Publish(ws.Event{Type: ws.EventTreeImported, Payload: result})
	c.JSON(http.StatusCreated, result)
}

// GetItem returns one entry with its detail-panel data: child count for
// folders, comments and properties for files.
func (h *Handlers) GetItem(c *gin.Context) {
	itemID := c.Param("id")
	entry, ok := h.store.Get(itemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	resp := gin.H{"entry": entry}
	switch entry.Kind {
	case types.KindFolder:
		count, err := h.store.ChildCount(itemID)
		if err == nil {
			resp["child_count"] = count
		}
	case types.KindFile:
		if comments, err := h.store.Comments(itemID); err == nil {
			resp["comments"] = comments
		}
		if properties, err := h.store.Properties(itemID); err == nil {
			resp["properties"] = properties
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Rename updates an item's name.
func (h *Handlers) Rename(c *gin.Context) {
	var req types.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itemID := c.Param("id")
	before, _ := h.store.Get(itemID)
	if err := h.store.Rename(itemID, req.Name); err != nil {
		h.fail(c, err)
		return
	}

	after, _ := h.store.Get(itemID)
	// A rename to the current name succeeds but is not an observable change.
	if before.Name() != after.Name() {
		h.hub.Publish(ws.Event{Type: ws.EventRenamed, Payload: gin.H{"id": itemID, "name": after.Name()}})
	}
	c.JSON(http.StatusOK, gin.H{"id": itemID, "name": after.Name()})
}

// Delete removes a file, or a folder with its whole subtree.
func (h *Handlers) Delete(c *gin.Context) {
	deleted, err := h.store.Delete(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	h.hub.Publish(ws.Event{Type: ws.EventDeleted, Payload: deleted})
	c.JSON(http.StatusOK, deleted)
}

// ListComments returns a file's comments in insertion order.
func (h *Handlers) ListComments(c *gin.Context) {
	comments, err := h.store.Comments(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}

// AddComment appends a comment to a file.
func (h *Handlers) AddComment(c *gin.Context) {
	var req types.AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.store.AddComment(c.Param("id"), req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.hub.Publish(ws.Event{Type: ws.EventCommentAdded, Payload: comment})
	c.JSON(http.StatusCreated, comment)
}

// ListProperties returns a file's properties in insertion order.
func (h *Handlers) ListProperties(c *gin.Context) {
	properties, err := h.store.Properties(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties, "count": len(properties)})
}

// AddProperty appends a property to a file.
func (h *Handlers) AddProperty(c *gin.Context) {
	var req types.AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.store.AddProperty(c.Param("id"), req.Text)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.hub.Publish(ws.Event{Type: ws.EventPropertyAdded, Payload: property})
	c.JSON(http.StatusCreated, property)
}

// Search matches the tree against a glob pattern.
func (h *Handlers) Search(c *gin.Context) {
	pattern := c.Query("pattern")
	if pattern == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern parameter required"})
		return
	}

	matches, err := h.store.Glob(pattern)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches, "count": len(matches)})
}

// Stats returns store totals.
func (h *Handlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

// fail maps store errors to HTTP status codes.
func (h *Handlers) fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, vfs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, vfs.ErrRootDelete):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
