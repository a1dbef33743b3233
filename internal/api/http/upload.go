package http

import (
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vaultview/backend/internal/api/ws"
	"github.com/vaultview/backend/internal/shared/types"
)

// Upload accepts a multipart file and registers it under the target
// folder. The MIME type is sniffed from content rather than trusted
// from the client, and previewable media gets a preview URL.
func (h *Handlers) Upload(c *gin.Context) {
	parentID := c.PostForm("parent_id")
	if parentID == "" {
		parentID = h.store.RootID()
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}
	if h.maxBytes > 0 && header.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":     "file exceeds upload limit",
			"max_bytes": h.maxBytes,
		})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	mime, err := mimetype.DetectReader(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not detect file type"})
		return
	}

	url := ""
	if types.Previewable(mime.String()) {
		url = "/previews/" + uuid.New().String()
	}

	file, err := h.store.CreateFile(parentID, header.Filename, mime.String(), header.Size, url)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.hub.Publish(ws.Event{Type: ws.EventFileCreated, Payload: file})
	c.JSON(http.StatusCreated, file)
}
