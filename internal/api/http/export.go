package http

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// ExportTree streams a gzip-compressed JSON snapshot of the whole tree.
func (h *Handlers) ExportTree(c *gin.Context) {
	snapshot := h.store.Snapshot()

	data, err := sonic.Marshal(snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "snapshot serialization failed"})
		return
	}

	c.Header("Content-Type", "application/json")
	c.Header("Content-Encoding", "gzip")
	c.Header("Content-Disposition", `attachment; filename="vaultview-tree.json.gz"`)
	c.Status(http.StatusOK)

	gz := gzip.NewWriter(c.Writer)
	defer gz.Close()
	if _, err := gz.Write(data); err != nil {
		h.logger.Warn("tree export write failed", zap.Error(err))
	}
}
