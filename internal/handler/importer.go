package handler

import (
	"net/http"

	"carrosusados/internal/model"
	"carrosusados/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportHandler exposes the listing-import extraction pipeline.
type ImportHandler struct {
	importer *service.Importer
}

// NewImportHandler creates the import handler.
func NewImportHandler(importer *service.Importer) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// Import handles POST /api/v1/import.
func (h *ImportHandler) Import(c *gin.Context) {
	var req model.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.importer.Import(c.Request.Context(), req.URL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
