package handler

import (
	"net/http"

	"carrosusados/internal/middleware"
	"carrosusados/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the moderation and maintenance endpoints.
type AdminHandler struct {
	cars       *service.CarService
	embeddings *service.EmbeddingService
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(cars *service.CarService, embeddings *service.EmbeddingService) *AdminHandler {
	return &AdminHandler{cars: cars, embeddings: embeddings}
}

// Pending handles GET /api/v1/admin/cars/pending.
func (h *AdminHandler) Pending(c *gin.Context) {
	cars, err := h.cars.PendingCars(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// AllCars handles GET /api/v1/admin/cars.
func (h *AdminHandler) AllCars(c *gin.Context) {
	cars, err := h.cars.AllCars(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// Approve handles POST /api/v1/admin/cars/:id/approve.
func (h *AdminHandler) Approve(c *gin.Context) {
	if err := h.cars.Approve(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RefreshEmbeddings handles POST /api/v1/admin/embeddings/batch.
func (h *AdminHandler) RefreshEmbeddings(c *gin.Context) {
	var req struct {
		CarIDs []string `json:"car_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if len(req.CarIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "car_ids é obrigatório"})
		return
	}

	updated, failures := h.embeddings.Refresh(c.Request.Context(), req.CarIDs)
	if failures == nil {
		failures = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"updated":  updated,
		"failures": failures,
	})
}
