package handler

import (
	"net/http"

	"carrosusados/internal/middleware"
	"carrosusados/internal/model"
	"carrosusados/internal/service"

	"github.com/gin-gonic/gin"
)

// StandHandler exposes dealer stand profile endpoints.
type StandHandler struct {
	cars *service.CarService
}

// NewStandHandler creates the stand profile handler.
func NewStandHandler(cars *service.CarService) *StandHandler {
	return &StandHandler{cars: cars}
}

// Get handles GET /api/v1/stands/:id.
func (h *StandHandler) Get(c *gin.Context) {
	stand, err := h.cars.StandByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if stand == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stand não encontrado"})
		return
	}
	c.JSON(http.StatusOK, stand)
}

// Mine handles GET /api/v1/me/stand.
func (h *StandHandler) Mine(c *gin.Context) {
	stand, err := h.cars.MyStand(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if stand == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "stand não encontrado"})
		return
	}
	c.JSON(http.StatusOK, stand)
}

// Save handles PUT /api/v1/me/stand.
func (h *StandHandler) Save(c *gin.Context) {
	var stand model.StandProfile
	if err := c.ShouldBindJSON(&stand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.cars.SaveStand(c.Request.Context(), middleware.UserID(c), &stand)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
