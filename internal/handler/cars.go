package handler

import (
	"net/http"

	"carrosusados/internal/middleware"
	"carrosusados/internal/model"
	"carrosusados/internal/service"

	"github.com/gin-gonic/gin"
)

// CarHandler exposes listing browse, detail and CRUD endpoints.
type CarHandler struct {
	cars *service.CarService
}

// NewCarHandler creates the listing handler.
func NewCarHandler(cars *service.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

// Vocab handles GET /api/v1/vocab: the closed filter vocabularies the
// search form offers.
func (h *CarHandler) Vocab(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fuel_types":    model.FuelTypes,
		"transmissions": model.Transmissions,
		"body_types":    model.BodyTypes,
		"colors":        model.Colors,
		"locations":     model.Locations,
	})
}

// List handles GET /api/v1/cars with filter query parameters.
func (h *CarHandler) List(c *gin.Context) {
	var filters model.CarFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters: " + err.Error()})
		return
	}

	cars, err := h.cars.Browse(c.Request.Context(), &filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// Get handles GET /api/v1/cars/:id.
func (h *CarHandler) Get(c *gin.Context) {
	car, err := h.cars.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if car == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "anúncio não encontrado"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// GetBySlug handles GET /api/v1/slug/:slug.
func (h *CarHandler) GetBySlug(c *gin.Context) {
	car, err := h.cars.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if car == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "anúncio não encontrado"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// Related handles GET /api/v1/cars/:id/related.
func (h *CarHandler) Related(c *gin.Context) {
	cars, err := h.cars.Related(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// MyCars handles GET /api/v1/me/cars.
func (h *CarHandler) MyCars(c *gin.Context) {
	cars, err := h.cars.MyCars(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// MyRole handles GET /api/v1/me/role.
func (h *CarHandler) MyRole(c *gin.Context) {
	role, err := h.cars.UserRole(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// Create handles POST /api/v1/cars.
func (h *CarHandler) Create(c *gin.Context) {
	var car model.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.cars.Create(c.Request.Context(), middleware.UserID(c), &car)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/v1/cars/:id.
func (h *CarHandler) Update(c *gin.Context) {
	var car model.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.cars.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), &car)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/cars/:id.
func (h *CarHandler) Delete(c *gin.Context) {
	if err := h.cars.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkSold handles POST /api/v1/cars/:id/sold.
func (h *CarHandler) MarkSold(c *gin.Context) {
	var req struct {
		Sold bool `json:"sold"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.cars.SetSold(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Sold); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
