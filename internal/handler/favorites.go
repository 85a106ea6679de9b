package handler

import (
	"net/http"

	"carrosusados/internal/middleware"
	"carrosusados/internal/service"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler exposes per-user favorite endpoints.
type FavoriteHandler struct {
	cars *service.CarService
}

// NewFavoriteHandler creates the favorites handler.
func NewFavoriteHandler(cars *service.CarService) *FavoriteHandler {
	return &FavoriteHandler{cars: cars}
}

// ListIDs handles GET /api/v1/me/favorites.
func (h *FavoriteHandler) ListIDs(c *gin.Context) {
	ids, err := h.cars.FavoriteIDs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, ids)
}

// ListCars handles GET /api/v1/me/favorites/cars.
func (h *FavoriteHandler) ListCars(c *gin.Context) {
	cars, err := h.cars.FavoriteCars(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

// Toggle handles POST /api/v1/favorites/:carID.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	favorited, err := h.cars.ToggleFavorite(c.Request.Context(), middleware.UserID(c), c.Param("carID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}
