package handler

import (
	"errors"
	"net/http"

	"carrosusados/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps a classified service error to its status code. All
// error bodies are a single {"error": string} object.
func respondError(c *gin.Context, err error) {
	var se *service.Error
	if errors.As(err, &se) {
		c.JSON(statusFor(se.Kind), gin.H{"error": se.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindInvalidInput, service.KindUpstreamFetch:
		return http.StatusBadRequest
	case service.KindForbidden:
		return http.StatusForbidden
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
