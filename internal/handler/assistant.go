package handler

import (
	"net/http"

	"carrosusados/internal/model"
	"carrosusados/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the conversational search assistant.
type AssistantHandler struct {
	assistant *service.Assistant
}

// NewAssistantHandler creates the assistant handler.
func NewAssistantHandler(assistant *service.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat handles POST /api/v1/assistant.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req model.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// The pipeline never surfaces raw failures; a broken model call
	// degrades to a fallback reply inside the service.
	resp := h.assistant.Chat(c.Request.Context(), req.Message, req.History)
	c.JSON(http.StatusOK, resp)
}
