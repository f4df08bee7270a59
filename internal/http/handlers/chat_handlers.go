package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// ChatHandlers proxies assistant completions
type ChatHandlers struct {
	aiSvc domain.AIChatService
}

// NewChatHandlers creates new AI chat handlers
func NewChatHandlers(aiSvc domain.AIChatService) *ChatHandlers {
	return &ChatHandlers{aiSvc: aiSvc}
}

// AIChatRequest represents an assistant prompt
type AIChatRequest struct {
	Message  string `json:"message" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// AI forwards a prompt to the model and returns its reply
func (h *ChatHandlers) AI(c *gin.Context) {
	var req AIChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	response, err := h.aiSvc.Complete(c.Request.Context(), req.Message, req.ImageURL)
	if err != nil {
		log.Printf("AI_CHAT_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI chat service error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"aiResponse": response})
}
