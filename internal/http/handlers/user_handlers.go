package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/http/middleware"
)

// UserHandlers handles profile and chat history requests
type UserHandlers struct {
	authSvc  domain.AuthService
	chatRepo domain.ChatRepository
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(authSvc domain.AuthService, chatRepo domain.ChatRepository) *UserHandlers {
	return &UserHandlers{authSvc: authSvc, chatRepo: chatRepo}
}

// UpdateProfileRequest represents a profile change; both fields optional
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=30,username"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// SaveChatRequest appends to a chat session
type SaveChatRequest struct {
	Message   string `json:"message" binding:"required,max=1000"`
	SessionID string `json:"sessionId" binding:"required"`
	Response  string `json:"response"`
}

func chatPayload(chat *domain.Chat) gin.H {
	messages := make([]gin.H, 0, len(chat.Messages))
	for _, m := range chat.Messages {
		messages = append(messages, gin.H{
			"role":      m.Role,
			"content":   m.Content,
			"timestamp": m.Timestamp,
		})
	}
	return gin.H{
		"sessionId": chat.SessionID,
		"messages":  messages,
		"createdAt": chat.CreatedAt,
		"updatedAt": chat.UpdatedAt,
	}
}

// GetProfile returns the authenticated user's profile
func (h *UserHandlers) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

// UpdateProfile changes username and/or email
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	user := middleware.CurrentUser(c)
	updated, err := h.authSvc.UpdateProfile(c.Request.Context(), user.ID, domain.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		case errors.Is(err, domain.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		default:
			log.Printf("UPDATE_PROFILE_FAILED: user_id=%d error=%v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error updating profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    userPayload(updated),
	})
}

// SaveChat appends a message (and optional assistant response) to a session
func (h *UserHandlers) SaveChat(c *gin.Context) {
	var req SaveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	user := middleware.CurrentUser(c)
	messages := []domain.ChatMessage{{Role: "user", Content: req.Message}}
	if req.Response != "" {
		messages = append(messages, domain.ChatMessage{Role: "assistant", Content: req.Response})
	}

	chat, err := h.chatRepo.Append(c.Request.Context(), user.ID, req.SessionID, messages)
	if err != nil {
		log.Printf("SAVE_CHAT_FAILED: user_id=%d error=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error saving chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Chat saved successfully",
		"chat":    chatPayload(chat),
	})
}

// GetChat returns one chat session's history
func (h *UserHandlers) GetChat(c *gin.Context) {
	user := middleware.CurrentUser(c)
	chat, err := h.chatRepo.FindBySession(c.Request.Context(), user.ID, c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
			return
		}
		log.Printf("GET_CHAT_FAILED: user_id=%d error=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error getting chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"chat": chatPayload(chat)})
}

// ListChatSessions returns the user's most recent sessions
func (h *UserHandlers) ListChatSessions(c *gin.Context) {
	user := middleware.CurrentUser(c)
	sessions, err := h.chatRepo.ListSessions(c.Request.Context(), user.ID, 20)
	if err != nil {
		log.Printf("LIST_CHAT_SESSIONS_FAILED: user_id=%d error=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error getting chat sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// DeleteChat removes a chat session and its messages
func (h *UserHandlers) DeleteChat(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.chatRepo.DeleteSession(c.Request.Context(), user.ID, c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
			return
		}
		log.Printf("DELETE_CHAT_FAILED: user_id=%d error=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error deleting chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat session deleted successfully"})
}
