package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/translation"
)

// TranslationHandlers proxies translation requests
type TranslationHandlers struct {
	translationSvc domain.TranslationService
}

// NewTranslationHandlers creates new translation handlers
func NewTranslationHandlers(translationSvc domain.TranslationService) *TranslationHandlers {
	return &TranslationHandlers{translationSvc: translationSvc}
}

// TranslateRequest represents a translation request
type TranslateRequest struct {
	Text           string `json:"text" binding:"required,max=5000"`
	TargetLanguage string `json:"targetLanguage" binding:"required,min=2,max=5"`
	SourceLanguage string `json:"sourceLanguage" binding:"omitempty,min=2,max=5"`
}

// Translate translates text into the target language
func (h *TranslationHandlers) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	source := req.SourceLanguage
	if source == "" {
		source = "auto"
	}

	result, err := h.translationSvc.Translate(c.Request.Context(), req.Text, source, req.TargetLanguage)
	if err != nil {
		if errors.Is(err, domain.ErrTranslationNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Translation service not configured. Please set up Google Translate API key.",
			})
			return
		}
		log.Printf("TRANSLATION_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation service error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Languages returns the supported language list
func (h *TranslationHandlers) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": translation.SupportedLanguages()})
}
