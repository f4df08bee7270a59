package aichat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	model          = "qwen/qwen2.5-vl-32b-instruct:free"
)

// Service implements domain.AIChatService against OpenRouter
type Service struct {
	apiKey     string
	siteURL    string
	siteName   string
	baseURL    string
	httpClient *http.Client
}

// NewService creates a new AI chat service. baseURL is overridable for
// tests; empty means the real API.
func NewService(apiKey, siteURL, siteName, baseURL string) *Service {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Service{
		apiKey:     apiKey,
		siteURL:    siteURL,
		siteName:   siteName,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete implements domain.AIChatService
func (s *Service) Complete(ctx context.Context, message, imgURL string) (string, error) {
	parts := []contentPart{{Type: "text", Text: message}}
	if imgURL != "" {
		parts = append(parts, contentPart{Type: "image_url", ImageURL: &imageURL{URL: imgURL}})
	}

	body, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: parts}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", s.siteURL)
	req.Header.Set("X-Title", s.siteName)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai chat upstream returned status %d", resp.StatusCode)
	}

	var data chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode ai chat response: %w", err)
	}
	if len(data.Choices) == 0 {
		return "", fmt.Errorf("ai chat response contained no choices")
	}

	return data.Choices[0].Message.Content, nil
}
