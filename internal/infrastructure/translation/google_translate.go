package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

const defaultBaseURL = "https://translation.googleapis.com/language/translate/v2"

// Service implements domain.TranslationService against Google Translate v2
type Service struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewService creates a new translation service. baseURL is overridable for
// tests; empty means the real API.
func NewService(apiKey, baseURL string) *Service {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Service{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate implements domain.TranslationService. sourceLanguage "auto"
// (or empty) lets the upstream detect the language.
func (s *Service) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (*domain.Translation, error) {
	if s.apiKey == "" {
		return nil, domain.ErrTranslationNotConfigured
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("target", targetLanguage)
	params.Set("key", s.apiKey)
	if sourceLanguage != "" && sourceLanguage != "auto" {
		params.Set("source", sourceLanguage)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation upstream returned status %d", resp.StatusCode)
	}

	var data translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode translation response: %w", err)
	}
	if len(data.Data.Translations) == 0 {
		return nil, fmt.Errorf("translation response missing translations")
	}

	detected := data.Data.Translations[0].DetectedSourceLanguage
	if detected == "" {
		detected = sourceLanguage
	}

	return &domain.Translation{
		OriginalText:   text,
		TranslatedText: data.Data.Translations[0].TranslatedText,
		SourceLanguage: detected,
		TargetLanguage: targetLanguage,
	}, nil
}

// SupportedLanguages returns the languages offered to clients
func SupportedLanguages() []domain.Language {
	return []domain.Language{
		{Code: "en", Name: "English"},
		{Code: "es", Name: "Spanish"},
		{Code: "fr", Name: "French"},
		{Code: "de", Name: "German"},
		{Code: "it", Name: "Italian"},
		{Code: "pt", Name: "Portuguese"},
		{Code: "ru", Name: "Russian"},
		{Code: "ja", Name: "Japanese"},
		{Code: "ko", Name: "Korean"},
		{Code: "zh", Name: "Chinese (Simplified)"},
		{Code: "ar", Name: "Arabic"},
		{Code: "hi", Name: "Hindi"},
		{Code: "nl", Name: "Dutch"},
		{Code: "sv", Name: "Swedish"},
		{Code: "no", Name: "Norwegian"},
		{Code: "da", Name: "Danish"},
		{Code: "fi", Name: "Finnish"},
		{Code: "pl", Name: "Polish"},
		{Code: "tr", Name: "Turkish"},
		{Code: "he", Name: "Hebrew"},
		{Code: "th", Name: "Thai"},
		{Code: "vi", Name: "Vietnamese"},
		{Code: "id", Name: "Indonesian"},
		{Code: "ms", Name: "Malay"},
		{Code: "fa", Name: "Persian"},
		{Code: "ur", Name: "Urdu"},
		{Code: "bn", Name: "Bengali"},
		{Code: "ta", Name: "Tamil"},
		{Code: "te", Name: "Telugu"},
		{Code: "mr", Name: "Marathi"},
		{Code: "gu", Name: "Gujarati"},
		{Code: "kn", Name: "Kannada"},
		{Code: "ml", Name: "Malayalam"},
		{Code: "pa", Name: "Punjabi"},
	}
}
