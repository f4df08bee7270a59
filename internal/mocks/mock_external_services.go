package mocks

import (
	"context"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// MockWeatherService implements domain.WeatherService for testing
type MockWeatherService struct {
	CurrentFunc  func(ctx context.Context, location string) (*domain.CurrentWeather, error)
	ForecastFunc func(ctx context.Context, location string) (*domain.Forecast, error)
}

// Current returns current conditions
func (m *MockWeatherService) Current(ctx context.Context, location string) (*domain.CurrentWeather, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, location)
	}
	return nil, domain.ErrLocationNotFound
}

// Forecast returns a forecast
func (m *MockWeatherService) Forecast(ctx context.Context, location string) (*domain.Forecast, error) {
	if m.ForecastFunc != nil {
		return m.ForecastFunc(ctx, location)
	}
	return nil, domain.ErrLocationNotFound
}

// MockTranslationService implements domain.TranslationService for testing
type MockTranslationService struct {
	TranslateFunc func(ctx context.Context, text, sourceLanguage, targetLanguage string) (*domain.Translation, error)
}

// Translate translates text
func (m *MockTranslationService) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (*domain.Translation, error) {
	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, sourceLanguage, targetLanguage)
	}
	return &domain.Translation{
		OriginalText:   text,
		TranslatedText: text,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	}, nil
}

// MockAIChatService implements domain.AIChatService for testing
type MockAIChatService struct {
	CompleteFunc func(ctx context.Context, message, imageURL string) (string, error)
}

// Complete returns an assistant reply
func (m *MockAIChatService) Complete(ctx context.Context, message, imageURL string) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, message, imageURL)
	}
	return "mock response", nil
}

// MockChatRepository implements domain.ChatRepository for testing
type MockChatRepository struct {
	AppendFunc        func(ctx context.Context, userID uint, sessionID string, messages []domain.ChatMessage) (*domain.Chat, error)
	FindBySessionFunc func(ctx context.Context, userID uint, sessionID string) (*domain.Chat, error)
	ListSessionsFunc  func(ctx context.Context, userID uint, limit int) ([]domain.ChatSessionSummary, error)
	DeleteSessionFunc func(ctx context.Context, userID uint, sessionID string) error
}

// Append appends messages to a chat session
func (m *MockChatRepository) Append(ctx context.Context, userID uint, sessionID string, messages []domain.ChatMessage) (*domain.Chat, error) {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, userID, sessionID, messages)
	}
	return &domain.Chat{UserID: userID, SessionID: sessionID, Messages: messages}, nil
}

// FindBySession returns one chat session
func (m *MockChatRepository) FindBySession(ctx context.Context, userID uint, sessionID string) (*domain.Chat, error) {
	if m.FindBySessionFunc != nil {
		return m.FindBySessionFunc(ctx, userID, sessionID)
	}
	return nil, domain.ErrChatNotFound
}

// ListSessions lists recent chat sessions
func (m *MockChatRepository) ListSessions(ctx context.Context, userID uint, limit int) ([]domain.ChatSessionSummary, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx, userID, limit)
	}
	return nil, nil
}

// DeleteSession removes a chat session
func (m *MockChatRepository) DeleteSession(ctx context.Context, userID uint, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, userID, sessionID)
	}
	return domain.ErrChatNotFound
}
