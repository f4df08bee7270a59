package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

// ChatRepository defines chat history data access operations
type ChatRepository interface {
	Append(ctx context.Context, userID uint, sessionID string, messages []ChatMessage) (*Chat, error)
	FindBySession(ctx context.Context, userID uint, sessionID string) (*Chat, error)
	ListSessions(ctx context.Context, userID uint, limit int) ([]ChatSessionSummary, error)
	DeleteSession(ctx context.Context, userID uint, sessionID string) error
}

// ResetTokenRepository stores hashed password-reset tokens. At most one
// token is active per user and consumption is single-use.
type ResetTokenRepository interface {
	Store(ctx context.Context, userID uint, tokenHash string) error
	Consume(ctx context.Context, tokenHash string) (uint, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines bearer token operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// ResetTokenService generates and hashes one-time reset tokens. The
// plaintext leaves the process only through the notification channel;
// storage sees the hash alone.
type ResetTokenService interface {
	Generate() (plaintext, hash string, err error)
	Hash(plaintext string) string
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// WeatherService defines weather lookups against the upstream provider
type WeatherService interface {
	Current(ctx context.Context, location string) (*CurrentWeather, error)
	Forecast(ctx context.Context, location string) (*Forecast, error)
}

// TranslationService defines text translation against the upstream provider
type TranslationService interface {
	Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (*Translation, error)
}

// AIChatService defines assistant completions against the upstream provider
type AIChatService interface {
	Complete(ctx context.Context, message, imageURL string) (string, error)
}

// TokenClaims represents verified JWT token claims
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}
