package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserInactive       = errors.New("user account is inactive")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Password reset errors
var (
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
)

// Chat errors
var (
	ErrChatNotFound = errors.New("chat session not found")
)

// External service errors
var (
	ErrWeatherNotConfigured     = errors.New("weather api key not configured")
	ErrWeatherAPIKeyInvalid     = errors.New("weather api key invalid")
	ErrLocationNotFound         = errors.New("location not found")
	ErrTranslationNotConfigured = errors.New("translation api key not configured")
)
