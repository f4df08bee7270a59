package mocks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate mints a token
func (m *MockTokenService) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	// Default behavior: recognizable fake token
	return fmt.Sprintf("token_%d", userID), nil
}

// Validate verifies a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: accept tokens produced by the default Generate
	if id, ok := strings.CutPrefix(token, "token_"); ok {
		userID, err := strconv.ParseUint(id, 10, 32)
		if err == nil {
			now := time.Now()
			return &domain.TokenClaims{
				UserID:    uint(userID),
				IssuedAt:  now.Unix(),
				ExpiresAt: now.Add(time.Hour).Unix(),
			}, nil
		}
	}
	return nil, domain.ErrTokenInvalid
}
