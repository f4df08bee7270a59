package mocks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// MockResetTokenRepository implements domain.ResetTokenRepository for testing
type MockResetTokenRepository struct {
	StoreFunc   func(ctx context.Context, userID uint, tokenHash string) error
	ConsumeFunc func(ctx context.Context, tokenHash string) (uint, error)
}

// NewMockResetTokenRepository creates a new MockResetTokenRepository
func NewMockResetTokenRepository() *MockResetTokenRepository {
	return &MockResetTokenRepository{}
}

// Store persists a reset token hash
func (m *MockResetTokenRepository) Store(ctx context.Context, userID uint, tokenHash string) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, userID, tokenHash)
	}
	return nil
}

// Consume redeems a reset token hash
func (m *MockResetTokenRepository) Consume(ctx context.Context, tokenHash string) (uint, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, tokenHash)
	}
	return 0, domain.ErrResetTokenInvalid
}

// MockResetTokenService implements domain.ResetTokenService for testing
type MockResetTokenService struct {
	GenerateFunc func() (string, string, error)
	HashFunc     func(plaintext string) string
}

// NewMockResetTokenService creates a new MockResetTokenService
func NewMockResetTokenService() *MockResetTokenService {
	return &MockResetTokenService{}
}

// Generate produces a plaintext token and its hash
func (m *MockResetTokenService) Generate() (string, string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "plain-reset-token", m.Hash("plain-reset-token"), nil
}

// Hash hashes a plaintext token the way the real service does
func (m *MockResetTokenService) Hash(plaintext string) string {
	if m.HashFunc != nil {
		return m.HashFunc(plaintext)
	}
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
