package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// ResetTokenServiceImpl implements domain.ResetTokenService
type ResetTokenServiceImpl struct{}

// NewResetTokenService creates a new reset token service
func NewResetTokenService() domain.ResetTokenService {
	return &ResetTokenServiceImpl{}
}

// Generate returns a fresh high-entropy token together with its stored
// form. The plaintext is what the user receives; only the hash is persisted.
func (s *ResetTokenServiceImpl) Generate() (string, string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	plaintext := hex.EncodeToString(bytes)
	return plaintext, s.Hash(plaintext), nil
}

// Hash implements domain.ResetTokenService
func (s *ResetTokenServiceImpl) Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
