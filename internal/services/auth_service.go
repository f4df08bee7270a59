package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	resetRepo       domain.ResetTokenRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	resetSvc        domain.ResetTokenService
	notificationSvc domain.NotificationService
	resetTTL        time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	resetRepo domain.ResetTokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	resetSvc domain.ResetTokenService,
	notificationSvc domain.NotificationService,
	resetTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		resetRepo:       resetRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		resetSvc:        resetSvc,
		notificationSvc: notificationSvc,
		resetTTL:        resetTTL,
	}
}

// Register implements domain.AuthService. Uniqueness is enforced by the
// store; duplicate failures arrive already resolved to the colliding field.
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password string) (*domain.AuthResult, error) {
	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		LastLogin:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login implements domain.AuthService. Unknown email, wrong password and
// deactivated accounts all collapse into the same credential failure so
// the endpoint cannot be used to enumerate accounts.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = now

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
	return s.userRepo.UpdateProfile(ctx, userID, upd)
}

// ForgotPassword implements domain.AuthService. Only the hash of the reset
// token is persisted; the plaintext goes out through the notification
// channel and is otherwise discarded. Delivery failures are logged, not
// surfaced, since the token is already live.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	plaintext, hash, err := s.resetSvc.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.resetRepo.Store(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	body := fmt.Sprintf(
		"You requested a password reset. Use this token within %d minutes: %s",
		int(s.resetTTL.Minutes()), plaintext,
	)
	if err := s.notificationSvc.SendEmail(user.Email, "Password Reset Request", body); err != nil {
		log.Printf("PASSWORD_RESET_EMAIL_FAILED: user_id=%d error=%v timestamp=%s",
			user.ID, err, time.Now().UTC().Format(time.RFC3339))
	}

	log.Printf("PASSWORD_RESET_REQUESTED: user_id=%d timestamp=%s",
		user.ID, time.Now().UTC().Format(time.RFC3339))

	return nil
}

// ResetPassword implements domain.AuthService. Consumption is single-use:
// a second call with the same token fails identically to an unknown one.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.resetRepo.Consume(ctx, s.resetSvc.Hash(token))
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			return domain.ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to consume reset token: %w", err)
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Printf("PASSWORD_RESET: user_id=%d timestamp=%s",
		userID, time.Now().UTC().Format(time.RFC3339))

	return nil
}
