package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/mocks"
)

func setupRouter(tokenSvc domain.TokenService, userRepo domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokenSvc, userRepo), func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": user.ID})
	})
	return r
}

func activeUser() *domain.User {
	return &domain.User{
		ID:        1,
		Username:  "testuser",
		Email:     "test@example.com",
		IsActive:  true,
		LastLogin: time.Now(),
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository)
		expectedStatus int
		expectedError  string
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer token_1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "raw token without scheme",
			authHeader: "token_1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "lowercase scheme",
			authHeader: "bearer token_1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "surrounding whitespace",
			authHeader: "  Bearer   token_1  ",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return activeUser(), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authHeader:     "",
			setupMocks:     func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Access denied. No token provided.",
		},
		{
			name:           "scheme without credential",
			authHeader:     "Bearer ",
			setupMocks:     func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Access denied. No token provided.",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenInvalid
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token.",
		},
		{
			name:       "malformed token",
			authHeader: "Bearer not-a-jwt",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenMalformed
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token.",
		},
		{
			name:       "expired token",
			authHeader: "Bearer token_1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token expired.",
		},
		{
			name:       "valid token but user deleted",
			authHeader: "Bearer token_1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token. User not found.",
		},
		{
			name:       "deactivated account",
			authHeader: "Bearer token_1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					user := activeUser()
					user.IsActive = false
					return user, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Account is deactivated.",
		},
		{
			name:       "store failure",
			authHeader: "Bearer token_1",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Authentication error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(tokenSvc, userRepo)
			r := setupRouter(tokenSvc, userRepo)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if tt.expectedError != "" {
				if body["error"] != tt.expectedError {
					t.Errorf("expected error %q, got %q", tt.expectedError, body["error"])
				}
				return
			}
			if body["userId"] != float64(1) {
				t.Errorf("expected userId 1, got %v", body["userId"])
			}
		})
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"empty", "", ""},
		{"bearer with token", "Bearer abc123", "abc123"},
		{"lowercase bearer", "bearer abc123", "abc123"},
		{"uppercase bearer", "BEARER abc123", "abc123"},
		{"raw token", "abc123", "abc123"},
		{"bearer alone", "Bearer", ""},
		{"bearer with trailing space only", "Bearer   ", ""},
		{"extra whitespace", "   Bearer \t abc123  ", "abc123"},
		{"token starting with bearer letters", "bearerabc", "bearerabc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractToken(tt.header); got != tt.expected {
				t.Errorf("extractToken(%q) = %q, want %q", tt.header, got, tt.expected)
			}
		})
	}
}

func TestCurrentUser_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if CurrentUser(c) != nil {
		t.Error("expected nil principal on bare context")
	}
}
