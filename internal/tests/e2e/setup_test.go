package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	httpx "github.com/dianadeliz/vva-dsm-capstoneproject/internal/http"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/http/handlers"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/http/middleware"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/auth"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/repositories"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/mocks"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/services"
)

const testJWTSecret = "e2e-secret"

// testServer wires the full HTTP stack against in-memory stores
type testServer struct {
	router          *gin.Engine
	redis           *miniredis.Miniredis
	notificationSvc *mocks.MockNotificationService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBChat{},
		&repositories.DBChatMessage{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	userRepo := repositories.NewUserRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	resetRepo := repositories.NewResetTokenRepository(redisClient, 10*time.Minute)

	tokenSvc := auth.NewJWTService(testJWTSecret, "assistantsvc", time.Hour)
	passwordSvc := auth.NewPasswordService()
	resetSvc := auth.NewResetTokenService()
	notificationSvc := mocks.NewMockNotificationService()

	authSvc := services.NewAuthService(
		userRepo, resetRepo, passwordSvc, tokenSvc, resetSvc, notificationSvc, 10*time.Minute,
	)

	ah := handlers.NewAuthHandlers(authSvc)
	uh := handlers.NewUserHandlers(authSvc, chatRepo)
	wh := handlers.NewWeatherHandlers(&mocks.MockWeatherService{})
	th := handlers.NewTranslationHandlers(&mocks.MockTranslationService{})
	ch := handlers.NewChatHandlers(&mocks.MockAIChatService{})
	jwtmw := middleware.NewAuthMW(tokenSvc, userRepo)

	return &testServer{
		router:          httpx.BuildRouter(ah, uh, wh, th, ch, jwtmw),
		redis:           mr,
		notificationSvc: notificationSvc,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return body
}

// register creates an account and returns its bearer token
func (s *testServer) register(t *testing.T, username, email, password string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":        username,
		"email":           email,
		"password":        password,
		"confirmPassword": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed with %d: %s", w.Code, w.Body.String())
	}
	return decode(t, w)["token"].(string)
}

// lastResetToken pulls the plaintext token out of the captured reset email
func (s *testServer) lastResetToken(t *testing.T) string {
	t.Helper()

	if len(s.notificationSvc.SentEmails) == 0 {
		t.Fatal("no reset email was sent")
	}
	body := s.notificationSvc.SentEmails[len(s.notificationSvc.SentEmails)-1].Body
	idx := strings.LastIndex(body, ": ")
	if idx < 0 {
		t.Fatalf("unexpected email body %q", body)
	}
	return strings.TrimSpace(body[idx+2:])
}
