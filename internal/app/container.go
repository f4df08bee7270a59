package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/config"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/aichat"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/auth"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/database"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/notifications"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/repositories"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/translation"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/infrastructure/weather"
	"github.com/dianadeliz/vva-dsm-capstoneproject/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo       domain.UserRepository
	ChatRepo       domain.ChatRepository
	ResetTokenRepo domain.ResetTokenRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	ResetTokenSvc   domain.ResetTokenService
	NotificationSvc domain.NotificationService
	WeatherSvc      domain.WeatherService
	TranslationSvc  domain.TranslationService
	AIChatSvc       domain.AIChatService
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	return database.Ping(context.Background(), c.RedisClient)
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.ChatRepo = repositories.NewChatRepository(c.DB)
	c.ResetTokenRepo = repositories.NewResetTokenRepository(c.RedisClient, c.Config.ResetTokenTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.ResetTokenSvc = auth.NewResetTokenService()
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	c.WeatherSvc = weather.NewService(c.Config.WeatherAPIKey, "")
	c.TranslationSvc = translation.NewService(c.Config.TranslateAPIKey, "")
	c.AIChatSvc = aichat.NewService(
		c.Config.OpenRouterAPIKey,
		c.Config.SiteURL,
		c.Config.SiteName,
		"",
	)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.ResetTokenRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.ResetTokenSvc,
		c.NotificationSvc,
		c.Config.ResetTokenTTL,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
