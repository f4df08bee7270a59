package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	TokenTTL string `yaml:"token_ttl"`
}

type ResetConfig struct {
	TokenTTL string `yaml:"token_ttl"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type WeatherConfig struct {
	APIKey string `yaml:"api_key"`
}

type TranslationConfig struct {
	APIKey string `yaml:"api_key"`
}

type OpenRouterConfig struct {
	APIKey   string `yaml:"api_key"`
	SiteURL  string `yaml:"site_url"`
	SiteName string `yaml:"site_name"`
}

type ConfigFile struct {
	App         AppConfig         `yaml:"app"`
	Database    DatabaseConfig    `yaml:"database"`
	Redis       RedisConfig       `yaml:"redis"`
	JWT         JWTConfig         `yaml:"jwt"`
	Reset       ResetConfig       `yaml:"reset"`
	Twilio      TwilioConfig      `yaml:"twilio"`
	Weather     WeatherConfig     `yaml:"weather"`
	Translation TranslationConfig `yaml:"translation"`
	OpenRouter  OpenRouterConfig  `yaml:"openrouter"`
}

// Config is built once at startup and injected everywhere; nothing reads
// the environment after Load returns.
type Config struct {
	Port             string
	GinMode          string
	DSN              string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	JWTSecret        string
	JWTIssuer        string
	TokenTTL         time.Duration
	ResetTokenTTL    time.Duration
	TwilioSID        string
	TwilioToken      string
	TwilioFrom       string
	WeatherAPIKey    string
	TranslateAPIKey  string
	OpenRouterAPIKey string
	SiteURL          string
	SiteName         string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	tokenTTL, err := time.ParseDuration(env("TOKEN_TTL", configFile.JWT.TokenTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid token TTL: %w", err)
	}

	resetTTL, err := time.ParseDuration(env("RESET_TOKEN_TTL", configFile.Reset.TokenTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	cfg := &Config{
		Port:             env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:          env("GIN_MODE", configFile.App.GinMode),
		DSN:              env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:        env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:    env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:          redisDB,
		JWTSecret:        env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:        env("JWT_ISSUER", configFile.JWT.Issuer),
		TokenTTL:         tokenTTL,
		ResetTokenTTL:    resetTTL,
		TwilioSID:        env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:      env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:       env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		WeatherAPIKey:    env("WEATHER_API_KEY", configFile.Weather.APIKey),
		TranslateAPIKey:  env("GOOGLE_TRANSLATE_API_KEY", configFile.Translation.APIKey),
		OpenRouterAPIKey: env("OPENROUTER_API_KEY", configFile.OpenRouter.APIKey),
		SiteURL:          env("SITE_URL", configFile.OpenRouter.SiteURL),
		SiteName:         env("SITE_NAME", configFile.OpenRouter.SiteName),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
