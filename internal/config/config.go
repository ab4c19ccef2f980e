package config

import (
	"os"
	"strconv"
	"strings"
)

const defaultRateLimit = 20

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type Config struct {
	Port             string
	Env              string
	BaseURL          string
	DatabaseURL      string
	DBAutoMigrate    bool
	CORSAllowOrigins string
	AdminJWTSecret   string
	RateLimit        int
	ProxyHeader      string
	Stripe           StripeConfig
	Email            EmailConfig
	R2               R2Config
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = firstEnv("APP_ENV", "NODE_ENV")
	cfg.BaseURL = strings.TrimRight(firstEnv("BASE_URL", "NEXT_PUBLIC_BASE_URL"), "/")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DBAutoMigrate = os.Getenv("DB_AUTO_MIGRATE") == "true"
	cfg.CORSAllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	cfg.AdminJWTSecret = os.Getenv("ADMIN_JWT_SECRET")
	cfg.RateLimit = getEnvInt("RATE_LIMIT_PER_MINUTE", defaultRateLimit)
	cfg.ProxyHeader = os.Getenv("PROXY_HEADER")

	// Stripe config
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")

	// Resend config
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")

	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) EmailEnabled() bool {
	return c.Email.ResendAPIKey != "" && c.Email.FromAddress != ""
}

func (c *Config) ArchiveEnabled() bool {
	return c.R2.AccountID != "" && c.R2.Bucket != ""
}

func (c *Config) AdminAuthEnabled() bool {
	return c.AdminJWTSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
