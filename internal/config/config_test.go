package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "NODE_ENV", "BASE_URL", "NEXT_PUBLIC_BASE_URL", "CORS_ALLOW_ORIGINS", "RESEND_API_KEY", "R2_ACCOUNT_ID", "ADMIN_JWT_SECRET", "RATE_LIMIT_PER_MINUTE", "PROXY_HEADER"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.EmailEnabled())
	assert.False(t, cfg.ArchiveEnabled())
	assert.False(t, cfg.AdminAuthEnabled())
	assert.Equal(t, 20, cfg.RateLimit)
	assert.Empty(t, cfg.ProxyHeader)
}

func TestLoadConfig_Fallbacks(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("NODE_ENV", "development")
	t.Setenv("BASE_URL", "")
	t.Setenv("NEXT_PUBLIC_BASE_URL", "https://academia.example.com/")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_1")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg := LoadConfig()

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://academia.example.com", cfg.BaseURL)
	assert.Equal(t, "sk_test_1", cfg.Stripe.SecretKey)
	assert.True(t, cfg.DBAutoMigrate)
}

func TestLoadConfig_AppEnvWins(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("NODE_ENV", "development")

	assert.False(t, LoadConfig().IsDevelopment())
}

func TestLoadConfig_RateLimit(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{value: "120", want: 120},
		{value: "0", want: 0},
		{value: "-1", want: 20},
		{value: "many", want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("RATE_LIMIT_PER_MINUTE", tt.value)
			t.Setenv("PROXY_HEADER", "X-Forwarded-For")

			cfg := LoadConfig()
			assert.Equal(t, tt.want, cfg.RateLimit)
			assert.Equal(t, "X-Forwarded-For", cfg.ProxyHeader)
		})
	}
}
