package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sefazor/stripe-memberships/internal/handler"
	"github.com/sefazor/stripe-memberships/internal/router"
	"github.com/sefazor/stripe-memberships/pkg/payment"
	"github.com/sefazor/stripe-memberships/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRateLimitedApp(t *testing.T, limit int) func(path, clientIP string) int {
	t.Helper()
	log := zap.NewNop()
	// Every request below is rejected before it reaches the controller.
	paymentHandler := handler.NewPaymentHandler(nil, payment.NewStripeService("sk_test_123", "whsec_test"), utils.NewValidator(), log, false)
	app := router.NewFiberApp(paymentHandler, router.Options{
		AllowOrigins: "*",
		RateLimit:    limit,
		ProxyHeader:  "X-Forwarded-For",
	}, log)

	return func(path, clientIP string) int {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", clientIP)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}
}

func TestRateLimit_PerForwardedClient(t *testing.T) {
	do := newRateLimitedApp(t, 2)

	assert.Equal(t, http.StatusBadRequest, do("/api/stripe/checkout", "203.0.113.10"))
	assert.Equal(t, http.StatusBadRequest, do("/api/stripe/subscription", "203.0.113.10"))
	assert.Equal(t, http.StatusTooManyRequests, do("/api/stripe/checkout", "203.0.113.10"))

	assert.Equal(t, http.StatusBadRequest, do("/api/stripe/checkout", "198.51.100.7"))
}

func TestRateLimit_WebhookExempt(t *testing.T) {
	do := newRateLimitedApp(t, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusBadRequest, do("/api/stripe/webhook", "203.0.113.10"))
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	do := newRateLimitedApp(t, 0)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusBadRequest, do("/api/stripe/checkout", "203.0.113.10"))
	}
}
