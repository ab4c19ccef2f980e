package service

import (
	"testing"
	"time"

	"github.com/sefazor/stripe-memberships/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

func newTestCheckoutService(gw StripeGateway) *CheckoutService {
	svc := NewCheckoutService(gw, "https://academia.example.com", zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2025, 7, 1, 12, 30, 45, 123000000, time.FixedZone("CST", -6*3600))
	}
	return svc
}

func TestCheckoutService_CreatePaymentSession(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		gw := &fakeStripe{}
		svc := newTestCheckoutService(gw)

		session, err := svc.CreatePaymentSession(models.CreateCheckoutSessionRequest{StripePriceID: "price_abc"})
		require.NoError(t, err)
		assert.Equal(t, &models.CheckoutSession{
			Success:     true,
			SessionID:   "cs_test_123",
			CheckoutURL: "https://checkout.stripe.com/c/pay/cs_test_123",
		}, session)

		p := gw.sessionParams
		assert.Equal(t, "payment", stripe.StringValue(p.Mode))
		assert.Equal(t, []string{"card"}, stringValues(p.PaymentMethodTypes))
		require.Len(t, p.LineItems, 1)
		assert.Equal(t, "price_abc", stripe.StringValue(p.LineItems[0].Price))
		assert.Equal(t, int64(1), stripe.Int64Value(p.LineItems[0].Quantity))
		assert.Equal(t, "https://academia.example.com/pago-exitoso?session_id={CHECKOUT_SESSION_ID}", stripe.StringValue(p.SuccessURL))
		assert.Equal(t, "https://academia.example.com/pago-cancelado", stripe.StringValue(p.CancelURL))
		assert.Nil(t, p.CustomerEmail)
		assert.True(t, stripe.BoolValue(p.AllowPromotionCodes))
		assert.Equal(t, "auto", stripe.StringValue(p.BillingAddressCollection))
		require.NotNil(t, p.ShippingAddressCollection)
		assert.Equal(t, []string{"US", "CA", "MX", "ES", "AR", "CL", "CO", "PE"}, stringValues(p.ShippingAddressCollection.AllowedCountries))
		assert.Nil(t, p.SubscriptionData)
		assert.Equal(t, map[string]string{
			"created_at":      "2025-07-01T18:30:45.123Z",
			"stripe_price_id": "price_abc",
		}, p.Metadata)
	})

	t.Run("client values win", func(t *testing.T) {
		gw := &fakeStripe{}
		svc := newTestCheckoutService(gw)

		_, err := svc.CreatePaymentSession(models.CreateCheckoutSessionRequest{
			StripePriceID: "price_abc",
			SuccessURL:    "https://shop.example.com/ok",
			CancelURL:     "https://shop.example.com/ko",
			CustomerEmail: "ana@example.com",
			Metadata: map[string]interface{}{
				"stripe_price_id": "price_from_client",
				"producto_id":     float64(42),
				"tipo_producto":   "curso",
				"flags":           []interface{}{"a", "b"},
			},
		})
		require.NoError(t, err)

		p := gw.sessionParams
		assert.Equal(t, "https://shop.example.com/ok", stripe.StringValue(p.SuccessURL))
		assert.Equal(t, "https://shop.example.com/ko", stripe.StringValue(p.CancelURL))
		assert.Equal(t, "ana@example.com", stripe.StringValue(p.CustomerEmail))
		assert.Equal(t, "price_from_client", p.Metadata["stripe_price_id"])
		assert.Equal(t, "42", p.Metadata["producto_id"])
		assert.Equal(t, "curso", p.Metadata["tipo_producto"])
		assert.Equal(t, `["a","b"]`, p.Metadata["flags"])
	})

	t.Run("stripe error", func(t *testing.T) {
		gw := &fakeStripe{sessionErr: &stripe.Error{Type: stripe.ErrorTypeInvalidRequest}}
		svc := newTestCheckoutService(gw)

		_, err := svc.CreatePaymentSession(models.CreateCheckoutSessionRequest{StripePriceID: "price_missing"})
		var stripeErr *stripe.Error
		assert.ErrorAs(t, err, &stripeErr)
	})
}

func TestCheckoutService_CreateSubscriptionSession(t *testing.T) {
	gw := &fakeStripe{}
	svc := newTestCheckoutService(gw)

	_, err := svc.CreateSubscriptionSession(models.CreateCheckoutSessionRequest{
		StripePriceID: "price_sub",
		Metadata:      map[string]interface{}{"producto_id": "7"},
	})
	require.NoError(t, err)

	p := gw.sessionParams
	assert.Equal(t, "subscription", stripe.StringValue(p.Mode))
	assert.Equal(t, "https://academia.example.com/suscripcion-exitosa?session_id={CHECKOUT_SESSION_ID}", stripe.StringValue(p.SuccessURL))
	assert.Equal(t, "https://academia.example.com/suscripcion-cancelada", stripe.StringValue(p.CancelURL))
	assert.Nil(t, p.ShippingAddressCollection)
	assert.Equal(t, map[string]string{
		"producto_id":     "7",
		"stripe_price_id": "price_sub",
		"created_at":      "2025-07-01T18:30:45.123Z",
	}, p.Metadata)

	require.NotNil(t, p.SubscriptionData)
	assert.Equal(t, map[string]string{
		"producto_id":             "7",
		"subscription_created_at": "2025-07-01T18:30:45.123Z",
	}, p.SubscriptionData.Metadata)
}
