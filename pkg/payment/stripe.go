package payment

import (
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/price"
	"github.com/stripe/stripe-go/v74/product"
	"github.com/stripe/stripe-go/v74/webhook"
)

type StripeService struct {
	secretKey     string
	webhookSecret string
}

func NewStripeService(secretKey, webhookSecret string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		secretKey:     secretKey,
		webhookSecret: webhookSecret,
	}
}

func (s *StripeService) CreateProduct(params *stripe.ProductParams) (*stripe.Product, error) {
	return product.New(params)
}

func (s *StripeService) CreatePrice(params *stripe.PriceParams) (*stripe.Price, error) {
	return price.New(params)
}

func (s *StripeService) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// ConstructEvent verifies the Stripe-Signature header against the raw payload.
func (s *StripeService) ConstructEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	// API version mismatch'i ignore et
	return webhook.ConstructEventWithOptions(payload, signatureHeader, s.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
}
