package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sefazor/stripe-memberships/internal/models"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

// isoMillis matches the timestamps Stripe dashboards and JS clients produce.
const isoMillis = "2006-01-02T15:04:05.000Z"

var shippingCountries = []string{"US", "CA", "MX", "ES", "AR", "CL", "CO", "PE"}

type CheckoutService struct {
	stripe  StripeGateway
	baseURL string
	logger  *zap.Logger
	now     func() time.Time
}

func NewCheckoutService(stripe StripeGateway, baseURL string, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		stripe:  stripe,
		baseURL: baseURL,
		logger:  logger,
		now:     time.Now,
	}
}

// CreatePaymentSession opens a one-time payment checkout with shipping
// address collection.
func (s *CheckoutService) CreatePaymentSession(req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	createdAt := s.now().UTC().Format(isoMillis)

	params := s.baseParams(req, models.CheckoutModePayment,
		"/pago-exitoso?session_id={CHECKOUT_SESSION_ID}",
		"/pago-cancelado",
	)
	params.Metadata = sessionMetadata(req, "created_at", createdAt)
	params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
		AllowedCountries: stripe.StringSlice(shippingCountries),
	}

	return s.create(params, req)
}

// CreateSubscriptionSession opens a subscription checkout. The client metadata
// is copied onto the subscription as well.
func (s *CheckoutService) CreateSubscriptionSession(req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	createdAt := s.now().UTC().Format(isoMillis)

	params := s.baseParams(req, models.CheckoutModeSubscription,
		"/suscripcion-exitosa?session_id={CHECKOUT_SESSION_ID}",
		"/suscripcion-cancelada",
	)
	params.Metadata = sessionMetadata(req, "created_at", createdAt)

	subscriptionMetadata := stringMetadata(req.Metadata)
	subscriptionMetadata["subscription_created_at"] = createdAt
	params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
		Metadata: subscriptionMetadata,
	}

	return s.create(params, req)
}

func (s *CheckoutService) baseParams(req models.CreateCheckoutSessionRequest, mode models.CheckoutMode, successPath, cancelPath string) *stripe.CheckoutSessionParams {
	successURL := req.SuccessURL.String()
	if successURL == "" {
		successURL = s.baseURL + successPath
	}
	cancelURL := req.CancelURL.String()
	if cancelURL == "" {
		cancelURL = s.baseURL + cancelPath
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(mode)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.StripePriceID.String()),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:               stripe.String(successURL),
		CancelURL:                stripe.String(cancelURL),
		AllowPromotionCodes:      stripe.Bool(true),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto)),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail.String())
	}
	return params
}

func (s *CheckoutService) create(params *stripe.CheckoutSessionParams, req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	session, err := s.stripe.CreateCheckoutSession(params)
	if err != nil {
		s.logger.Error("stripe checkout session creation failed",
			zap.String("mode", stripe.StringValue(params.Mode)),
			zap.String("price_id", req.StripePriceID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.Info("stripe checkout session created",
		zap.String("mode", stripe.StringValue(params.Mode)),
		zap.String("session_id", session.ID),
	)

	return &models.CheckoutSession{
		Success:     true,
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

// sessionMetadata carries the price id so the webhook can always resolve it.
func sessionMetadata(req models.CreateCheckoutSessionRequest, timestampKey, timestamp string) map[string]string {
	metadata := stringMetadata(req.Metadata)
	if metadata["stripe_price_id"] == "" {
		metadata["stripe_price_id"] = req.StripePriceID.String()
	}
	metadata[timestampKey] = timestamp
	return metadata
}

// Stripe metadata values are strings; anything else is sent JSON encoded.
func stringMetadata(in map[string]interface{}) map[string]string {
	out := make(map[string]string, len(in)+2)
	for k, v := range in {
		switch val := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = val
		default:
			encoded, err := json.Marshal(val)
			if err != nil {
				out[k] = fmt.Sprint(val)
				continue
			}
			out[k] = string(encoded)
		}
	}
	return out
}
