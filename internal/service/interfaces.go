package service

import (
	"io"

	"github.com/sefazor/stripe-memberships/internal/models"
	"github.com/stripe/stripe-go/v74"
)

// StripeGateway is the slice of the Stripe API this service calls.
type StripeGateway interface {
	CreateProduct(params *stripe.ProductParams) (*stripe.Product, error)
	CreatePrice(params *stripe.PriceParams) (*stripe.Price, error)
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type MembershipNotifier interface {
	SendMembershipActivatedEmail(email string, membership *models.Membership) error
}

type EventArchiver interface {
	Upload(key string, reader io.Reader) error
}
