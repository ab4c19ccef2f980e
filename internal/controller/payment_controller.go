package controller

import (
	"github.com/sefazor/stripe-memberships/internal/models"
	"github.com/sefazor/stripe-memberships/internal/service"
	"github.com/stripe/stripe-go/v74"
)

type PaymentController struct {
	productService    *service.ProductService
	checkoutService   *service.CheckoutService
	membershipService *service.MembershipService
}

func NewPaymentController(productService *service.ProductService, checkoutService *service.CheckoutService, membershipService *service.MembershipService) *PaymentController {
	return &PaymentController{
		productService:    productService,
		checkoutService:   checkoutService,
		membershipService: membershipService,
	}
}

func (c *PaymentController) CreateProduct(req models.CreateProductRequest) (*models.CreateProductResponse, error) {
	return c.productService.CreateProduct(req)
}

func (c *PaymentController) CreateCheckoutSession(req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	return c.checkoutService.CreatePaymentSession(req)
}

func (c *PaymentController) CreateSubscriptionSession(req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	return c.checkoutService.CreateSubscriptionSession(req)
}

func (c *PaymentController) HandleStripeWebhook(event *stripe.Event, payload []byte) (*models.Membership, error) {
	return c.membershipService.HandleStripeWebhook(event, payload)
}
