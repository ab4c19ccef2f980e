package models

type CheckoutMode string

const (
	CheckoutModePayment      CheckoutMode = "payment"
	CheckoutModeSubscription CheckoutMode = "subscription"
)

// CreateCheckoutSessionRequest is shared by the one-time and subscription
// checkout endpoints.
type CreateCheckoutSessionRequest struct {
	StripePriceID Text                   `json:"stripe_price_id" validate:"required"`
	SuccessURL    Text                   `json:"success_url"`
	CancelURL     Text                   `json:"cancel_url"`
	CustomerEmail Text                   `json:"customer_email"`
	Metadata      map[string]interface{} `json:"metadata"`
}

type CheckoutSession struct {
	Success     bool   `json:"success"`
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}
