package payment

import (
	"errors"

	"github.com/stripe/stripe-go/v74"
)

type ErrorKind int

const (
	ErrorKindOther ErrorKind = iota
	ErrorKindCard
	ErrorKindInvalidRequest
	ErrorKindAPI
)

// ClassifyError reports which Stripe error family err belongs to. Errors that
// did not come from the Stripe API are ErrorKindOther.
func ClassifyError(err error) ErrorKind {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return ErrorKindOther
	}

	switch stripeErr.Type {
	case stripe.ErrorTypeCard:
		return ErrorKindCard
	case stripe.ErrorTypeInvalidRequest:
		return ErrorKindInvalidRequest
	case stripe.ErrorTypeAPI:
		return ErrorKindAPI
	}
	return ErrorKindOther
}
