package service

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/sefazor/stripe-memberships/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeStripe struct {
	productParams *stripe.ProductParams
	priceParams   *stripe.PriceParams
	sessionParams *stripe.CheckoutSessionParams

	productErr error
	priceErr   error
	sessionErr error
}

func (f *fakeStripe) CreateProduct(params *stripe.ProductParams) (*stripe.Product, error) {
	f.productParams = params
	if f.productErr != nil {
		return nil, f.productErr
	}
	return &stripe.Product{ID: "prod_123"}, nil
}

func (f *fakeStripe) CreatePrice(params *stripe.PriceParams) (*stripe.Price, error) {
	f.priceParams = params
	if f.priceErr != nil {
		return nil, f.priceErr
	}
	return &stripe.Price{
		ID:         "price_123",
		UnitAmount: stripe.Int64Value(params.UnitAmount),
		Currency:   stripe.Currency(stripe.StringValue(params.Currency)),
	}, nil
}

func (f *fakeStripe) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.sessionParams = params
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	return &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"}, nil
}

type fakeNotifier struct {
	emails []string
	err    error
}

func (f *fakeNotifier) SendMembershipActivatedEmail(email string, membership *models.Membership) error {
	f.emails = append(f.emails, email)
	return f.err
}

type fakeArchiver struct {
	objects map[string][]byte
	err     error
}

func (f *fakeArchiver) Upload(key string, reader io.Reader) error {
	if f.err != nil {
		return f.err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return err
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[key] = buf.Bytes()
	return nil
}

var errBoom = errors.New("boom")

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Membership{})
	require.NoError(t, err)

	return db
}

func stringValues(values []*string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, stripe.StringValue(v))
	}
	return out
}
