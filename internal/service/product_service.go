package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sefazor/stripe-memberships/internal/models"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

type ProductService struct {
	stripe StripeGateway
	logger *zap.Logger
}

func NewProductService(stripe StripeGateway, logger *zap.Logger) *ProductService {
	return &ProductService{
		stripe: stripe,
		logger: logger,
	}
}

// CreateProduct creates a Stripe product and its price. req must already be
// validated.
func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.CreateProductResponse, error) {
	precio := req.Price()

	// 1. Producto
	productParams := &stripe.ProductParams{
		Name: stripe.String(req.Nombre.String()),
	}
	if req.Descripcion != "" {
		productParams.Description = stripe.String(req.Descripcion.String())
	}
	productParams.AddMetadata("tipo_pago", req.TipoPago.String())
	productParams.AddMetadata("precio_original", strconv.FormatFloat(precio, 'f', -1, 64))

	prod, err := s.stripe.CreateProduct(productParams)
	if err != nil {
		s.logger.Error("stripe product creation failed", zap.String("nombre", req.Nombre.String()), zap.Error(err))
		return nil, fmt.Errorf("create product: %w", err)
	}

	// 2. Precio
	priceParams := &stripe.PriceParams{
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(int64(math.Round(precio * 100))),
		Currency:   stripe.String(req.Currency()),
	}
	if req.IsSubscription() {
		priceParams.Recurring = &stripe.PriceRecurringParams{
			Interval: stripe.String(req.Interval()),
		}
	}

	p, err := s.stripe.CreatePrice(priceParams)
	if err != nil {
		s.logger.Error("stripe price creation failed", zap.String("product_id", prod.ID), zap.Error(err))
		return nil, fmt.Errorf("create price: %w", err)
	}

	s.logger.Info("stripe product created",
		zap.String("product_id", prod.ID),
		zap.String("price_id", p.ID),
		zap.String("tipo_pago", req.TipoPago.String()),
	)

	return &models.CreateProductResponse{
		Success:         true,
		StripeProductID: prod.ID,
		StripePriceID:   p.ID,
		PrecioCentavos:  p.UnitAmount,
		Moneda:          string(p.Currency),
	}, nil
}
