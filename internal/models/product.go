package models

const (
	PaymentTypeOneTime      = "pago_unico"
	PaymentTypeSubscription = "suscripcion"

	DefaultCurrency        = "usd"
	DefaultBillingInterval = "month"
)

// CreateProductRequest keeps Precio untyped so a non-numeric price can be
// reported separately from a missing one.
type CreateProductRequest struct {
	Nombre       Text        `json:"nombre" validate:"required"`
	Descripcion  Text        `json:"descripcion"`
	Precio       interface{} `json:"precio" validate:"required,truthy,positive_number"`
	TipoPago     Text        `json:"tipo_pago" validate:"required,payment_type"`
	Moneda       Text        `json:"moneda"`
	Periodicidad Text        `json:"periodicidad" validate:"omitempty,billing_interval"`
}

// Price returns the validated price. Only call after validation passed.
func (r CreateProductRequest) Price() float64 {
	p, _ := r.Precio.(float64)
	return p
}

func (r CreateProductRequest) Currency() string {
	if r.Moneda == "" {
		return DefaultCurrency
	}
	return string(r.Moneda)
}

func (r CreateProductRequest) Interval() string {
	if r.Periodicidad == "" {
		return DefaultBillingInterval
	}
	return string(r.Periodicidad)
}

func (r CreateProductRequest) IsSubscription() bool {
	return r.TipoPago == PaymentTypeSubscription
}

// DropUnusedFields clears periodicidad on one-time products, where no
// recurring price is created.
func (r *CreateProductRequest) DropUnusedFields() {
	if !r.IsSubscription() {
		r.Periodicidad = ""
	}
}

type CreateProductResponse struct {
	Success         bool   `json:"success"`
	StripeProductID string `json:"stripe_product_id"`
	StripePriceID   string `json:"stripe_price_id"`
	PrecioCentavos  int64  `json:"precio_centavos"`
	Moneda          string `json:"moneda"`
}
