package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MembershipStatusActive = "activa"

// Membership is a row of "membresias_usuarios".
type Membership struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID        string    `json:"user_id" gorm:"column:user_id;not null;index"`
	TipoProducto  string    `json:"tipo_producto" gorm:"column:tipo_producto;not null"`
	ProductoID    string    `json:"producto_id" gorm:"column:producto_id;not null"`
	StripePriceID string    `json:"stripe_price_id" gorm:"column:stripe_price_id;not null"`
	Estado        string    `json:"estado" gorm:"column:estado;not null;default:'activa'"`
	FechaInicio   time.Time `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Membership) TableName() string {
	return "membresias_usuarios"
}

// BeforeCreate fills the id client side; membresias_usuarios.id is a uuid
// column.
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// WebhookSessionData is the subset of a checkout session or invoice object
// needed to activate a membership.
type WebhookSessionData struct {
	CustomerEmail   string            `json:"customer_email"`
	CustomerDetails *customerDetails  `json:"customer_details"`
	Metadata        map[string]string `json:"metadata"`
	DisplayItems    []displayItem     `json:"display_items"`
}

type customerDetails struct {
	Email string `json:"email"`
}

type displayItem struct {
	Price *struct {
		ID string `json:"id"`
	} `json:"price"`
}

func (d WebhookSessionData) Email() string {
	if d.CustomerEmail != "" {
		return d.CustomerEmail
	}
	if d.CustomerDetails != nil {
		return d.CustomerDetails.Email
	}
	return ""
}

func (d WebhookSessionData) PriceID() string {
	if id := d.Metadata["stripe_price_id"]; id != "" {
		return id
	}
	if id := d.Metadata["price_id"]; id != "" {
		return id
	}
	if len(d.DisplayItems) > 0 && d.DisplayItems[0].Price != nil {
		return d.DisplayItems[0].Price.ID
	}
	return ""
}
