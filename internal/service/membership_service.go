package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sefazor/stripe-memberships/internal/models"
	"github.com/sefazor/stripe-memberships/internal/repository"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventInvoicePaymentSucceeded  = "invoice.payment_succeeded"
)

type MembershipService struct {
	userRepo       *repository.UserRepository
	membershipRepo *repository.MembershipRepository
	notifier       MembershipNotifier
	archiver       EventArchiver
	logger         *zap.Logger
	now            func() time.Time
}

// NewMembershipService builds the webhook reconciler. notifier and archiver
// are optional.
func NewMembershipService(userRepo *repository.UserRepository, membershipRepo *repository.MembershipRepository, notifier MembershipNotifier, archiver EventArchiver, logger *zap.Logger) *MembershipService {
	return &MembershipService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		notifier:       notifier,
		archiver:       archiver,
		logger:         logger,
		now:            time.Now,
	}
}

// HandleStripeWebhook activates a membership for payment events and ignores
// every other event type. The returned membership is nil when nothing was
// recorded.
func (s *MembershipService) HandleStripeWebhook(event *stripe.Event, payload []byte) (*models.Membership, error) {
	s.archive(event, payload)

	eventType := string(event.Type)
	if eventType != EventCheckoutSessionCompleted && eventType != EventInvoicePaymentSucceeded {
		return nil, nil
	}

	var data models.WebhookSessionData
	if event.Data != nil && len(event.Data.Raw) > 0 {
		if err := json.Unmarshal(event.Data.Raw, &data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingWebhookData, err)
		}
	}

	customerEmail := data.Email()
	stripePriceID := data.PriceID()
	tipoProducto := data.Metadata["tipo_producto"]
	productoID := data.Metadata["producto_id"]

	if customerEmail == "" || stripePriceID == "" || tipoProducto == "" || productoID == "" {
		s.logger.Error("missing membership data in webhook",
			zap.String("event_id", event.ID),
			zap.String("customer_email", customerEmail),
			zap.String("stripe_price_id", stripePriceID),
			zap.String("tipo_producto", tipoProducto),
			zap.String("producto_id", productoID),
		)
		return nil, ErrMissingWebhookData
	}

	// 1. Usuario
	user, err := s.userRepo.GetByEmail(customerEmail)
	if err != nil {
		s.logger.Error("user not found", zap.String("email", customerEmail), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUserNotFound, err)
	}

	// 2. Membresía activa
	now := s.now().UTC()
	membership := &models.Membership{
		UserID:        user.ID,
		TipoProducto:  tipoProducto,
		ProductoID:    productoID,
		StripePriceID: stripePriceID,
		Estado:        models.MembershipStatusActive,
		FechaInicio:   now,
		CreatedAt:     now,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		s.logger.Error("membership insert failed", zap.String("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMembershipInsert, err)
	}

	s.logger.Info("membership activated",
		zap.String("email", customerEmail),
		zap.String("user_id", user.ID),
		zap.String("producto_id", productoID),
		zap.String("tipo_producto", tipoProducto),
	)

	if s.notifier != nil {
		if err := s.notifier.SendMembershipActivatedEmail(customerEmail, membership); err != nil {
			s.logger.Warn("membership email not sent", zap.String("email", customerEmail), zap.Error(err))
		}
	}

	return membership, nil
}

// archive stores the signed payload as received; failures never block the
// webhook response.
func (s *MembershipService) archive(event *stripe.Event, payload []byte) {
	if s.archiver == nil || len(payload) == 0 {
		return
	}

	key := fmt.Sprintf("webhooks/%s/%s.json", event.Type, event.ID)
	if err := s.archiver.Upload(key, bytes.NewReader(payload)); err != nil {
		s.logger.Warn("webhook event not archived", zap.String("key", key), zap.Error(err))
	}
}
