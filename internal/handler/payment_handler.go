package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/stripe-memberships/internal/controller"
	"github.com/sefazor/stripe-memberships/internal/models"
	"github.com/sefazor/stripe-memberships/internal/service"
	"github.com/sefazor/stripe-memberships/pkg/payment"
	"github.com/sefazor/stripe-memberships/pkg/utils"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

const (
	msgProductMissingFields = "Faltan datos requeridos: nombre, precio y tipo_pago son obligatorios"
	msgProductInvalidPrice  = "El precio debe ser un número positivo"
	msgProductInvalidType   = `tipo_pago debe ser "pago_unico" o "suscripcion"`
	msgProductInvalidPeriod = `periodicidad debe ser "day", "week", "month" o "year"`
	msgPriceIDRequired      = "stripe_price_id es requerido"

	msgCardError          = "Error en la tarjeta de crédito"
	msgInvalidPaymentData = "Datos de pago inválidos"
	msgStripeServerError  = "Error en el servidor de Stripe"

	msgInvalidCheckoutData     = "Datos de checkout inválidos"
	msgCheckoutError           = "Error al crear sesión de checkout"
	msgInvalidSubscriptionData = "Datos de suscripción inválidos"
	msgSubscriptionError       = "Error al crear sesión de suscripción"

	msgMissingWebhookData = "Faltan datos clave para activar membresía"
	msgUserNotFound       = "Usuario no encontrado"
	msgMembershipInsert   = "Error insertando membresía"
)

// WebhookVerifier checks a Stripe-Signature header against the raw body.
type WebhookVerifier interface {
	ConstructEvent(payload []byte, signatureHeader string) (stripe.Event, error)
}

type PaymentHandler struct {
	paymentController *controller.PaymentController
	verifier          WebhookVerifier
	validator         *utils.Validator
	logger            *zap.Logger
	showDetails       bool
}

func NewPaymentHandler(paymentController *controller.PaymentController, verifier WebhookVerifier, validator *utils.Validator, logger *zap.Logger, showDetails bool) *PaymentHandler {
	return &PaymentHandler{
		paymentController: paymentController,
		verifier:          verifier,
		validator:         validator,
		logger:            logger,
		showDetails:       showDetails,
	}
}

func (h *PaymentHandler) CreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		// Unparseable bodies are validated as empty ones.
		req = models.CreateProductRequest{}
	}
	req.DropUnusedFields()

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(productValidationMessage(err)))
	}

	resp, err := h.paymentController.CreateProduct(req)
	if err != nil {
		switch payment.ClassifyError(err) {
		case payment.ErrorKindCard:
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msgCardError))
		case payment.ErrorKindInvalidRequest:
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msgInvalidPaymentData))
		case payment.ErrorKindAPI:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(msgStripeServerError))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(h.errorBody(msgInternalError, err))
	}

	return c.JSON(resp)
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	req, ok := h.parseCheckoutRequest(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msgPriceIDRequired))
	}

	session, err := h.paymentController.CreateCheckoutSession(req)
	if err != nil {
		if payment.ClassifyError(err) == payment.ErrorKindInvalidRequest {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msgInvalidCheckoutData))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(h.errorBody(msgCheckoutError, err))
	}

	return c.JSON(session)
}

func (h *PaymentHandler) CreateSubscriptionSession(c *fiber.Ctx) error {
	req, ok := h.parseCheckoutRequest(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msgPriceIDRequired))
	}

	session, err := h.paymentController.CreateSubscriptionSession(req)
	if err != nil {
		if payment.ClassifyError(err) == payment.ErrorKindInvalidRequest {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msgInvalidSubscriptionData))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(h.errorBody(msgSubscriptionError, err))
	}

	return c.JSON(session)
}

func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	event, err := h.verifier.ConstructEvent(payload, signatureHeader)
	if err != nil {
		h.logger.Warn("webhook signature rejected", zap.Int("payload_length", len(payload)), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(fmt.Sprintf("Webhook Error: %v", err)))
	}

	if _, err := h.paymentController.HandleStripeWebhook(&event, payload); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingWebhookData):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(msgMissingWebhookData))
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(msgUserNotFound))
		case errors.Is(err, service.ErrMembershipInsert):
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(msgMembershipInsert))
		}
		return err
	}

	return c.JSON(models.WebhookAck{Received: true})
}

func (h *PaymentHandler) parseCheckoutRequest(c *fiber.Ctx) (models.CreateCheckoutSessionRequest, bool) {
	var req models.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		return req, false
	}
	return req, true
}

func (h *PaymentHandler) errorBody(message string, err error) models.ErrorBody {
	if h.showDetails {
		return models.ErrorResponseWithDetails(message, err.Error())
	}
	return models.ErrorResponse(message)
}

// productValidationMessage reports the first failing rule, checking presence
// before type and type before allowed values.
func productValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msgProductMissingFields
	}

	failed := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "truthy":
			return msgProductMissingFields
		}
		failed[fe.Field()] = fe.Tag()
	}

	switch {
	case failed["Precio"] != "":
		return msgProductInvalidPrice
	case failed["TipoPago"] != "":
		return msgProductInvalidType
	case failed["Periodicidad"] != "":
		return msgProductInvalidPeriod
	}
	return msgProductMissingFields
}
