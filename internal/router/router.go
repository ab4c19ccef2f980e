package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sefazor/stripe-memberships/internal/handler"
	"github.com/sefazor/stripe-memberships/internal/middleware"
	"go.uber.org/zap"
)

const webhookPath = "/api/stripe/webhook"

type Options struct {
	AllowOrigins   string
	AdminJWTSecret string
	// RateLimit is requests per minute per client IP; 0 disables the limiter.
	RateLimit      int
	// ProxyHeader, when set, is read for the client IP instead of the
	// connection address.
	ProxyHeader    string
	AccessLogging  bool
}

func NewFiberApp(paymentHandler *handler.PaymentHandler, opts Options, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler(log),
		ProxyHeader:  opts.ProxyHeader,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Stripe-Signature",
		AllowMethods: "POST, OPTIONS",
	}))
	if opts.AccessLogging {
		app.Use(logger.New())
	}
	if opts.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimit,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			// Webhook deliveries are never rate limited.
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), webhookPath)
			},
		}))
	}

	api := app.Group("/api/stripe")
	api.Post("/", middleware.AdminMiddleware(opts.AdminJWTSecret, log), paymentHandler.CreateProduct)
	api.Post("/checkout", paymentHandler.CreateCheckoutSession)
	api.Post("/subscription", paymentHandler.CreateSubscriptionSession)
	api.Post("/webhook", paymentHandler.HandleStripeWebhook)

	return app
}
