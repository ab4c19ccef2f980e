package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sefazor/stripe-memberships/internal/config"
	"github.com/sefazor/stripe-memberships/internal/controller"
	"github.com/sefazor/stripe-memberships/internal/handler"
	"github.com/sefazor/stripe-memberships/internal/repository"
	"github.com/sefazor/stripe-memberships/internal/router"
	"github.com/sefazor/stripe-memberships/internal/service"
	"github.com/sefazor/stripe-memberships/pkg/database"
	"github.com/sefazor/stripe-memberships/pkg/email"
	"github.com/sefazor/stripe-memberships/pkg/logger"
	"github.com/sefazor/stripe-memberships/pkg/payment"
	"github.com/sefazor/stripe-memberships/pkg/storage"
	"github.com/sefazor/stripe-memberships/pkg/utils"
)

func main() {
	// .env is optional in deployed environments
	envErr := godotenv.Load()

	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if envErr != nil {
		zlog.Debug("no .env file loaded", zap.Error(envErr))
	}

	zlog.Info("stripe key loaded",
		zap.Bool("present", cfg.Stripe.SecretKey != ""),
		zap.Int("length", len(cfg.Stripe.SecretKey)),
	)
	if cfg.Stripe.WebhookSecret == "" {
		zlog.Warn("STRIPE_WEBHOOK_SECRET is not set, every webhook will be rejected")
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database unavailable", zap.Error(err))
	}
	if cfg.DBAutoMigrate {
		if err := database.RunMigrations(db); err != nil {
			zlog.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)

	// Optional collaborators
	var notifier service.MembershipNotifier
	if cfg.EmailEnabled() {
		emailService, err := email.NewEmailService(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.FromName, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize email service", zap.Error(err))
		}
		notifier = emailService
	}

	var archiver service.EventArchiver
	if cfg.ArchiveEnabled() {
		r2Storage, err := storage.NewCloudflareStorage(cfg)
		if err != nil {
			zlog.Fatal("failed to initialize R2 storage", zap.Error(err))
		}
		archiver = r2Storage
	}

	// Stripe service
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)

	// Services
	productService := service.NewProductService(stripeService, zlog)
	checkoutService := service.NewCheckoutService(stripeService, cfg.BaseURL, zlog)
	membershipService := service.NewMembershipService(userRepo, membershipRepo, notifier, archiver, zlog)

	paymentController := controller.NewPaymentController(productService, checkoutService, membershipService)
	paymentHandler := handler.NewPaymentHandler(paymentController, stripeService, utils.NewValidator(), zlog, cfg.IsDevelopment())

	app := router.NewFiberApp(paymentHandler, router.Options{
		AllowOrigins:   cfg.CORSAllowOrigins,
		AdminJWTSecret: cfg.AdminJWTSecret,
		RateLimit:      cfg.RateLimit,
		ProxyHeader:    cfg.ProxyHeader,
		AccessLogging:  true,
	}, zlog)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zlog.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zlog.Error("shutdown failed", zap.Error(err))
		}
	}()

	zlog.Info("listening",
		zap.String("port", cfg.Port),
		zap.Bool("email", notifier != nil),
		zap.Bool("archive", archiver != nil),
		zap.Bool("admin_auth", cfg.AdminAuthEnabled()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
