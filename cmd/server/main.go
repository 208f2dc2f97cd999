package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/joho/godotenv"
	accountingapp "github.com/merza/backend/internal/application/accounting"
	billingapp "github.com/merza/backend/internal/application/billing"
	"github.com/merza/backend/internal/application/contact"
	crmapp "github.com/merza/backend/internal/application/crm"
	"github.com/merza/backend/internal/application/reporting"
	"github.com/merza/backend/internal/infrastructure/config"
	"github.com/merza/backend/internal/infrastructure/docstore"
	"github.com/merza/backend/internal/infrastructure/logger"
	"github.com/merza/backend/internal/infrastructure/mail"
	"github.com/merza/backend/internal/infrastructure/metrics"
	"github.com/merza/backend/internal/interfaces/http/handler"
	"github.com/merza/backend/internal/interfaces/http/middleware"
	"github.com/merza/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Optional .env for local development; real deployments use MERZA_* vars
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Merza Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Document store and repositories
	store, err := docstore.New(cfg.Store.Dir)
	if err != nil {
		log.Fatal("Failed to open document store", zap.Error(err))
	}
	leadRepo := docstore.NewLeadRepository(store)
	customerRepo := docstore.NewCustomerRepository(store)
	invoiceRepo := docstore.NewInvoiceRepository(store)
	paymentRepo := docstore.NewPaymentRepository(store)
	accountRepo := docstore.NewAccountRepository(store)

	// Application services
	leadService := crmapp.NewLeadService(leadRepo, customerRepo)
	customerService := crmapp.NewCustomerService(customerRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, customerRepo, log.Named("invoice"))
	paymentService := billingapp.NewPaymentService(paymentRepo, invoiceRepo, log.Named("payment"))
	accountService := accountingapp.NewAccountService(accountRepo)
	dashboardService := reporting.NewDashboardService(leadRepo, customerRepo, invoiceRepo)
	sender := mail.NewSMTPSender(cfg.Mail, log.Named("mail"))
	contactService := contact.NewContactService(sender, log.Named("contact"))

	// HTTP engine and middleware. Request bodies must match the declared
	// structs exactly; unknown JSON keys are rejected with a 400.
	binding.EnableDecoderDisallowUnknownFields = true
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Metrics.Enabled {
		m := metrics.New()
		engine.Use(m.GinMiddleware())
		engine.GET(cfg.Metrics.Path, m.Handler())
	}

	systemHandler := handler.NewSystemHandler(cfg.App.Name)
	engine.GET("/healthz", systemHandler.Health)

	// Routes
	api := &router.APIRoutes{
		Leads:     handler.NewLeadHandler(leadService),
		Customers: handler.NewCustomerHandler(customerService),
		Invoices:  handler.NewInvoiceHandler(invoiceService, dashboardService),
		Payments:  handler.NewPaymentHandler(paymentService),
		Accounts:  handler.NewAccountHandler(accountService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Contact:   handler.NewContactHandler(contactService),
	}
	router.NewRouter(engine).Register(api).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
