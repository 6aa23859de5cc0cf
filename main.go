package main

import (
	"context"
	"log"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"safarsaathi/config"
	"safarsaathi/middleware"
	"safarsaathi/models"
	"safarsaathi/routes"
	"safarsaathi/store"
	"safarsaathi/utils"
	"safarsaathi/worker"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "SAFARSAATHI: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Sentry when a DSN is configured
	if dsn := config.AppConfig.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Printf("Sentry initialization failed: %v", err)
		}
	}

	// Build the credential source and store provider for the configured
	// driver. The provider owns the lazily-initialized store handle.
	source := buildCredentialSource()
	provider, err := buildStoreProvider(source)
	if err != nil {
		logger.Fatalf("Failed to set up lead store: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware for the landing page origins
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: config.AppConfig.AllowedOrigins,
	}))

	// Start the lead notification worker
	mailer := utils.NewLeadMailer(config.AppConfig.SMTP, config.AppConfig.FromEmail, config.AppConfig.SalesEmail)
	notifyCh := make(chan models.Lead, 64)
	notifyWorker := worker.NewNotifyWorker(mailer, notifyCh)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go notifyWorker.Start(ctx)

	// Setup routes
	routes.SetupRoutes(app, provider, source, notifyCh)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

func buildCredentialSource() config.CredentialSource {
	if config.AppConfig.SupabaseURL != "" && config.AppConfig.SupabaseAnonKey != "" {
		return &config.StaticSource{Creds: config.Credentials{
			SupabaseURL:     config.AppConfig.SupabaseURL,
			SupabaseAnonKey: config.AppConfig.SupabaseAnonKey,
		}}
	}
	if config.AppConfig.ConfigEndpointURL != "" {
		return config.NewHTTPSource(config.AppConfig.ConfigEndpointURL)
	}
	// Postgres driver without hosted credentials: /api/config serves 503.
	return &config.StaticSource{}
}

func buildStoreProvider(source config.CredentialSource) (config.LeadStoreProvider, error) {
	switch config.AppConfig.StoreDriver {
	case config.StoreDriverPostgres:
		if err := config.ConnectDB(); err != nil {
			return nil, err
		}
		return &config.FixedProvider{Store: store.NewPostgresStore(config.DB)}, nil
	default:
		return config.NewStoreProvider(source), nil
	}
}
