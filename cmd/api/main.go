package main

import (
	"log"

	"rental_backend/internal/adapter/http/routes"
	"rental_backend/internal/infrastructure/config"
	"rental_backend/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Rental Backend API
// @version         1.0
// @description     Sales-to-cash pipeline of an equipment rental business: enquiries, quotations, sales orders, contracts, invoices, inventory, warehouse and CRM.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
