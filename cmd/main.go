// Package main is the entry point for the book-pricing-service application.
//
// @title           Book Pricing API
// @version         1.0.0
// @description     Prices carts of books from a five volume series, discounting sets of distinct titles.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/book-pricing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if API key authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token. Required if JWT authentication is enabled.
//
// @tag.name        Pricing
// @tag.description Cart pricing and discount table
//
// @tag.name        Audit
// @tag.description Audit log queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/book-pricing-service/config"
	_ "github.com/guttosm/book-pricing-service/docs" // swagger docs
	"github.com/guttosm/book-pricing-service/internal/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application, err := app.InitializeApp(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := application.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
