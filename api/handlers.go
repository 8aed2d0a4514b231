package api

import (
	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, r router) *routeHandlers {
	production := r.settings.IsProduction()

	var seeder *services.TemplateSeeder
	if r.settings.CloneTemplateOnRegister {
		seeder = services.NewTemplateSeeder()
	}
	// config validation guarantees a parseable id
	templateUserID, _ := uuid.Parse(r.settings.TemplateUserID)

	portfolioService := services.NewPortfolioService(database)
	aboutService := services.NewAboutService(database)
	authService := services.NewAuthService(database, r.tokens, r.passwords, seeder, templateUserID)

	return &routeHandlers{
		authService:      authService,
		portfolioHandler: newPortfolioHandler(portfolioService, aboutService, r.settings.DefaultUserID, production),
		authHandler:      newAuthHandler(authService, production),
		healthHandler:    newHealthHandler(database, portfolioService, r.settings.DefaultUserID, r.startupTime, production),
	}
}
