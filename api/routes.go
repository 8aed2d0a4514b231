package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the portfolio, auth and health endpoints
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.getHealth())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.authHandler.register())
			r.Post("/login", handlers.authHandler.login())
			r.Get("/validate", handlers.authHandler.validate())

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.authenticate)
				r.Get("/profile", handlers.authHandler.profile())
				r.Get("/dashboard", handlers.authHandler.dashboard())
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/", handlers.portfolioHandler.getDefaultPortfolio())

			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/", handlers.portfolioHandler.getPortfolio())

				r.Get("/about", handlers.portfolioHandler.getAbout())
				r.With(authMiddleware.authenticate, authMiddleware.requirePathUser("userID")).
					Put("/about", handlers.portfolioHandler.updateAbout())

				r.Get("/skills", handlers.portfolioHandler.getSkills())
				r.Get("/skills/{category}", handlers.portfolioHandler.getSkillsByCategory())

				r.Get("/projects", handlers.portfolioHandler.getProjects())
				r.Get("/projects/search", handlers.portfolioHandler.searchProjects())
				r.Get("/projects/{projectID}", handlers.portfolioHandler.getProject())

				r.Get("/achievements", handlers.portfolioHandler.getAchievements())
				r.Get("/languages", handlers.portfolioHandler.getLanguages())
				r.Get("/contact", handlers.portfolioHandler.getContact())
				r.Get("/stats", handlers.portfolioHandler.getStats())
			})
		})
	})
}
