package api

import "github.com/rpupo63/portfolio-content-api/services"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authService      *services.AuthService
	portfolioHandler portfolioHandler
	authHandler      authHandler
	healthHandler    healthHandler
}

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error     string   `json:"error"`
	Status    string   `json:"status"`
	Field     string   `json:"field,omitempty"`
	Details   string   `json:"details,omitempty"`
	Available []string `json:"available,omitempty"`
	Cause     string   `json:"cause,omitempty"`
}
