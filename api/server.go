package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-content-api/auth"
	"github.com/rpupo63/portfolio-content-api/config"
	"github.com/rpupo63/portfolio-content-api/database"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, settings config.Settings) (Server, error) {
	tokens, err := auth.NewTokenService(settings.JWT.Secret, settings.JWT.Expiry, settings.JWT.Issuer)
	if err != nil {
		return Server{}, err
	}

	address := fmt.Sprintf("0.0.0.0:%s", settings.Port) // Bind to 0.0.0.0 for external access
	startupTime := time.Now()

	router := newRouter(database,
		withSettings(settings),
		withTokenService(tokens),
		withStartupTime(startupTime),
	)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  settings.ReadTimeout,
		WriteTimeout: settings.WriteTimeout,
		IdleTimeout:  settings.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	settings    config.Settings
	startupTime time.Time
	tokens      *auth.TokenService
	passwords   *auth.PasswordService
}

func withSettings(s config.Settings) func(*router) {
	return func(r *router) {
		r.settings = s
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withTokenService(tokens *auth.TokenService) func(*router) {
	return func(r *router) {
		r.tokens = tokens
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	router := router{
		startupTime: time.Now(),
		passwords:   auth.NewPasswordService(),
	}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(chimiddleware.RequestID)
	chiRouter.Use(chimiddleware.RealIP)
	chiRouter.Use(LogInternalServerErrors)

	handlers := initializeHandlers(database, router)
	authMiddleware := newAuthMiddleware(handlers.authService, router.settings.IsProduction())

	acceptedOrigins := router.settings.AcceptedOrigins
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins, router.settings.IsProduction()))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

// Run serves until the listener fails or a signal arrives on stop, then shuts
// down gracefully and returns why it stopped. Start's send never blocks.
func (s Server) Run(stop <-chan os.Signal, shutdownTimeout time.Duration) error {
	errChannel := make(chan error, 1)
	go s.Start(errChannel)

	var reason error
	select {
	case reason = <-errChannel:
	case sig := <-stop:
		reason = fmt.Errorf("received signal %s", sig)
	}

	s.ShutdownGracefully(shutdownTimeout)
	return reason
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Dur("uptime", time.Since(s.startupTime)).Msg("HttpServer gracefully shut down")
	}
}
