package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/errs"
	"github.com/rpupo63/portfolio-content-api/services"
)

const healthCheckTimeout = 2 * time.Second

type healthHandler struct {
	responder     Responder
	logger        zerolog.Logger
	database      database.Database
	portfolio     *services.PortfolioService
	defaultUserID string
	startupTime   time.Time
}

func newHealthHandler(database database.Database, portfolio *services.PortfolioService, defaultUserID string, startupTime time.Time, production bool) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder:     NewResponder(logger, production),
		logger:        logger,
		database:      database,
		portfolio:     portfolio,
		defaultUserID: defaultUserID,
		startupTime:   startupTime,
	}
}

type healthResponse struct {
	Status    string                   `json:"status"`
	Message   string                   `json:"message"`
	Timestamp string                   `json:"timestamp"`
	Uptime    float64                  `json:"uptime"`
	Database  string                   `json:"database"`
	Stats     *services.PortfolioStats `json:"stats"`
}

// getHealth answers 200 while the database is reachable and 503 otherwise.
// Stats are those of the default user, null when that user does not exist.
func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		response := healthResponse{
			Status:    "OK",
			Message:   "Portfolio API is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(h.startupTime).Seconds(),
			Database:  "up",
		}

		if err := h.database.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("database ping failed")
			response.Status = "DEGRADED"
			response.Message = "Database is unreachable"
			response.Database = "down"
			h.responder.WriteJSONStatus(w, http.StatusServiceUnavailable, response)
			return
		}

		stats, err := h.portfolio.GetStats(ctx, h.defaultUserID)
		switch {
		case err == nil:
			response.Stats = stats
		case errs.IsNotFound(err):
		default:
			h.logger.Warn().Err(err).Msg("default user stats unavailable")
		}

		h.responder.WriteJSON(w, response)
	}
}
