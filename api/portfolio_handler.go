package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-content-api/services"
)

type portfolioHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolio     *services.PortfolioService
	about         *services.AboutService
	defaultUserID string
}

func newPortfolioHandler(portfolio *services.PortfolioService, about *services.AboutService, defaultUserID string, production bool) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()
	return portfolioHandler{
		responder:     NewResponder(logger, production),
		logger:        logger,
		portfolio:     portfolio,
		about:         about,
		defaultUserID: defaultUserID,
	}
}

// getDefaultPortfolio serves the portfolio of the configured default user
func (h portfolioHandler) getDefaultPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.portfolio.GetPortfolio(r.Context(), h.defaultUserID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, doc)
	}
}

func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.portfolio.GetPortfolio(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, doc)
	}
}

func (h portfolioHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.portfolio.GetAbout(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, about)
	}
}

// updateAbout applies a partial update; the route is guarded by the token subject check
func (h portfolioHandler) updateAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.UpdateAboutRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		about, err := h.about.UpdateAbout(r.Context(), chi.URLParam(r, "userID"), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if claims, ok := ctxGetClaims(r.Context()); ok {
			h.logger.Info().Str("userId", claims.UserID()).Str("email", claims.Email).Msg("about updated through api")
		}
		h.responder.WriteJSON(w, about)
	}
}

func (h portfolioHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.portfolio.GetSkills(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, skills)
	}
}

func (h portfolioHandler) getSkillsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.portfolio.GetSkillsByCategory(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "category"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, skills)
	}
}

func (h portfolioHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.portfolio.GetProjects(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

func (h portfolioHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.portfolio.GetProject(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// searchProjects matches ?technology= against the names of linked skills
func (h portfolioHandler) searchProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("technology")
		result, err := h.portfolio.SearchProjectsByTechnology(r.Context(), chi.URLParam(r, "userID"), term)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, result)
	}
}

func (h portfolioHandler) getAchievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievements, err := h.portfolio.GetAchievements(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, achievements)
	}
}

func (h portfolioHandler) getLanguages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		languages, err := h.portfolio.GetLanguages(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, languages)
	}
}

func (h portfolioHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contact, err := h.portfolio.GetContact(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, contact)
	}
}

func (h portfolioHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.portfolio.GetStats(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}
