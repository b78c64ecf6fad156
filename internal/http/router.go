package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"voting-dashboard/internal/domain/ballot"
	"voting-dashboard/internal/domain/intake"
)

// VoteLimit configures the per-IP limiter on the vote endpoints.
type VoteLimit struct {
	Rate  rate.Limit
	Burst int
}

type Handler struct {
	store     *ballot.Store
	intakeSvc *intake.Service
}

func NewRouter(store *ballot.Store, intakeSvc *intake.Service, voteLimit VoteLimit) http.Handler {
	h := &Handler{
		store:     store,
		intakeSvc: intakeSvc,
	}
	limitVotes := RateLimitVotes(voteLimit.Rate, voteLimit.Burst)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(RequestLogger)
	r.Use(CORSMiddleware)

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(60 * time.Second))

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/ready", h.handleReady)
		r.Get("/swagger/*", httpSwagger.WrapHandler)
		r.Get("/metrics", promhttp.Handler().ServeHTTP)

		r.Get("/", h.handleDashboard)
		r.Post("/ui/candidates", h.handleDashboardAdd)
		r.With(limitVotes).Post("/ui/candidates/{id}/vote", h.handleDashboardVote)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Long-lived stream; kept outside the request timeout.
		r.Get("/ballot/stream", h.handleBallotStream)

		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(60 * time.Second))

			r.Get("/ballot", h.handleBallot)

			r.Post("/candidates", h.handleAddCandidate)
			r.Get("/candidates/{id}", h.handleGetCandidate)
			r.With(limitVotes).Post("/candidates/{id}/vote", h.handleVote)

			r.Get("/intake", h.handleIntakeStatus)
			r.Post("/intake/open", h.handleIntakeOpen)
			r.Post("/intake/close", h.handleIntakeClose)
			r.Put("/intake/draft", h.handleIntakeDraft)
			r.Post("/intake/submit", h.handleIntakeSubmit)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.store == nil || h.intakeSvc == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "not_ready",
			"message": "ballot store not configured",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
