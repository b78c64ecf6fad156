package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"voting-dashboard/internal/domain/ballot"
	"voting-dashboard/internal/platform/apperr"
)

type addCandidateRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// @Summary     Current ballot
// @Description Candidates ranked by votes with percentages, the leader and the vote total.
// @Tags        ballot
// @Produce     json
// @Success     200  {object}  ballot.View
// @Router      /ballot [get]
func (h *Handler) handleBallot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// @Summary     Ballot stream
// @Description Server-sent events; one "ballot" event with the full view after every change.
// @Tags        ballot
// @Produce     text/event-stream
// @Success     200
// @Router      /ballot/stream [get]
func (h *Handler) handleBallotStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		errorResponse(w, apperr.Internal("streaming_unsupported", "streaming unsupported", nil))
		return
	}

	views, cancel := h.store.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case v, ok := <-views:
			if !ok {
				return
			}
			data, err := json.Marshal(v)
			if err != nil {
				slogLogger.Error("encode ballot view", "error", err.Error())
				return
			}
			if _, err := fmt.Fprintf(w, "event: ballot\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// @Summary     Add candidate
// @Tags        candidates
// @Accept      json
// @Produce     json
// @Param       request  body      addCandidateRequest  true  "Candidate"
// @Success     201      {object}  ballot.Candidate
// @Failure     400      {object}  map[string]string  "invalid body or empty fields"
// @Router      /candidates [post]
func (h *Handler) handleAddCandidate(w http.ResponseWriter, r *http.Request) {
	var req addCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	c, err := h.intakeSvc.Add(req.Name, req.PhotoURL)
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

// @Summary     Get candidate
// @Tags        candidates
// @Produce     json
// @Param       id   path      string  true  "Candidate ID"
// @Success     200  {object}  ballot.Entry
// @Failure     404  {object}  map[string]string  "not found"
// @Router      /candidates/{id} [get]
func (h *Handler) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ballot.Entry{
		Candidate:  c,
		Percentage: h.store.VotePercentage(c),
	})
}

// @Summary     Vote for a candidate
// @Description Unknown ids are ignored and still answer 204.
// @Tags        candidates
// @Param       id   path  string  true  "Candidate ID"
// @Success     204
// @Failure     429  {object}  map[string]string  "rate limited"
// @Router      /candidates/{id}/vote [post]
func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	h.store.Vote(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
