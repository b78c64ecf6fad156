package api

import (
	"encoding/json"
	"net/http"

	"voting-dashboard/internal/platform/apperr"
)

type intakeFieldsRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

// @Summary     Intake dialog state
// @Tags        intake
// @Produce     json
// @Success     200  {object}  intake.Status
// @Router      /intake [get]
func (h *Handler) handleIntakeStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.intakeSvc.Status())
}

// @Summary     Open the add-candidate dialog
// @Tags        intake
// @Produce     json
// @Success     200  {object}  intake.Status
// @Router      /intake/open [post]
func (h *Handler) handleIntakeOpen(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.intakeSvc.Open())
}

// @Summary     Close the add-candidate dialog without submitting
// @Tags        intake
// @Produce     json
// @Success     200  {object}  intake.Status
// @Router      /intake/close [post]
func (h *Handler) handleIntakeClose(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.intakeSvc.Cancel())
}

// @Summary     Update draft fields
// @Tags        intake
// @Accept      json
// @Produce     json
// @Param       request  body      intakeFieldsRequest  true  "Draft"
// @Success     200      {object}  intake.Status
// @Failure     409      {object}  map[string]string  "dialog closed"
// @Router      /intake/draft [put]
func (h *Handler) handleIntakeDraft(w http.ResponseWriter, r *http.Request) {
	var req intakeFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	st, err := h.intakeSvc.SetDraft(req.Name, req.PhotoURL)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// @Summary     Submit the add-candidate dialog
// @Tags        intake
// @Accept      json
// @Produce     json
// @Param       request  body      intakeFieldsRequest  true  "Candidate"
// @Success     201      {object}  ballot.Candidate
// @Failure     400      {object}  map[string]string  "empty fields"
// @Failure     409      {object}  map[string]string  "dialog closed"
// @Router      /intake/submit [post]
func (h *Handler) handleIntakeSubmit(w http.ResponseWriter, r *http.Request) {
	var req intakeFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	c, err := h.intakeSvc.Submit(req.Name, req.PhotoURL)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
