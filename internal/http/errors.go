package api

import (
	"errors"
	"net/http"

	"voting-dashboard/internal/domain/ballot"
	"voting-dashboard/internal/domain/intake"
	"voting-dashboard/internal/platform/apperr"
)

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	writeJSON(w, appErr.StatusCode(), map[string]string{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
}

func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	switch {
	case errors.Is(err, intake.ErrValidation):
		return apperr.BadRequest("validation_failed", intake.ValidationMessage, err)
	case errors.Is(err, intake.ErrDialogClosed):
		return apperr.Conflict("dialog_closed", "intake dialog is closed", err)
	case errors.Is(err, ballot.ErrCandidateNotFound):
		return apperr.NotFound("candidate_not_found", "candidate not found", err)
	default:
		return apperr.FromError(err)
	}
}
