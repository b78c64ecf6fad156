package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromError(t *testing.T) {
	if FromError(nil) != nil {
		t.Fatalf("nil error should map to nil")
	}

	base := Conflict("dialog_closed", "intake dialog is closed", nil)
	wrapped := fmt.Errorf("submit: %w", base)
	if got := FromError(wrapped); got != base {
		t.Fatalf("expected wrapped AppError to be unwrapped, got %v", got)
	}

	raw := errors.New("boom")
	got := FromError(raw)
	if got.StatusCode() != http.StatusInternalServerError || got.Code != "internal_error" {
		t.Fatalf("unexpected mapping %+v", got)
	}
	if !errors.Is(got, raw) {
		t.Fatalf("internal error should wrap the cause")
	}
}

func TestStatusCodes(t *testing.T) {
	cases := map[int]*AppError{
		http.StatusBadRequest:      BadRequest("a", "b", nil),
		http.StatusNotFound:        NotFound("a", "b", nil),
		http.StatusConflict:        Conflict("a", "b", nil),
		http.StatusTooManyRequests: TooManyRequests("a", "b", nil),
	}
	for want, e := range cases {
		if e.StatusCode() != want {
			t.Fatalf("expected %d, got %d", want, e.StatusCode())
		}
	}

	var nilErr *AppError
	if nilErr.StatusCode() != http.StatusInternalServerError || nilErr.Error() != "" {
		t.Fatalf("nil AppError should be safe to use")
	}
}
