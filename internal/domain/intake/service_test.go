package intake

import (
	"errors"
	"sync"
	"testing"

	"voting-dashboard/internal/domain/ballot"
)

type memoryNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *memoryNotifier) ValidationFailed(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func newTestService() (*Service, *ballot.Store, *memoryNotifier) {
	store := ballot.NewStore()
	n := &memoryNotifier{}
	return NewService(store, n), store, n
}

func TestInitialStateClosed(t *testing.T) {
	svc, _, _ := newTestService()
	if st := svc.Status(); st.State != StateClosed {
		t.Fatalf("expected closed, got %s", st.State)
	}
}

func TestSubmitEmptyNameKeepsDialogOpen(t *testing.T) {
	svc, store, n := newTestService()
	svc.Open()

	_, err := svc.Submit("", "url")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("store must not be called on validation failure")
	}
	st := svc.Status()
	if st.State != StateOpen {
		t.Fatalf("dialog should stay open, got %s", st.State)
	}
	if st.Draft.PhotoURL != "url" {
		t.Fatalf("draft should keep entered values, got %+v", st.Draft)
	}
	if len(n.messages) != 1 || n.messages[0] != ValidationMessage {
		t.Fatalf("expected one ValidationFailed, got %v", n.messages)
	}
}

func TestSubmitWhitespaceOnlyFails(t *testing.T) {
	svc, store, n := newTestService()
	svc.Open()

	if _, err := svc.Submit("Dave", "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank photo url, got %v", err)
	}
	if _, err := svc.Submit("\t", "url"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("store must stay empty")
	}
	if len(n.messages) != 2 {
		t.Fatalf("expected two notifications, got %d", len(n.messages))
	}
}

func TestSubmitTrimsAndCloses(t *testing.T) {
	svc, store, n := newTestService()
	svc.Open()
	if _, err := svc.SetDraft("  Car", ""); err != nil {
		t.Fatalf("set draft: %v", err)
	}

	c, err := svc.Submit("  Carol  ", "  url3  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Carol" || c.PhotoURL != "url3" || c.Votes != 0 {
		t.Fatalf("unexpected candidate %+v", c)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 candidate, got %d", store.Len())
	}

	st := svc.Status()
	if st.State != StateClosed {
		t.Fatalf("expected closed after submit, got %s", st.State)
	}
	if st.Draft != (Draft{}) {
		t.Fatalf("expected cleared draft, got %+v", st.Draft)
	}
	if len(n.messages) != 0 {
		t.Fatalf("unexpected notifications %v", n.messages)
	}
}

func TestSubmitWhileClosed(t *testing.T) {
	svc, store, _ := newTestService()
	if _, err := svc.Submit("Alice", "url"); !errors.Is(err, ErrDialogClosed) {
		t.Fatalf("expected ErrDialogClosed, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("store must stay empty")
	}
}

func TestCancelKeepsDraft(t *testing.T) {
	svc, store, _ := newTestService()
	svc.Open()
	if _, err := svc.SetDraft("Erin", "url5"); err != nil {
		t.Fatalf("set draft: %v", err)
	}

	st := svc.Cancel()
	if st.State != StateClosed {
		t.Fatalf("expected closed, got %s", st.State)
	}
	if st.Draft.Name != "Erin" || st.Draft.PhotoURL != "url5" {
		t.Fatalf("cancel should keep the draft, got %+v", st.Draft)
	}

	reopened := svc.Open()
	if reopened.Draft.Name != "Erin" {
		t.Fatalf("open should not reset the draft, got %+v", reopened.Draft)
	}
	if store.Len() != 0 {
		t.Fatalf("cancel must not add a candidate")
	}
}

func TestSetDraftRequiresOpen(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.SetDraft("x", "y"); !errors.Is(err, ErrDialogClosed) {
		t.Fatalf("expected ErrDialogClosed, got %v", err)
	}
}

func TestAddWithoutDialog(t *testing.T) {
	svc, store, n := newTestService()

	if _, err := svc.Add(" ", "url"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	c, err := svc.Add(" Frank ", "url6")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Name != "Frank" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}
	if store.Len() != 1 || len(n.messages) != 1 {
		t.Fatalf("unexpected state: candidates=%d notifications=%d", store.Len(), len(n.messages))
	}
	if svc.Status().State != StateClosed {
		t.Fatalf("dialog state must not change")
	}
}

func TestValidateAcceptsAnyNonEmptyURL(t *testing.T) {
	name, url, err := Validate("Dup", "not a url")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Dup" || url != "not a url" {
		t.Fatalf("unexpected values %q %q", name, url)
	}
}
