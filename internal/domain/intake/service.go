package intake

import (
	"errors"
	"strings"
	"sync"

	"voting-dashboard/internal/domain/ballot"
)

// ValidationMessage is the user-facing text for an incomplete submission.
const ValidationMessage = "Please fill in all fields"

var (
	ErrValidation   = errors.New("name and photo url are required")
	ErrDialogClosed = errors.New("intake dialog is closed")
)

// Service is the add-candidate dialog: closed until opened, and closed again
// by a cancel or a successful submit. Cancelling keeps the draft.
type Service struct {
	mu       sync.Mutex
	state    State
	draft    Draft
	store    Adder
	notifier Notifier
}

func NewService(store Adder, notifier Notifier) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		state:    StateClosed,
		store:    store,
		notifier: notifier,
	}
}

// Validate trims both fields and rejects either being empty.
func Validate(name, photoURL string) (string, string, error) {
	name = strings.TrimSpace(name)
	photoURL = strings.TrimSpace(photoURL)
	if name == "" || photoURL == "" {
		return "", "", ErrValidation
	}
	return name, photoURL, nil
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Service) Open() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateOpen
	return s.statusLocked()
}

func (s *Service) Cancel() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateClosed
	return s.statusLocked()
}

// SetDraft records the current field values while the dialog is open.
func (s *Service) SetDraft(name, photoURL string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateOpen {
		return s.statusLocked(), ErrDialogClosed
	}
	s.draft = Draft{Name: name, PhotoURL: photoURL}
	return s.statusLocked(), nil
}

// Submit validates and forwards the candidate to the store. A failed
// validation keeps the dialog open with the raw values in the draft.
func (s *Service) Submit(name, photoURL string) (ballot.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateOpen {
		return ballot.Candidate{}, ErrDialogClosed
	}

	s.draft = Draft{Name: name, PhotoURL: photoURL}
	c, err := s.add(name, photoURL)
	if err != nil {
		return ballot.Candidate{}, err
	}

	s.draft = Draft{}
	s.state = StateClosed
	return c, nil
}

// Add is the dialog-less path used by API clients; same validation, same
// notifications.
func (s *Service) Add(name, photoURL string) (ballot.Candidate, error) {
	return s.add(name, photoURL)
}

func (s *Service) add(name, photoURL string) (ballot.Candidate, error) {
	name, photoURL, err := Validate(name, photoURL)
	if err != nil {
		s.notifier.ValidationFailed(ValidationMessage)
		return ballot.Candidate{}, err
	}
	return s.store.AddCandidate(name, photoURL), nil
}

func (s *Service) statusLocked() Status {
	return Status{State: s.state, Draft: s.draft}
}
