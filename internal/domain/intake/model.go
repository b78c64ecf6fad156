package intake

import "voting-dashboard/internal/domain/ballot"

type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
)

// Draft holds the in-progress form fields.
type Draft struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

type Status struct {
	State State `json:"state"`
	Draft Draft `json:"draft"`
}

// Adder is the part of the ballot store intake forwards to.
type Adder interface {
	AddCandidate(name, photoURL string) ballot.Candidate
}

type Notifier interface {
	ValidationFailed(message string)
}

type nopNotifier struct{}

func (nopNotifier) ValidationFailed(string) {}
