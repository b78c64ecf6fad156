package worker

import (
	"fmt"
	"time"

	"voting-dashboard/internal/domain/ballot"
	"voting-dashboard/internal/metrics"
)

type EventKind string

const (
	KindCandidateAdded   EventKind = "candidate_added"
	KindVoteRecorded     EventKind = "vote_recorded"
	KindValidationFailed EventKind = "validation_failed"
)

// Event is a fire-and-forget notification for the user-facing toast layer.
type Event struct {
	Kind        EventKind `json:"kind"`
	CandidateID string    `json:"candidate_id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Message     string    `json:"message,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e Event) Title() string {
	switch e.Kind {
	case KindCandidateAdded:
		return "Candidate Added"
	case KindVoteRecorded:
		return "Vote Recorded"
	case KindValidationFailed:
		return "Error"
	default:
		return string(e.Kind)
	}
}

func (e Event) Description() string {
	switch e.Kind {
	case KindCandidateAdded:
		return fmt.Sprintf("%s has been added to the ballot.", e.Name)
	case KindVoteRecorded:
		return "Your vote has been successfully counted."
	default:
		return e.Message
	}
}

// Publisher turns store and intake signals into events on a buffered channel.
// A full channel drops the event.
type Publisher struct {
	ch  chan<- Event
	now func() time.Time
}

func NewPublisher(ch chan<- Event) *Publisher {
	return &Publisher{ch: ch, now: time.Now}
}

func (p *Publisher) CandidateAdded(c ballot.Candidate) {
	metrics.IncCandidate()
	p.publish(Event{Kind: KindCandidateAdded, CandidateID: c.ID, Name: c.Name})
}

func (p *Publisher) VoteRecorded(c ballot.Candidate) {
	metrics.IncVote()
	p.publish(Event{Kind: KindVoteRecorded, CandidateID: c.ID})
}

func (p *Publisher) ValidationFailed(message string) {
	metrics.IncValidationFailure()
	p.publish(Event{Kind: KindValidationFailed, Message: message})
}

func (p *Publisher) publish(ev Event) {
	ev.OccurredAt = p.now()
	metrics.IncEvent(string(ev.Kind))
	select {
	case p.ch <- ev:
	default:
		metrics.IncEventDropped(string(ev.Kind))
	}
}
