package ballot

import (
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
)

type Option func(*Store)

// WithIDGenerator replaces the UUID generator. Generated ids that collide with a
// live candidate are discarded and regenerated.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// Store owns the candidate collection. Every derived value is recomputed from
// the collection on read.
type Store struct {
	mu         sync.RWMutex
	candidates []Candidate
	index      map[string]int
	newID      func() string
	notifier   Notifier

	subs    map[int]chan View
	nextSub int
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		index:    make(map[string]int),
		newID:    uuid.NewString,
		notifier: nopNotifier{},
		subs:     make(map[int]chan View),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddCandidate appends a candidate with zero votes. Inputs are expected to be
// validated by the caller.
func (s *Store) AddCandidate(name, photoURL string) Candidate {
	s.mu.Lock()
	id := s.newID()
	for {
		if _, taken := s.index[id]; !taken {
			break
		}
		id = s.newID()
	}
	c := Candidate{ID: id, Name: name, PhotoURL: photoURL}
	s.index[id] = len(s.candidates)
	s.candidates = append(s.candidates, c)
	s.publishLocked()
	s.mu.Unlock()

	s.notifier.CandidateAdded(c)
	return c
}

// Vote adds one vote to the candidate with the given id. An unknown id is
// ignored.
func (s *Store) Vote(candidateID string) {
	s.mu.Lock()
	i, ok := s.index[candidateID]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.candidates[i].Votes++
	c := s.candidates[i]
	s.publishLocked()
	s.mu.Unlock()

	s.notifier.VoteRecorded(c)
}

func (s *Store) Get(candidateID string) (Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[candidateID]
	if !ok {
		return Candidate{}, ErrCandidateNotFound
	}
	return s.candidates[i], nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates)
}

func (s *Store) TotalVotes() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalLocked()
}

// VotePercentage returns the candidate's unrounded share of all votes, or 0
// when no votes have been cast.
func (s *Store) VotePercentage(c Candidate) float64 {
	return Percentage(c.Votes, s.TotalVotes())
}

// RankedView returns a copy of the candidates ordered by votes descending.
// Candidates with equal votes keep their insertion order.
func (s *Store) RankedView() []Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rankedLocked()
}

// Leader returns the first ranked candidate; false when the ballot is empty.
func (s *Store) Leader() (Candidate, bool) {
	ranked := s.RankedView()
	if len(ranked) == 0 {
		return Candidate{}, false
	}
	return ranked[0], true
}

func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewLocked()
}

// Subscribe returns a channel that receives the current view immediately and a
// fresh one after every mutation. Only the latest view is buffered; an unread
// view is replaced. The returned func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan View, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan View, 1)
	ch <- s.viewLocked()
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Percentage is votes/total*100, or 0 when total is 0.
func Percentage(votes, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(votes) / float64(total) * 100
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

func (s *Store) totalLocked() int64 {
	var total int64
	for _, c := range s.candidates {
		total += c.Votes
	}
	return total
}

func (s *Store) rankedLocked() []Candidate {
	ranked := make([]Candidate, len(s.candidates))
	copy(ranked, s.candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})
	return ranked
}

func (s *Store) viewLocked() View {
	total := s.totalLocked()
	ranked := s.rankedLocked()

	v := View{
		Candidates: make([]Entry, 0, len(ranked)),
		TotalVotes: total,
	}
	for _, c := range ranked {
		v.Candidates = append(v.Candidates, Entry{
			Candidate:  c,
			Percentage: Percentage(c.Votes, total),
		})
	}
	if len(v.Candidates) > 0 {
		leader := v.Candidates[0]
		v.Leader = &leader
	}
	return v
}

// publishLocked must be called with s.mu held for writing; it is the only
// sender on subscriber channels, so the drain-then-send never blocks.
func (s *Store) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	v := s.viewLocked()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}
