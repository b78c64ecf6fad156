package ballot

// Candidate is an entrant on the ballot. Only Votes ever changes after creation.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	Votes    int64  `json:"votes"`
}

// Entry is a candidate as rendered, with its share of the total vote.
type Entry struct {
	Candidate
	Percentage float64 `json:"percentage"`
}

// View is the render input: ranked candidates, the leader and the vote total.
type View struct {
	Candidates []Entry `json:"candidates"`
	Leader     *Entry  `json:"leader"`
	TotalVotes int64   `json:"total_votes"`
}

// Notifier receives confirmation signals for store mutations.
type Notifier interface {
	CandidateAdded(c Candidate)
	VoteRecorded(c Candidate)
}

type nopNotifier struct{}

func (nopNotifier) CandidateAdded(Candidate) {}
func (nopNotifier) VoteRecorded(Candidate)   {}
