package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal         *prometheus.CounterVec
	eventsTotal               *prometheus.CounterVec
	eventsDroppedTotal        *prometheus.CounterVec
	notificationFailuresTotal *prometheus.CounterVec
	rateLimitedTotal          prometheus.Counter
	votesTotal                prometheus.Counter
	candidatesTotal           prometheus.Counter
	validationFailuresTotal   prometheus.Counter
	registerOnce              sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the voting dashboard.",
		}, []string{"method", "path", "status"})
		eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "events_total",
			Help:      "Notification events published, by kind.",
		}, []string{"kind"})
		eventsDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "events_dropped_total",
			Help:      "Notification events dropped because the buffer was full.",
		}, []string{"kind"})
		notificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "notification_failures_total",
			Help:      "Failed notification deliveries, by sink.",
		}, []string{"sink"})
		rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "votes_rate_limited_total",
			Help:      "Vote requests rejected by the per-IP rate limiter.",
		})
		votesTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "votes_total",
			Help:      "Votes counted against a candidate.",
		})
		candidatesTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "candidates_total",
			Help:      "Candidates added to the ballot.",
		})
		validationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "voting",
			Name:      "validation_failures_total",
			Help:      "Candidate submissions rejected for empty fields.",
		})
	})
}

// RegisterBallot exposes live ballot state as gauges read on every scrape.
func RegisterBallot(reg prometheus.Registerer, totalVotes func() int64, candidates func() int) error {
	votes := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "voting",
		Name:      "total_votes",
		Help:      "Votes currently on the ballot.",
	}, func() float64 { return float64(totalVotes()) })
	if err := reg.Register(votes); err != nil {
		return err
	}

	return reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "voting",
		Name:      "candidates",
		Help:      "Candidates currently on the ballot.",
	}, func() float64 { return float64(candidates()) }))
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

func IncEvent(kind string) {
	if eventsTotal == nil {
		return
	}
	eventsTotal.WithLabelValues(kind).Inc()
}

func IncEventDropped(kind string) {
	if eventsDroppedTotal == nil {
		return
	}
	eventsDroppedTotal.WithLabelValues(kind).Inc()
}

func IncNotificationFailure(sink string) {
	if notificationFailuresTotal == nil {
		return
	}
	notificationFailuresTotal.WithLabelValues(sink).Inc()
}

func IncRateLimited() {
	if rateLimitedTotal == nil {
		return
	}
	rateLimitedTotal.Inc()
}

func IncVote() {
	if votesTotal == nil {
		return
	}
	votesTotal.Inc()
}

func IncCandidate() {
	if candidatesTotal == nil {
		return
	}
	candidatesTotal.Inc()
}

func IncValidationFailure() {
	if validationFailuresTotal == nil {
		return
	}
	validationFailuresTotal.Inc()
}
