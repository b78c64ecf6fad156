package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"voting-dashboard/internal/retry"
)

// LogSink writes every notification as a structured log line.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(ctx context.Context, ev Event) error {
	level := slog.LevelInfo
	if ev.Kind == KindValidationFailed {
		level = slog.LevelWarn
	}
	s.logger.LogAttrs(ctx, level, "notification",
		slog.String("kind", string(ev.Kind)),
		slog.String("title", ev.Title()),
		slog.String("description", ev.Description()),
		slog.String("candidate_id", ev.CandidateID),
	)
	return nil
}

type webhookPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Event       Event  `json:"event"`
}

// WebhookSink posts notifications as JSON to an external URL. 5xx responses and
// transport errors are retried; other non-2xx responses are not.
type WebhookSink struct {
	url    string
	client *http.Client
	policy retry.Policy
}

func NewWebhookSink(url string, client *http.Client, policy retry.Policy) *WebhookSink {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &WebhookSink{url: url, client: client, policy: policy}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Deliver(ctx context.Context, ev Event) error {
	body, err := json.Marshal(webhookPayload{
		Title:       ev.Title(),
		Description: ev.Description(),
		Event:       ev,
	})
	if err != nil {
		return err
	}

	return retry.Do(ctx, s.policy, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case resp.StatusCode >= 500:
			return fmt.Errorf("webhook status %d", resp.StatusCode)
		default:
			return retry.Permanent(fmt.Errorf("webhook status %d", resp.StatusCode))
		}
	})
}
