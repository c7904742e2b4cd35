// Package notify delivers generation events to user-configured webhooks.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

//go:generate moq -out mocks/webhook_store.go -pkg mocks -skip-ensure -fmt goimports . WebhookStore

// WebhookStore provides the user's webhook destinations
type WebhookStore interface {
	ListWebhooks(ctx context.Context, userID string, enabledOnly bool) ([]*domain.Webhook, error)
}

// Notifier fans events out to webhooks concurrently
type Notifier struct {
	store         WebhookStore
	client        *http.Client
	timeout       time.Duration
	maxConcurrent int
}

// Config holds notifier settings
type Config struct {
	Timeout       time.Duration // per delivery
	MaxConcurrent int
	AllowPrivate  bool // allow loopback and private network targets
}

// New creates a notifier, zero config values fall back to 5s and 5 concurrent deliveries
func New(store WebhookStore, cfg Config) *Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 5
	}
	client := &http.Client{}
	if !cfg.AllowPrivate {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.DialContext = (&net.Dialer{Timeout: cfg.Timeout, Control: dialControl}).DialContext
		transport.Proxy = nil // direct connections only, dialControl checks the target address
		client.Transport = transport
	}
	return &Notifier{
		store:         store,
		client:        client,
		timeout:       cfg.Timeout,
		maxConcurrent: cfg.MaxConcurrent,
	}
}

// Notify posts the event to every enabled webhook of the user and returns the number of failed deliveries.
// Delivery failures are logged, only a failure to load webhooks is returned as an error.
func (n *Notifier) Notify(ctx context.Context, userID string, ev domain.Event) (int, error) {
	hooks, err := n.store.ListWebhooks(ctx, userID, true)
	if err != nil {
		return 0, fmt.Errorf("list webhooks: %w", err)
	}
	if len(hooks) == 0 {
		return 0, nil
	}

	var failed atomic.Int32
	g := new(errgroup.Group)
	g.SetLimit(n.maxConcurrent)
	for _, hook := range hooks {
		g.Go(func() error {
			if err := n.deliver(ctx, hook, ev); err != nil {
				failed.Add(1)
				lgr.Printf("[WARN] webhook %d (%s) delivery failed for user %s: %v", hook.ID, hook.Kind, userID, err)
			}
			return nil
		})
	}
	_ = g.Wait() // deliveries never return errors to the group

	if f := int(failed.Load()); f > 0 {
		return f, nil
	}
	lgr.Printf("[DEBUG] event %s delivered to %d webhooks for user %s", ev.Type, len(hooks), userID)
	return 0, nil
}

// deliver posts a single payload with its own timeout
func (n *Notifier) deliver(ctx context.Context, hook *domain.Webhook, ev domain.Event) error {
	body, err := json.Marshal(payload(hook.Kind, ev))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "proposalfast-webhook")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// slackMessage is the incoming-webhook payload for slack
type slackMessage struct {
	Text string `json:"text"`
}

// teamsCard is the legacy MessageCard payload accepted by teams connectors
type teamsCard struct {
	Type       string `json:"@type"`
	Context    string `json:"@context"`
	Summary    string `json:"summary"`
	ThemeColor string `json:"themeColor"`
	Title      string `json:"title"`
	Text       string `json:"text"`
}

// payload builds the request body for the webhook kind, automation platforms get the raw event
func payload(kind domain.WebhookKind, ev domain.Event) any {
	switch kind {
	case domain.WebhookSlack:
		return slackMessage{Text: summary(ev)}
	case domain.WebhookTeams:
		return teamsCard{
			Type:       "MessageCard",
			Context:    "https://schema.org/extensions",
			Summary:    "Contract generated",
			ThemeColor: "0076D7",
			Title:      "Contract generated",
			Text:       summary(ev),
		}
	default:
		return ev
	}
}

func summary(ev domain.Event) string {
	msg := fmt.Sprintf("New %s contract for %s (%s)", ev.ContractType, ev.ClientName, ev.Source)
	if ev.DraftID != "" {
		msg += ", draft " + ev.DraftID
	}
	return msg
}
