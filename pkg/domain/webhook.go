package domain

import "time"

// WebhookKind defines the payload format of a webhook destination
type WebhookKind string

const (
	WebhookSlack   WebhookKind = "slack"
	WebhookTeams   WebhookKind = "teams"
	WebhookZapier  WebhookKind = "zapier"
	WebhookMake    WebhookKind = "make"
	WebhookGeneric WebhookKind = "generic"
)

// Valid reports whether the kind is supported
func (k WebhookKind) Valid() bool {
	switch k {
	case WebhookSlack, WebhookTeams, WebhookZapier, WebhookMake, WebhookGeneric:
		return true
	}
	return false
}

// Webhook is a user-configured notification destination
type Webhook struct {
	ID        int64       `json:"id"`
	UserID    string      `json:"user_id"`
	Kind      WebhookKind `json:"kind"`
	URL       string      `json:"url"`
	Enabled   bool        `json:"enabled"`
	CreatedAt time.Time   `json:"created_at"`
}

// EventContractGenerated is sent after every successful generation
const EventContractGenerated = "contract.generated"

// Event is a notification delivered to webhooks
type Event struct {
	Type         string         `json:"type"`
	UserID       string         `json:"user_id"`
	DraftID      string         `json:"draft_id,omitempty"`
	ClientName   string         `json:"client_name"`
	ContractType string         `json:"contract_type"`
	Source       ContractSource `json:"source"`
	Timestamp    time.Time      `json:"timestamp"`
}
