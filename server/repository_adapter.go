package server

import (
	"context"

	"github.com/proposalfast/proposalfast/pkg/domain"
	"github.com/proposalfast/proposalfast/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// ListDrafts returns the user's drafts
func (r *RepositoryAdapter) ListDrafts(ctx context.Context, userID string, limit int) ([]*domain.Draft, error) {
	return r.repos.Draft.ListDrafts(ctx, userID, limit)
}

// GetDraft returns a draft of the user
func (r *RepositoryAdapter) GetDraft(ctx context.Context, userID, id string) (*domain.Draft, error) {
	return r.repos.Draft.GetDraft(ctx, userID, id)
}

// ListPreferences returns learned client preferences of the user
func (r *RepositoryAdapter) ListPreferences(ctx context.Context, userID string) ([]*domain.ClientPreference, error) {
	return r.repos.Preference.ListPreferences(ctx, userID)
}

// DeletePreference forgets a client of the user
func (r *RepositoryAdapter) DeletePreference(ctx context.Context, userID, clientName string) error {
	return r.repos.Preference.DeletePreference(ctx, userID, clientName)
}

// CreateWebhook registers a webhook
func (r *RepositoryAdapter) CreateWebhook(ctx context.Context, hook *domain.Webhook) error {
	return r.repos.Webhook.CreateWebhook(ctx, hook)
}

// ListWebhooks returns the user's webhooks
func (r *RepositoryAdapter) ListWebhooks(ctx context.Context, userID string, enabledOnly bool) ([]*domain.Webhook, error) {
	return r.repos.Webhook.ListWebhooks(ctx, userID, enabledOnly)
}

// DeleteWebhook removes a webhook of the user
func (r *RepositoryAdapter) DeleteWebhook(ctx context.Context, userID string, id int64) error {
	return r.repos.Webhook.DeleteWebhook(ctx, userID, id)
}
