package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

// WebhookRepository handles per-user webhook destinations
type WebhookRepository struct {
	db *sqlx.DB
}

// webhookSQL represents a webhook row for SQL operations
type webhookSQL struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Kind      string    `db:"kind"`
	URL       string    `db:"url"`
	Enabled   bool      `db:"enabled"`
	CreatedAt time.Time `db:"created_at"`
}

// NewWebhookRepository creates a new webhook repository
func NewWebhookRepository(db *sqlx.DB) *WebhookRepository {
	return &WebhookRepository{db: db}
}

// CreateWebhook inserts a webhook, the (user, url) pair must be unique
func (r *WebhookRepository) CreateWebhook(ctx context.Context, hook *domain.Webhook) error {
	if hook.CreatedAt.IsZero() {
		hook.CreatedAt = time.Now().UTC()
	}
	row := webhookSQL{
		UserID:    hook.UserID,
		Kind:      string(hook.Kind),
		URL:       hook.URL,
		Enabled:   hook.Enabled,
		CreatedAt: hook.CreatedAt,
	}

	query := `
		INSERT INTO webhooks (user_id, kind, url, enabled, created_at)
		VALUES (:user_id, :kind, :url, :enabled, :created_at)
	`
	result, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("create webhook %s: %w", hook.URL, ErrDuplicate)
		}
		return fmt.Errorf("create webhook: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	hook.ID = id
	return nil
}

// ListWebhooks returns the user's webhooks, optionally only enabled ones
func (r *WebhookRepository) ListWebhooks(ctx context.Context, userID string, enabledOnly bool) ([]*domain.Webhook, error) {
	query := "SELECT * FROM webhooks WHERE user_id = ?"
	if enabledOnly {
		query += " AND enabled = 1"
	}
	query += " ORDER BY id"

	var rows []webhookSQL
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}

	hooks := make([]*domain.Webhook, len(rows))
	for i, row := range rows {
		hooks[i] = &domain.Webhook{
			ID:        row.ID,
			UserID:    row.UserID,
			Kind:      domain.WebhookKind(row.Kind),
			URL:       row.URL,
			Enabled:   row.Enabled,
			CreatedAt: row.CreatedAt,
		}
	}
	return hooks, nil
}

// DeleteWebhook removes a webhook owned by the user
func (r *WebhookRepository) DeleteWebhook(ctx context.Context, userID string, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM webhooks WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}
