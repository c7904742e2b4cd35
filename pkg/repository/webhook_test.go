package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

func TestWebhookRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	slack := &domain.Webhook{UserID: "user1", Kind: domain.WebhookSlack, URL: "https://hooks.slack.com/x", Enabled: true}
	require.NoError(t, repos.Webhook.CreateWebhook(ctx, slack))
	assert.NotZero(t, slack.ID)

	zapier := &domain.Webhook{UserID: "user1", Kind: domain.WebhookZapier, URL: "https://hooks.zapier.com/y", Enabled: false}
	require.NoError(t, repos.Webhook.CreateWebhook(ctx, zapier))

	// same url for the same user is rejected
	err := repos.Webhook.CreateWebhook(ctx, &domain.Webhook{UserID: "user1", Kind: domain.WebhookGeneric, URL: slack.URL, Enabled: true})
	require.ErrorIs(t, err, ErrDuplicate)

	all, err := repos.Webhook.ListWebhooks(ctx, "user1", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	enabled, err := repos.Webhook.ListWebhooks(ctx, "user1", true)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, domain.WebhookSlack, enabled[0].Kind)

	// deleting someone else's webhook does nothing
	require.NoError(t, repos.Webhook.DeleteWebhook(ctx, "user2", slack.ID))
	all, err = repos.Webhook.ListWebhooks(ctx, "user1", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repos.Webhook.DeleteWebhook(ctx, "user1", slack.ID))
	all, err = repos.Webhook.ListWebhooks(ctx, "user1", false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, zapier.ID, all[0].ID)
}
