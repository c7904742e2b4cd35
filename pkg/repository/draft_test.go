package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

func TestDraftRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	first := &domain.Draft{
		UserID:         "user1",
		ContractType:   "service",
		ClientName:     "Acme",
		FreelancerName: "Jane",
		ProjectScope:   "Build a landing page",
		Budget:         "$2,000",
		Timeline:       "2 weeks",
		Content:        "contract text",
		Source:         domain.SourceAI,
		MemoryApplied:  true,
		CreatedAt:      base,
	}
	require.NoError(t, repos.Draft.SaveDraft(ctx, first))
	assert.NotEmpty(t, first.ID)

	second := &domain.Draft{
		UserID: "user1", ContractType: "nda", ClientName: "Beta", FreelancerName: "Jane",
		ProjectScope: "NDA", Content: "nda text", Source: domain.SourceTemplate, CreatedAt: base.Add(time.Hour),
	}
	require.NoError(t, repos.Draft.SaveDraft(ctx, second))

	got, err := repos.Draft.GetDraft(ctx, "user1", first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.ClientName)
	assert.Equal(t, "$2,000", got.Budget)
	assert.Equal(t, domain.SourceAI, got.Source)
	assert.True(t, got.MemoryApplied)
	assert.True(t, base.Equal(got.CreatedAt))

	// other users can't read it
	_, err = repos.Draft.GetDraft(ctx, "user2", first.ID)
	require.ErrorIs(t, err, ErrNotFound)

	drafts, err := repos.Draft.ListDrafts(ctx, "user1", 10)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, second.ID, drafts[0].ID)
	assert.Equal(t, first.ID, drafts[1].ID)

	limited, err := repos.Draft.ListDrafts(ctx, "user1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDraftRepository_DuplicateID(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	d := &domain.Draft{ID: "fixed", UserID: "u", ContractType: "t", ClientName: "c", FreelancerName: "f", ProjectScope: "s", Content: "x", Source: domain.SourceAI}
	require.NoError(t, repos.Draft.SaveDraft(ctx, d))
	err := repos.Draft.SaveDraft(ctx, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save draft")
}
