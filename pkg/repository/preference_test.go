package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

func TestPreferenceRepository_UpsertAndGet(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Preference.GetPreference(ctx, "user1", "Acme")
	require.ErrorIs(t, err, ErrNotFound)

	created, err := repos.Preference.UpsertPreference(ctx, "user1", "Acme", domain.ExtractionResult{
		Tone:           domain.ToneFormal,
		Industry:       "retail",
		PreferredStyle: domain.StyleDetailed,
		KeyTerms:       []string{"net 30", "IP transfer"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ContractCount)

	pref, err := repos.Preference.GetPreference(ctx, "user1", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "user1", pref.UserID)
	assert.Equal(t, "Acme", pref.ClientName)
	assert.Equal(t, domain.ToneFormal, pref.Tone)
	assert.Equal(t, "retail", pref.Industry)
	assert.Equal(t, domain.StyleDetailed, pref.PreferredStyle)
	assert.Equal(t, []string{"net 30", "IP transfer"}, pref.KeyTerms)
	assert.Equal(t, 1, pref.ContractCount)
	assert.False(t, pref.UpdatedAt.IsZero())

	// merge: new non-empty fields win, empty ones keep stored values
	updated, err := repos.Preference.UpsertPreference(ctx, "user1", "Acme", domain.ExtractionResult{
		Tone:     domain.ToneCasual,
		KeyTerms: []string{"milestones", "net 30"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ContractCount)
	assert.Equal(t, domain.ToneCasual, updated.Tone)
	assert.Equal(t, "retail", updated.Industry)
	assert.Equal(t, domain.StyleDetailed, updated.PreferredStyle)
	assert.Equal(t, []string{"milestones", "net 30", "IP transfer"}, updated.KeyTerms)
}

func TestPreferenceRepository_CaseSensitiveClientName(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Preference.UpsertPreference(ctx, "user1", "Acme Corp", domain.ExtractionResult{Industry: "retail"})
	require.NoError(t, err)

	_, err = repos.Preference.GetPreference(ctx, "user1", "ACME CORP")
	require.ErrorIs(t, err, ErrNotFound)

	// and another user never sees it
	_, err = repos.Preference.GetPreference(ctx, "user2", "Acme Corp")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPreferenceRepository_CountMonotonic(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Preference.UpsertPreference(ctx, "user1", "Acme", domain.ExtractionResult{Tone: domain.ToneFormal, Industry: "legal"})
	require.NoError(t, err)

	const cycles = 7
	for i := 0; i < cycles; i++ {
		// all-empty extractions still count but never clear fields
		_, err := repos.Preference.UpsertPreference(ctx, "user1", "Acme", domain.ExtractionResult{})
		require.NoError(t, err)
	}

	pref, err := repos.Preference.GetPreference(ctx, "user1", "Acme")
	require.NoError(t, err)
	assert.Equal(t, 1+cycles, pref.ContractCount)
	assert.Equal(t, domain.ToneFormal, pref.Tone)
	assert.Equal(t, "legal", pref.Industry)

	// the trigger rejects decrements
	_, err = repos.DB.ExecContext(ctx, "UPDATE client_preferences SET contract_count = 1 WHERE client_name = 'Acme'")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract_count must not decrease")
}

func TestPreferenceRepository_ConcurrentUpserts(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "prefs.db") + "?mode=rwc&_txlock=immediate"
	// same pool limits as the config defaults, so upserts race on separate connections
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn, MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	require.Equal(t, 10, repos.DB.Stats().MaxOpenConnections)
	ctx := context.Background()

	const workers = 30
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := repos.Preference.UpsertPreference(ctx, "user1", "Acme", domain.ExtractionResult{
				KeyTerms: []string{fmt.Sprintf("term-%d", i)},
			})
			assert.NoError(t, err)
		}(i)
	}
	close(start)
	wg.Wait()

	pref, err := repos.Preference.GetPreference(ctx, "user1", "Acme")
	require.NoError(t, err)
	assert.Equal(t, workers, pref.ContractCount, "no lost updates")
	assert.Len(t, pref.KeyTerms, MaxKeyTerms)
}

func TestPreferenceRepository_Delete(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Preference.UpsertPreference(ctx, "user1", "Acme", domain.ExtractionResult{Tone: domain.ToneCasual})
	require.NoError(t, err)

	require.NoError(t, repos.Preference.DeletePreference(ctx, "user1", "Acme"))
	require.NoError(t, repos.Preference.DeletePreference(ctx, "user1", "Acme"), "second delete is not an error")

	_, err = repos.Preference.GetPreference(ctx, "user1", "Acme")
	require.ErrorIs(t, err, ErrNotFound)

	// recreated record starts from 1 again
	pref, err := repos.Preference.UpsertPreference(ctx, "user1", "Acme", domain.ExtractionResult{})
	require.NoError(t, err)
	assert.Equal(t, 1, pref.ContractCount)
}

func TestPreferenceRepository_List(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	upsertN := func(client string, n int) {
		for i := 0; i < n; i++ {
			_, err := repos.Preference.UpsertPreference(ctx, "user1", client, domain.ExtractionResult{})
			require.NoError(t, err)
		}
	}
	upsertN("Beta", 1)
	upsertN("Acme", 3)
	upsertN("Gamma", 2)
	_, err := repos.Preference.UpsertPreference(ctx, "user2", "Other", domain.ExtractionResult{})
	require.NoError(t, err)

	prefs, err := repos.Preference.ListPreferences(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, prefs, 3)
	assert.Equal(t, "Acme", prefs[0].ClientName)
	assert.Equal(t, 3, prefs[0].ContractCount)
	assert.Equal(t, "Gamma", prefs[1].ClientName)
	assert.Equal(t, "Beta", prefs[2].ClientName)

	empty, err := repos.Preference.ListPreferences(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPreferenceRepository_ClosedDB(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, repos.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = repos.Preference.UpsertPreference(ctx, "user1", "Acme", domain.ExtractionResult{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestMergeKeyTerms(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		fresh    []string
		want     []string
	}{
		{name: "both empty", want: []string{}},
		{name: "fresh only", fresh: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "fresh first", existing: []string{"x"}, fresh: []string{"a"}, want: []string{"a", "x"}},
		{name: "dedup case insensitive", existing: []string{"Net 30"}, fresh: []string{"net 30"}, want: []string{"net 30"}},
		{name: "blank dropped", fresh: []string{" ", "a "}, want: []string{"a"}},
		{name: "capped", existing: []string{"e", "f", "g"}, fresh: []string{"a", "b", "c"}, want: []string{"a", "b", "c", "e", "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeKeyTerms(tt.existing, tt.fresh))
		})
	}
}
