package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposalfast/proposalfast/pkg/config"
	"github.com/proposalfast/proposalfast/pkg/domain"
	"github.com/proposalfast/proposalfast/pkg/llm"
	"github.com/proposalfast/proposalfast/pkg/repository"
)

// fakeOpenAI answers generation prompts with a contract echoing the prompt fields
// and extraction prompts with a fixed preference object
type fakeOpenAI struct {
	*httptest.Server
	mu            sync.Mutex
	genPrompts    []string
	extractReply  string
	failGenerate  bool
	extractCalled int
}

func newFakeOpenAI(t *testing.T) *fakeOpenAI {
	t.Helper()
	f := &fakeOpenAI{extractReply: "```json\n" + `{"tone":"formal","industry":"marketing","preferredStyle":"concise","keyTerms":["landing page"]}` + "\n```"}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []openai.ChatCompletionMessage `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) < 2 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		system, user := req.Messages[0].Content, req.Messages[1].Content

		f.mu.Lock()
		var reply string
		switch {
		case strings.Contains(system, "JSON object"):
			f.extractCalled++
			reply = f.extractReply
		case f.failGenerate:
			f.mu.Unlock()
			http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
			return
		default:
			f.genPrompts = append(f.genPrompts, user)
			reply = "SERVICE AGREEMENT\n\n" + user
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply}}},
		})
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeOpenAI) prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.genPrompts...)
}

func setupE2E(t *testing.T) (*Pipeline, *repository.Repositories, *fakeOpenAI) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	fake := newFakeOpenAI(t)
	llmCfg := config.LLMConfig{
		Endpoint: fake.URL, APIKey: "key", Model: "test", Temperature: 0.7, MaxTokens: 1000, Timeout: 5 * time.Second,
		Extraction: config.ExtractionConfig{Temperature: 0.3, MaxTokens: 300, MaxChars: 2000},
	}

	p := New(Config{
		Preferences:  repos.Preference,
		Generator:    llm.NewGenerator(llmCfg),
		Extractor:    llm.NewExtractor(llmCfg),
		Drafts:       repos.Draft,
		LearnTimeout: 5 * time.Second,
	})
	return p, repos, fake
}

func TestE2E_FirstAndSecondContract(t *testing.T) {
	p, repos, fake := setupE2E(t)
	ctx := context.Background()
	req := testRequest(true)

	// first contract, no memory yet
	res, err := p.Generate(ctx, "jane-id", req)
	require.NoError(t, err)
	p.Wait()

	assert.Equal(t, domain.SourceAI, res.Source)
	assert.False(t, res.MemoryApplied)
	assert.Contains(t, res.Contract, "Acme")
	assert.Contains(t, res.Contract, "$2,000")
	require.NotEmpty(t, res.DraftID)

	pref, err := repos.Preference.GetPreference(ctx, "jane-id", "Acme")
	require.NoError(t, err)
	assert.Equal(t, 1, pref.ContractCount)
	assert.Equal(t, domain.ToneFormal, pref.Tone)
	assert.Equal(t, "marketing", pref.Industry)
	assert.Equal(t, domain.StyleConcise, pref.PreferredStyle)
	assert.Equal(t, []string{"landing page"}, pref.KeyTerms)

	// draft was stored for the user
	draft, err := repos.Draft.GetDraft(ctx, "jane-id", res.DraftID)
	require.NoError(t, err)
	assert.Equal(t, res.Contract, draft.Content)

	// second contract uses the learned memory
	res2, err := p.Generate(ctx, "jane-id", req)
	require.NoError(t, err)
	p.Wait()

	assert.True(t, res2.MemoryApplied)
	prompts := fake.prompts()
	require.Len(t, prompts, 2)
	assert.NotContains(t, prompts[0], "Client preferences from previous contracts")
	assert.Contains(t, prompts[1], "Client preferences from previous contracts:\nThe client prefers a formal tone.")
	assert.Contains(t, prompts[1], "Key terms the client cares about: landing page.")

	pref, err = repos.Preference.GetPreference(ctx, "jane-id", "Acme")
	require.NoError(t, err)
	assert.Equal(t, 2, pref.ContractCount)
}

func TestE2E_EmptyExtractionsStillCount(t *testing.T) {
	p, repos, fake := setupE2E(t)
	ctx := context.Background()

	_, err := p.Generate(ctx, "user1", testRequest(true))
	require.NoError(t, err)
	p.Wait()

	// later extractions return nothing useful
	fake.mu.Lock()
	fake.extractReply = `{"tone":null,"industry":"","preferredStyle":"unknown","keyTerms":[]}`
	fake.mu.Unlock()

	const cycles = 3
	for range cycles {
		_, err := p.Generate(ctx, "user1", testRequest(true))
		require.NoError(t, err)
		p.Wait()
	}

	pref, err := repos.Preference.GetPreference(ctx, "user1", "Acme")
	require.NoError(t, err)
	assert.Equal(t, 1+cycles, pref.ContractCount)
	assert.Equal(t, domain.ToneFormal, pref.Tone, "empty extraction must not clear stored values")
	assert.Equal(t, "marketing", pref.Industry)
	assert.Equal(t, domain.StyleConcise, pref.PreferredStyle)
}

func TestE2E_UnparsableExtractionLeavesMemory(t *testing.T) {
	p, repos, fake := setupE2E(t)
	fake.extractReply = "I think the client is formal"

	res, err := p.Generate(context.Background(), "user1", testRequest(true))
	require.NoError(t, err)
	p.Wait()

	assert.Equal(t, domain.SourceAI, res.Source)
	_, err = repos.Preference.GetPreference(context.Background(), "user1", "Acme")
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, int64(1), p.Stats().Failures[StageExtract])
}

func TestE2E_GenerationDownUsesTemplate(t *testing.T) {
	p, repos, fake := setupE2E(t)
	fake.failGenerate = true

	res, err := p.Generate(context.Background(), "user1", testRequest(true))
	require.NoError(t, err)
	p.Wait()

	assert.Equal(t, domain.SourceTemplate, res.Source)
	assert.Contains(t, res.Contract, "SERVICE AGREEMENT")
	assert.Contains(t, res.Contract, "$2,000")
	assert.Zero(t, fake.extractCalled)

	drafts, err := repos.Draft.ListDrafts(context.Background(), "user1", 10)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.SourceTemplate, drafts[0].Source)
}

func TestE2E_ClientsAndUsersAreIsolated(t *testing.T) {
	p, repos, _ := setupE2E(t)
	ctx := context.Background()

	for i, user := range []string{"u1", "u2"} {
		for _, client := range []string{"Acme", "ACME"} {
			req := testRequest(true)
			req.ClientName = client
			req.ProjectScope = fmt.Sprintf("scope %d", i)
			_, err := p.Generate(ctx, user, req)
			require.NoError(t, err)
		}
	}
	p.Wait()

	for _, user := range []string{"u1", "u2"} {
		prefs, err := repos.Preference.ListPreferences(ctx, user)
		require.NoError(t, err)
		require.Len(t, prefs, 2, user)
		for _, pref := range prefs {
			assert.Equal(t, 1, pref.ContractCount)
		}
	}
}
