// Package pipeline sequences contract generation with client memory: context fetch, generation with
// template fallback, draft persistence, notification and background preference learning.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/proposalfast/proposalfast/pkg/contract"
	"github.com/proposalfast/proposalfast/pkg/domain"
	"github.com/proposalfast/proposalfast/pkg/memory"
	"github.com/proposalfast/proposalfast/pkg/repository"
)

//go:generate moq -out mocks/preference_store.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/draft_store.go -pkg mocks -skip-ensure -fmt goimports . DraftStore
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// PreferenceStore reads and learns client preferences
type PreferenceStore interface {
	GetPreference(ctx context.Context, userID, clientName string) (*domain.ClientPreference, error)
	UpsertPreference(ctx context.Context, userID, clientName string, ext domain.ExtractionResult) (*domain.ClientPreference, error)
}

// Generator writes the contract text with the LLM
type Generator interface {
	GenerateContract(ctx context.Context, req domain.GenerateRequest, memoryContext string) (string, error)
}

// Extractor pulls client preferences out of a generated contract
type Extractor interface {
	ExtractPreferences(ctx context.Context, contractText, clientName, contractType string) (domain.ExtractionResult, error)
}

// DraftStore persists generated contracts
type DraftStore interface {
	SaveDraft(ctx context.Context, draft *domain.Draft) error
}

// Notifier delivers generation events to webhooks
type Notifier interface {
	Notify(ctx context.Context, userID string, ev domain.Event) (int, error)
}

// Stage names a pipeline step whose failures are absorbed
type Stage string

const (
	StageContextFetch Stage = "context_fetch"
	StageGenerate     Stage = "generate"
	StagePersistDraft Stage = "persist_draft"
	StageNotify       Stage = "notify"
	StageExtract      Stage = "extract"
	StageLearn        Stage = "learn"
)

// fallbackReason is reported to the caller when the template was used
const fallbackReason = "ai generation unavailable"

// Pipeline runs contract generation requests. Only request validation fails a call,
// every other failure degrades the result and is counted per stage.
type Pipeline struct {
	preferences PreferenceStore
	generator   Generator
	extractor   Extractor
	drafts      DraftStore
	notifier    Notifier

	learnTimeout  time.Duration
	notifyTimeout time.Duration
	now           func() time.Time

	wg       sync.WaitGroup
	counters counters
}

// Config holds pipeline dependencies and settings, Drafts and Notifier are optional
type Config struct {
	Preferences   PreferenceStore
	Generator     Generator
	Extractor     Extractor
	Drafts        DraftStore
	Notifier      Notifier
	LearnTimeout  time.Duration // budget for background extraction and upsert
	NotifyTimeout time.Duration // budget for the whole webhook fan-out
}

// Stats is a snapshot of pipeline counters
type Stats struct {
	Generated         int64           `json:"generated"`
	TemplateFallbacks int64           `json:"template_fallbacks"`
	MemoryApplied     int64           `json:"memory_applied"`
	Learned           int64           `json:"learned"`
	Failures          map[Stage]int64 `json:"failures"`
}

type counters struct {
	generated, fallbacks, memoryApplied, learned atomic.Int64

	contextFetch, generate, persistDraft, notify, extract, learn atomic.Int64
}

// New creates a pipeline with the provided configuration
func New(cfg Config) *Pipeline {
	if cfg.LearnTimeout <= 0 {
		cfg.LearnTimeout = 60 * time.Second
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 30 * time.Second
	}
	return &Pipeline{
		preferences:   cfg.Preferences,
		generator:     cfg.Generator,
		extractor:     cfg.Extractor,
		drafts:        cfg.Drafts,
		notifier:      cfg.Notifier,
		learnTimeout:  cfg.LearnTimeout,
		notifyTimeout: cfg.NotifyTimeout,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Generate produces a contract for the user. The returned error is always a *domain.ValidationError,
// failures of memory, generation, persistence and notification are absorbed.
// Learning from the produced contract runs in the background, see Wait.
func (p *Pipeline) Generate(ctx context.Context, userID string, req domain.GenerateRequest) (*domain.GenerateResult, error) {
	if err := validate(userID, req); err != nil {
		return nil, err
	}

	// 1. fetch client memory
	memoryContext := ""
	if req.UseMemory {
		memoryContext = p.fetchContext(ctx, userID, req.ClientName)
	}

	// 2. generate, fall back to the template on any failure
	res := &domain.GenerateResult{Source: domain.SourceAI, MemoryApplied: memoryContext != ""}
	text, err := p.generator.GenerateContract(ctx, req, memoryContext)
	if err != nil {
		p.absorb(StageGenerate, userID, req.ClientName, err)
		text = contract.RenderFallback(req)
		res.Source = domain.SourceTemplate
		res.FallbackReason = fallbackReason
		p.counters.fallbacks.Add(1)
	}
	res.Contract = text

	// 3. persist draft
	res.DraftID = p.saveDraft(ctx, userID, req, res)

	p.counters.generated.Add(1)
	if res.MemoryApplied {
		p.counters.memoryApplied.Add(1)
	}
	lgr.Printf("[INFO] generated %s contract for user %s, client %q, source %s, memory %v",
		req.ContractType, userID, req.ClientName, res.Source, res.MemoryApplied)

	// 4. notify webhooks
	if p.notifier != nil {
		p.notify(ctx, userID, domain.Event{
			Type:         domain.EventContractGenerated,
			UserID:       userID,
			DraftID:      res.DraftID,
			ClientName:   req.ClientName,
			ContractType: req.ContractType,
			Source:       res.Source,
			Timestamp:    p.now(),
		})
	}

	// 5. learn from the ai contract, template output says nothing about the client
	if req.UseMemory && res.Source == domain.SourceAI {
		p.learn(ctx, userID, req, text)
	}

	return res, nil
}

// Wait blocks until background learning and notifications are done
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Stats returns current counters
func (p *Pipeline) Stats() Stats {
	return Stats{
		Generated:         p.counters.generated.Load(),
		TemplateFallbacks: p.counters.fallbacks.Load(),
		MemoryApplied:     p.counters.memoryApplied.Load(),
		Learned:           p.counters.learned.Load(),
		Failures: map[Stage]int64{
			StageContextFetch: p.counters.contextFetch.Load(),
			StageGenerate:     p.counters.generate.Load(),
			StagePersistDraft: p.counters.persistDraft.Load(),
			StageNotify:       p.counters.notify.Load(),
			StageExtract:      p.counters.extract.Load(),
			StageLearn:        p.counters.learn.Load(),
		},
	}
}

// fetchContext returns the memory context for the client, empty if there is none or the store failed
func (p *Pipeline) fetchContext(ctx context.Context, userID, clientName string) string {
	if p.preferences == nil {
		return ""
	}
	pref, err := p.preferences.GetPreference(ctx, userID, clientName)
	if errors.Is(err, repository.ErrNotFound) {
		return ""
	}
	if err != nil {
		p.absorb(StageContextFetch, userID, clientName, err)
		return ""
	}
	return memory.BuildContext(pref)
}

// saveDraft stores the generated contract and returns its id, empty if not stored
func (p *Pipeline) saveDraft(ctx context.Context, userID string, req domain.GenerateRequest, res *domain.GenerateResult) string {
	if p.drafts == nil {
		return ""
	}
	draft := &domain.Draft{
		UserID:         userID,
		ContractType:   req.ContractType,
		ClientName:     req.ClientName,
		FreelancerName: req.FreelancerName,
		ProjectScope:   req.ProjectScope,
		Budget:         req.Budget,
		Timeline:       req.Timeline,
		Content:        res.Contract,
		Source:         res.Source,
		MemoryApplied:  res.MemoryApplied,
	}
	if err := p.drafts.SaveDraft(ctx, draft); err != nil {
		p.absorb(StagePersistDraft, userID, req.ClientName, err)
		return ""
	}
	return draft.ID
}

// notify sends the event in the background, detached from the request context
func (p *Pipeline) notify(ctx context.Context, userID string, ev domain.Event) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.notifyTimeout)
		defer cancel()

		failed, err := p.notifier.Notify(ctx, userID, ev)
		if err != nil {
			p.absorb(StageNotify, userID, ev.ClientName, err)
			return
		}
		if failed > 0 {
			p.counters.notify.Add(int64(failed))
		}
	}()
}

// learn extracts preferences from the contract and merges them into the client memory in the background
func (p *Pipeline) learn(ctx context.Context, userID string, req domain.GenerateRequest, text string) {
	if p.extractor == nil || p.preferences == nil {
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.learnTimeout)
		defer cancel()

		ext, err := p.extractor.ExtractPreferences(ctx, text, req.ClientName, req.ContractType)
		if err != nil {
			p.absorb(StageExtract, userID, req.ClientName, err)
			return
		}

		if ext.IsEmpty() {
			lgr.Printf("[DEBUG] nothing extracted for user %s, client %q, counting the contract only", userID, req.ClientName)
		}
		pref, err := p.preferences.UpsertPreference(ctx, userID, req.ClientName, ext)
		if err != nil {
			p.absorb(StageLearn, userID, req.ClientName, err)
			return
		}
		p.counters.learned.Add(1)
		lgr.Printf("[DEBUG] learned preferences for user %s, client %q, contracts %d", userID, req.ClientName, pref.ContractCount)
	}()
}

// absorb logs a swallowed failure and counts it for the stage
func (p *Pipeline) absorb(stage Stage, userID, clientName string, err error) {
	switch stage {
	case StageContextFetch:
		p.counters.contextFetch.Add(1)
	case StageGenerate:
		p.counters.generate.Add(1)
	case StagePersistDraft:
		p.counters.persistDraft.Add(1)
	case StageNotify:
		p.counters.notify.Add(1)
	case StageExtract:
		p.counters.extract.Add(1)
	case StageLearn:
		p.counters.learn.Add(1)
	}
	lgr.Printf("[WARN] pipeline stage=%s user=%s client=%q: %v", stage, userID, clientName, err)
}

// validate checks the user and the request, missing user is reported as the user_id field
func validate(userID string, req domain.GenerateRequest) error {
	err := req.Validate()
	if strings.TrimSpace(userID) != "" {
		return err
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		verr.Fields = append([]string{"user_id"}, verr.Fields...)
		return verr
	}
	return &domain.ValidationError{Fields: []string{"user_id"}}
}
