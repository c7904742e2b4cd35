package llm

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proposalfast/proposalfast/pkg/domain"
)

func testRequest() domain.GenerateRequest {
	return domain.GenerateRequest{
		ContractType:   "nda",
		ClientName:     "Acme Corp",
		FreelancerName: "Jane Doe",
		ProjectScope:   "Mobile app design",
		Budget:         "$5000",
		Timeline:       "6 weeks",
		UseMemory:      true,
	}
}

func TestGenerator_GenerateContract(t *testing.T) {
	fake := newFakeLLM(t, "NDA AGREEMENT\n\nBetween Acme Corp and Jane Doe.")
	gen := NewGenerator(testLLMConfig(fake.URL))

	text, err := gen.GenerateContract(context.Background(), testRequest(), "The client prefers a formal tone.")
	require.NoError(t, err)
	assert.Equal(t, "NDA AGREEMENT\n\nBetween Acme Corp and Jane Doe.", text)

	req := fake.lastRequest(t)
	assert.Equal(t, "test-model", req.Model)
	assert.InDelta(t, 0.7, req.Temperature, 0.001)
	assert.Equal(t, 2000, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, defaultSystemPrompt, req.Messages[0].Content)
	user := req.Messages[1].Content
	assert.Contains(t, user, "Write a nda contract.")
	assert.Contains(t, user, "Client: Acme Corp")
	assert.Contains(t, user, "Freelancer: Jane Doe")
	assert.Contains(t, user, "Budget: $5000")
	assert.Contains(t, user, "Timeline: 6 weeks")
	assert.Contains(t, user, "Client preferences from previous contracts:\nThe client prefers a formal tone.")
}

func TestGenerator_GenerateContractWithoutMemory(t *testing.T) {
	fake := newFakeLLM(t, "contract text")
	cfg := testLLMConfig(fake.URL)
	cfg.SystemPrompt = "custom prompt"
	gen := NewGenerator(cfg)

	req := testRequest()
	req.Budget, req.Timeline = "", ""
	_, err := gen.GenerateContract(context.Background(), req, "")
	require.NoError(t, err)

	sent := fake.lastRequest(t)
	assert.Equal(t, "custom prompt", sent.Messages[0].Content)
	assert.NotContains(t, sent.Messages[1].Content, "Client preferences")
	assert.NotContains(t, sent.Messages[1].Content, "Budget:")
	assert.NotContains(t, sent.Messages[1].Content, "Timeline:")
}

func TestGenerator_SanitizesHTML(t *testing.T) {
	fake := newFakeLLM(t, "<p>Terms &amp; conditions</p><script>alert(1)</script>")
	gen := NewGenerator(testLLMConfig(fake.URL))

	text, err := gen.GenerateContract(context.Background(), testRequest(), "")
	require.NoError(t, err)
	assert.Equal(t, "Terms & conditions", text)
}

func TestGenerator_KeepsAngleBracketText(t *testing.T) {
	gen := NewGenerator(testLLMConfig("http://127.0.0.1:1"))

	tbl := []struct {
		name, in, want string
	}{
		{"placeholders", "Signed by <Client Name> on <Date>", "Signed by <Client Name> on <Date>"},
		{"email", "Contact: Jane <jane@example.com>", "Contact: Jane <jane@example.com>"},
		{"placeholder inside html", "<p>Signed by <Client Name></p>", "Signed by <Client Name>"},
		{"comparison", "late fee applies if delay > 5 days and < 10 days", "late fee applies if delay > 5 days and < 10 days"},
		{"script removed", "Terms <script>alert(1)</script>for <Client>", "Terms for <Client>"},
		{"comment removed", "Scope<!-- draft --> of work", "Scope of work"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gen.sanitize(tt.in))
		})
	}
}

func TestGenerator_Failures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		fake := newFakeLLM(t, "unused")
		fake.setStatus(http.StatusInternalServerError)
		gen := NewGenerator(testLLMConfig(fake.URL))

		_, err := gen.GenerateContract(context.Background(), testRequest(), "")
		require.ErrorIs(t, err, ErrGenerationUnavailable)
	})

	t.Run("no choices", func(t *testing.T) {
		fake := newFakeLLM(t, "")
		gen := NewGenerator(testLLMConfig(fake.URL))

		_, err := gen.GenerateContract(context.Background(), testRequest(), "")
		require.ErrorIs(t, err, ErrGenerationUnavailable)
	})

	t.Run("blank after sanitizing", func(t *testing.T) {
		fake := newFakeLLM(t, "<div>  </div>")
		gen := NewGenerator(testLLMConfig(fake.URL))

		_, err := gen.GenerateContract(context.Background(), testRequest(), "")
		require.ErrorIs(t, err, ErrGenerationUnavailable)
	})

	t.Run("canceled context", func(t *testing.T) {
		fake := newFakeLLM(t, "contract")
		gen := NewGenerator(testLLMConfig(fake.URL))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := gen.GenerateContract(ctx, testRequest(), "")
		require.ErrorIs(t, err, ErrGenerationUnavailable)
	})
}
