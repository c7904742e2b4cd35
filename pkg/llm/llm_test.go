package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/proposalfast/proposalfast/pkg/config"
)

// chatRequest is the part of a chat completion request the tests look at
type chatRequest struct {
	Model          string                         `json:"model"`
	Temperature    float32                        `json:"temperature"`
	MaxTokens      int                            `json:"max_tokens"`
	Messages       []openai.ChatCompletionMessage `json:"messages"`
	ResponseFormat *struct {
		Type       openai.ChatCompletionResponseFormatType `json:"type"`
		JSONSchema *struct {
			Name   string          `json:"name"`
			Schema json.RawMessage `json:"schema"`
		} `json:"json_schema"`
	} `json:"response_format"`
}

// fakeLLM is an openai-compatible chat completions server returning canned replies
type fakeLLM struct {
	*httptest.Server
	mu       sync.Mutex
	requests []chatRequest
	reply    string
	status   int
}

func newFakeLLM(t *testing.T, reply string) *fakeLLM {
	t.Helper()
	f := &fakeLLM{reply: reply, status: http.StatusOK}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.requests = append(f.requests, req)
		status, reply := f.status, f.reply
		f.mu.Unlock()

		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		resp := openai.ChatCompletionResponse{ID: "test", Object: "chat.completion", Model: req.Model}
		if reply != "" {
			resp.Choices = []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply}}}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeLLM) lastRequest(t *testing.T) chatRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func (f *fakeLLM) setStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func testLLMConfig(endpoint string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:    endpoint,
		APIKey:      "test-key",
		Model:       "test-model",
		Temperature: 0.7,
		MaxTokens:   2000,
		Timeout:     5 * time.Second,
		Extraction: config.ExtractionConfig{
			Temperature: 0.3,
			MaxTokens:   300,
			MaxChars:    2000,
		},
	}
}
