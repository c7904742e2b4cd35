// Package llm talks to an OpenAI-compatible API to generate contracts and extract client preferences.
package llm

import (
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/proposalfast/proposalfast/pkg/config"
)

var (
	// ErrGenerationUnavailable is returned when the contract could not be generated by the model
	ErrGenerationUnavailable = errors.New("contract generation unavailable")
	// ErrExtractionUnavailable is returned when the extraction call itself failed
	ErrExtractionUnavailable = errors.New("preference extraction unavailable")
	// ErrExtractionParse is returned when the extraction reply is not valid JSON
	ErrExtractionParse = errors.New("preference extraction reply is not valid json")
)

// newOpenAIClient makes a client for the configured endpoint with the request timeout applied
func newOpenAIClient(cfg config.LLMConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return openai.NewClientWithConfig(clientConfig)
}
