package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/sashabaranov/go-openai"

	"github.com/proposalfast/proposalfast/pkg/config"
	"github.com/proposalfast/proposalfast/pkg/domain"
)

// maxExtractedTerms is the number of key terms taken from a single extraction
const maxExtractedTerms = 3

const extractionSystemPrompt = `You analyze freelance contracts and describe the client's communication preferences.
Respond with a JSON object only, no prose.`

// extractionReply is the JSON object the model is asked to produce
type extractionReply struct {
	Tone           string   `json:"tone" jsonschema:"enum=formal,enum=casual,enum=balanced,description=Tone of the contract"`
	Industry       string   `json:"industry" jsonschema:"description=Client industry in a few words"`
	PreferredStyle string   `json:"preferredStyle" jsonschema:"enum=detailed,enum=concise,enum=moderate,description=Level of detail"`
	KeyTerms       []string `json:"keyTerms" jsonschema:"maxItems=3,description=Up to three short key terms the client cares about"`
}

// Extractor pulls client preferences out of generated contracts
type Extractor struct {
	client *openai.Client
	config config.LLMConfig
	schema *jsonschema.Schema
}

// NewExtractor creates a new preference extractor
func NewExtractor(cfg config.LLMConfig) *Extractor {
	return &Extractor{
		client: newOpenAIClient(cfg),
		config: cfg,
		schema: extractionSchema(),
	}
}

// ExtractPreferences asks the model for the client's tone, industry, style and key terms.
// Unknown tone or style values come back unset, key terms are trimmed and capped.
func (e *Extractor) ExtractPreferences(ctx context.Context, contractText, clientName, contractType string) (domain.ExtractionResult, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       e.config.Model,
		Temperature: float32(e.config.Extraction.Temperature),
		MaxTokens:   e.config.Extraction.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildExtractionPrompt(truncateRunes(contractText, e.config.Extraction.MaxChars), clientName, contractType)},
		},
	}
	if e.config.Extraction.StructuredOutput {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "client_preferences",
				Schema: e.schema,
			},
		}
	}

	resp, err := e.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: %w", ErrExtractionUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return domain.ExtractionResult{}, fmt.Errorf("%w: no response from llm", ErrExtractionUnavailable)
	}

	return parseExtraction(resp.Choices[0].Message.Content)
}

// parseExtraction decodes the model reply, with or without a markdown code fence around it
func parseExtraction(content string) (domain.ExtractionResult, error) {
	var reply extractionReply
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &reply); err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: %w", ErrExtractionParse, err)
	}

	res := domain.ExtractionResult{
		Tone:           domain.ParseTone(reply.Tone),
		Industry:       strings.TrimSpace(reply.Industry),
		PreferredStyle: domain.ParseStyle(reply.PreferredStyle),
	}
	for _, term := range reply.KeyTerms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		res.KeyTerms = append(res.KeyTerms, term)
		if len(res.KeyTerms) == maxExtractedTerms {
			break
		}
	}
	return res, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence if present
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:] // drop language tag line
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncateRunes cuts s to at most n characters without splitting a multibyte rune
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func buildExtractionPrompt(contractText, clientName, contractType string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Client: %s\n", clientName))
	sb.WriteString(fmt.Sprintf("Contract type: %s\n\n", contractType))
	sb.WriteString("Contract:\n")
	sb.WriteString(contractText)
	sb.WriteString("\n\nReturn JSON with these fields:\n")
	sb.WriteString(`- "tone": one of "formal", "casual", "balanced"` + "\n")
	sb.WriteString(`- "industry": the client's industry in a few words` + "\n")
	sb.WriteString(`- "preferredStyle": one of "detailed", "concise", "moderate"` + "\n")
	sb.WriteString(`- "keyTerms": up to 3 short terms the client cares about` + "\n")
	return sb.String()
}

// extractionSchema reflects the reply struct into an inline JSON schema for structured output
func extractionSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	schema := r.Reflect(&extractionReply{})
	schema.Version = "" // response format takes a bare schema
	return schema
}
