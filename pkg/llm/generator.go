package llm

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/proposalfast/proposalfast/pkg/config"
	"github.com/proposalfast/proposalfast/pkg/domain"
)

// default system prompt for contract generation
const defaultSystemPrompt = `You are an expert contract writer for freelancers.
Write clear, professional, legally sound contracts in plain text.
Every contract must include: parties, scope of work, compensation and payment terms, timeline,
revisions, intellectual property, confidentiality, termination and signature blocks.
Use the exact names, amounts and dates provided. Do not invent extra fees or deadlines.
Do not use Markdown or HTML formatting.`

// Generator writes contracts with the LLM
type Generator struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
	sanitizer *bluemonday.Policy
}

// NewGenerator creates a new contract generator
func NewGenerator(cfg config.LLMConfig) *Generator {
	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Generator{
		client:    newOpenAIClient(cfg),
		config:    cfg,
		systemMsg: systemMsg,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// GenerateContract writes a contract for the request, memoryContext biases style when not empty
func (g *Generator) GenerateContract(ctx context.Context, req domain.GenerateRequest, memoryContext string) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Temperature: float32(g.config.Temperature),
		MaxTokens:   g.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: g.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: buildContractPrompt(req, memoryContext)},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response from llm", ErrGenerationUnavailable)
	}

	text := g.sanitize(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty contract", ErrGenerationUnavailable)
	}
	return text, nil
}

var (
	angleRe   = regexp.MustCompile(`<[^<>]*>`)
	htmlTagRe = regexp.MustCompile(`(?i)^</?(a|b|blockquote|body|br|code|div|em|h[1-6]|head|hr|html|i|li|ol|p|pre|script|span|strong|style|table|tbody|td|th|thead|tr|u|ul)(\s[^<>]*)?/?>$`)
	commentRe = regexp.MustCompile(`^<!(--|doctype)`)
)

// sanitize strips any html the model produced. Angle-bracket text that is not a known tag,
// like <Client Name> placeholders or <jane@example.com>, is escaped first so it survives.
func (g *Generator) sanitize(s string) string {
	s = angleRe.ReplaceAllStringFunc(s, func(m string) string {
		if htmlTagRe.MatchString(m) || commentRe.MatchString(strings.ToLower(m)) {
			return m
		}
		return html.EscapeString(m)
	})
	return strings.TrimSpace(html.UnescapeString(g.sanitizer.Sanitize(s)))
}

// buildContractPrompt creates the user prompt for contract generation
func buildContractPrompt(req domain.GenerateRequest, memoryContext string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Write a %s contract.\n\n", req.ContractType))
	sb.WriteString(fmt.Sprintf("Client: %s\n", req.ClientName))
	sb.WriteString(fmt.Sprintf("Freelancer: %s\n", req.FreelancerName))
	sb.WriteString(fmt.Sprintf("Project scope: %s\n", req.ProjectScope))
	if req.Budget != "" {
		sb.WriteString(fmt.Sprintf("Budget: %s\n", req.Budget))
	}
	if req.Timeline != "" {
		sb.WriteString(fmt.Sprintf("Timeline: %s\n", req.Timeline))
	}

	if memoryContext != "" {
		sb.WriteString("\nClient preferences from previous contracts:\n")
		sb.WriteString(memoryContext)
		sb.WriteString("\n")
	}

	sb.WriteString("\nRespond with the full contract text only.")
	return sb.String()
}
