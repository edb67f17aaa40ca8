package memo

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/lexindia/precedent/internal/model"
)

// openAIProvider polishes memos through the OpenAI Chat Completions API.
type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(cfg model.LLMConfig) (*openAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = openai.GPT4oMini
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  m,
	}, nil
}

func (p *openAIProvider) Name() string {
	return "openai"
}

// Summarize asks the model for an executive summary of the memo. The model
// is constrained to the authorities already cited in the memo; it never
// introduces new ones.
func (p *openAIProvider) Summarize(ctx context.Context, memoMarkdown string, maxTokens int) (string, error) {
	if maxTokens == 0 {
		maxTokens = 1000
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You summarize legal research memos. Cite only the cases already named in the memo; " +
					"never introduce authorities that are not in it.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Summarize the following research memo in three short paragraphs:\n\n" + memoMarkdown,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
