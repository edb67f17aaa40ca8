package memo

import (
	"context"
	"fmt"

	"github.com/lexindia/precedent/internal/model"
)

// Provider generates an optional polished summary of a research memo. The
// deterministic memo is always produced first; a provider only supplements
// it and its failures degrade to warnings.
type Provider interface {
	Name() string
	Summarize(ctx context.Context, memoMarkdown string, maxTokens int) (string, error)
}

// NewProvider builds a provider from configuration. An empty provider name
// means summarization is disabled and (nil, nil) is returned.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return newOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q (supported: openai)", cfg.Provider)
	}
}
