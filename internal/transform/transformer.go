package transform

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination=mocks/mock_transformer.go -package=mocks github.com/rewordhq/reword-gw/internal/transform Transformer

// Transformer rewords a piece of text. Implementations call an external model
// provider and may take substantially longer than a webhook's synchronous
// response budget; callers bound them with a context deadline.
type Transformer interface {
	Transform(ctx context.Context, text string) (string, error)
}

// DefaultSystemPrompt instructs the model to reword without commentary.
const DefaultSystemPrompt = "You rewrite messages to be clearer and more professional " +
	"while preserving their meaning and approximate length. " +
	"Reply with only the rewritten text, no preamble and no quotes."

// Options configures a provider-backed transformer.
type Options struct {
	APIKey       string
	APIBase      string
	Model        string
	MaxTokens    int64
	SystemPrompt string
	Timeout      time.Duration
}

func (o *Options) applyDefaults() {
	if o.MaxTokens <= 0 {
		o.MaxTokens = 1024
	}
	if o.SystemPrompt == "" {
		o.SystemPrompt = DefaultSystemPrompt
	}
}

// New returns the transformer for a configured provider name.
func New(provider string, opts Options) (Transformer, error) {
	switch provider {
	case "", "anthropic":
		return NewAnthropic(opts), nil
	case "openai":
		return NewOpenAI(opts), nil
	default:
		return nil, fmt.Errorf("unknown transform provider %q (expected anthropic or openai)", provider)
	}
}
