package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5"

// Anthropic rewords text through the Anthropic Messages API.
type Anthropic struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	prompt    string
}

// NewAnthropic creates an Anthropic-backed transformer.
func NewAnthropic(opts Options) *Anthropic {
	opts.applyDefaults()

	clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.APIBase != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.APIBase))
	}

	model := opts.Model
	if model == "" {
		model = defaultAnthropicModel
	}

	return &Anthropic{
		client:    anthropic.NewClient(clientOpts...),
		model:     anthropic.Model(model),
		maxTokens: opts.MaxTokens,
		prompt:    opts.SystemPrompt,
	}
}

// Transform sends the text as a single user message and returns the model's
// text blocks joined and trimmed.
func (t *Anthropic) Transform(ctx context.Context, text string) (string, error) {
	msg, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     t.model,
		MaxTokens: t.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: t.prompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message create: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", fmt.Errorf("anthropic returned an empty completion")
	}
	return result, nil
}

var _ Transformer = (*Anthropic)(nil)
