package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAI rewords text through the OpenAI Chat Completions API. Also covers
// OpenAI-compatible gateways via Options.APIBase.
type OpenAI struct {
	client openai.Client
	model  string
	prompt string
}

// NewOpenAI creates an OpenAI-backed transformer.
func NewOpenAI(opts Options) *OpenAI {
	opts.applyDefaults()

	clientOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.APIBase != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.APIBase))
	}

	model := opts.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAI{
		client: openai.NewClient(clientOpts...),
		model:  model,
		prompt: opts.SystemPrompt,
	}
}

// Transform sends the text as a single-turn chat completion.
func (t *OpenAI) Transform(ctx context.Context, text string) (string, error) {
	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(t.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(t.prompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	if result == "" {
		return "", fmt.Errorf("openai returned an empty completion")
	}
	return result, nil
}

var _ Transformer = (*OpenAI)(nil)
