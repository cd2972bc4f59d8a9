// File: services/planner/openai.go
package planner

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient generates plans through an OpenAI-compatible chat endpoint.
type OpenAIClient struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIClient initializes an OpenAI-backed LLM client. BaseURL is
// optional and allows pointing at compatible gateways.
func NewOpenAIClient(apiKey, modelName, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key not set")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}
	return &OpenAIClient{model: modelName, opts: opts}, nil
}

func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(o.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
