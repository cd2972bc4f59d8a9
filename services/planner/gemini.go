// File: services/planner/gemini.go
package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripmesh/utils"
)

// GeminiClient generates plans through Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient initializes a Gemini-backed LLM client.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "models/gemini-1.5-pro"
	}
	model := client.GenerativeModel(modelName)
	utils.GetLogger().Sugar().Infof("Gemini client initialized with model %s", modelName)
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned empty content")
	}
	return sb.String(), nil
}

// Close releases the underlying API connection.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
