// File: services/planner/agents.go
package planner

import (
	"context"
	"fmt"

	"tripmesh/models"
)

// Agent couples an LLM backend with the retry policy and response parsing.
type Agent struct {
	llm   LLMClient
	retry RetryPolicy
}

// NewAgent builds an agent with the default retry policy.
func NewAgent(llm LLMClient) *Agent {
	return &Agent{llm: llm, retry: DefaultRetryPolicy()}
}

// NewAgentWithRetry builds an agent with an explicit retry policy.
func NewAgentWithRetry(llm LLMClient, retry RetryPolicy) *Agent {
	return &Agent{llm: llm, retry: retry}
}

// PlanItinerary generates and parses the raw itinerary document.
func (a *Agent) PlanItinerary(ctx context.Context, req models.PlanRequest) (map[string]any, error) {
	text, err := CompleteWithRetry(ctx, a.llm, BuildItineraryPrompt(req), a.retry)
	if err != nil {
		return nil, fmt.Errorf("itinerary generation failed: %w", err)
	}
	doc, err := ParseObject(text)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// EstimateBudget generates and parses the raw budget document.
func (a *Agent) EstimateBudget(ctx context.Context, req models.PlanRequest) (map[string]any, error) {
	text, err := CompleteWithRetry(ctx, a.llm, BuildBudgetPrompt(req), a.retry)
	if err != nil {
		return nil, fmt.Errorf("budget estimation failed: %w", err)
	}
	doc, err := ParseObject(text)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
