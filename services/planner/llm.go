// File: services/planner/llm.go
package planner

import (
	"context"
	"strings"
	"time"
)

// LLMClient abstracts the generation backend so it can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// MockLLM returns a canned response, for tests and local runs without keys.
type MockLLM struct {
	Response string
	Err      error
}

func (m MockLLM) Complete(_ context.Context, _ string) (string, error) {
	return m.Response, m.Err
}

// RetryPolicy wraps generation calls with bounded retries on rate limits.
// Backoff is linear: wait 15s x attempt-number between tries.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Sleep       func(d time.Duration)
}

// DefaultRetryPolicy matches the provider's documented limits: 3 attempts
// with 15s, 30s waits in between.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(attempt int) time.Duration { return time.Duration(attempt) * 15 * time.Second },
		Sleep:       time.Sleep,
	}
}

// CompleteWithRetry runs the client under the retry policy. Only errors that
// classify as rate limits are retried; anything else propagates immediately.
// Exhausted retries come back as a tagged *RateLimitedError.
func CompleteWithRetry(ctx context.Context, client LLMClient, prompt string, policy RetryPolicy) (string, error) {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := client.Complete(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if !isRateLimited(err) {
			return "", err
		}
		lastErr = err
		if attempt < attempts && policy.Sleep != nil && policy.Backoff != nil {
			policy.Sleep(policy.Backoff(attempt))
		}
	}
	return "", &RateLimitedError{Attempts: attempts, Err: lastErr}
}

func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "quota")
}
