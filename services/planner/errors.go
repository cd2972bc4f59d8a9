package planner

import (
	"errors"
	"fmt"
)

// MalformedDocumentError reports generation output that stayed unparseable
// after every repair attempt. Fatal to the request.
type MalformedDocumentError struct {
	Offset int64
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("malformed document at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("malformed document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// IsMalformedDocument reports whether err is a MalformedDocumentError.
func IsMalformedDocument(err error) bool {
	var target *MalformedDocumentError
	return errors.As(err, &target)
}

// RateLimitedError reports that the generation provider kept returning rate
// limits after every retry attempt.
type RateLimitedError struct {
	Attempts int
	Err      error
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("generation rate limited after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RateLimitedError) Unwrap() error { return e.Err }

// ProviderUnavailableError marks a failed enrichment collaborator. The
// pipeline logs it and skips the corresponding enrichment step.
type ProviderUnavailableError struct {
	Provider string
	Err      error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("%s provider unavailable: %v", e.Provider, e.Err)
}

func (e *ProviderUnavailableError) Unwrap() error { return e.Err }
