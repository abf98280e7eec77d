package core

import "context"

// CompletionService is any service that can turn a system instruction and a
// user prompt into completion text.
type CompletionService interface {
	// Complete returns the completion text for the given system instruction
	// and user prompt.
	Complete(ctx context.Context, system, prompt string) (string, error)
	// Enabled reports whether the service is configured to make remote calls.
	Enabled() bool
}
