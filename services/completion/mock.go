package completionsvc

import (
	"context"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

// serviceMock returns canned replies; for tests and for running without an API key.
type serviceMock struct {
	enabled bool
	reply   string
	err     error

	// last recorded call
	LastSystem string
	LastPrompt string
}

var _ core.CompletionService = (*serviceMock)(nil)

func NewServiceMock(enabled bool, reply string, err error) *serviceMock {
	return &serviceMock{enabled: enabled, reply: reply, err: err}
}

func (svc *serviceMock) Enabled() bool { return svc.enabled }

func (svc *serviceMock) Complete(ctx context.Context, system, prompt string) (string, error) {
	svc.LastSystem = system
	svc.LastPrompt = prompt
	if svc.err != nil {
		return "", svc.err
	}
	return svc.reply, nil
}
