package tutor

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completionStub struct {
	enabled bool
	reply   string
	err     error

	lastSystem string
	lastPrompt string
}

func (c *completionStub) Enabled() bool { return c.enabled }

func (c *completionStub) Complete(ctx context.Context, system, prompt string) (string, error) {
	c.lastSystem = system
	c.lastPrompt = prompt
	return c.reply, c.err
}

func TestService_Respond_localTriggers(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name        string
		message     string
		ageBand     string
		wantPart    string
		wantSuggest bool
	}{
		{name: "error keyword, teen", message: "I keep getting an ERROR in my code", ageBand: AgeBandTeen, wantPart: "Errors are information", wantSuggest: true},
		{name: "bug keyword, junior", message: "there is a bug somewhere", ageBand: AgeBandJunior, wantPart: "🐛", wantSuggest: true},
		{name: "loop keyword", message: "how do I write a loop?", ageBand: AgeBandTeen, wantPart: "A loop repeats", wantSuggest: true},
		{name: "function keyword, junior", message: "what is a Function", ageBand: AgeBandJunior, wantPart: "magic spell", wantSuggest: true},
		{name: "variable keyword has no suggestion", message: "my variable is wrong", ageBand: AgeBandTeen, wantPart: "binds a name"},
		{name: "list keyword", message: "how do lists work", ageBand: AgeBandJunior, wantPart: "🚂", wantSuggest: true},
		{name: "stuck keyword", message: "I'm stuck", ageBand: AgeBandTeen, wantPart: "stuck"},
		{name: "no match falls back, junior", message: "tell me about space travel", ageBand: AgeBandJunior, wantPart: "great question"},
		{name: "no match falls back, teen", message: "tell me about space travel", ageBand: AgeBandTeen, wantPart: "Walk me through"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := svc.Respond(ctx, Request{Message: tt.message, AgeBand: tt.ageBand, Mode: ModeChat})
			assert.Contains(t, reply.Message, tt.wantPart)
			if tt.wantSuggest {
				assert.NotNil(t, reply.Suggestion)
			} else {
				assert.Nil(t, reply.Suggestion)
			}
		})
	}
}

func TestService_Respond_firstMatchWins(t *testing.T) {
	svc := NewService(nil, nil)

	// "error" is checked before "loop"
	reply := svc.Respond(context.Background(), Request{
		Message: "I get an error inside my loop", AgeBand: AgeBandTeen, Mode: ModeChat,
	})
	assert.Contains(t, reply.Message, "Errors are information")
}

func TestService_Respond_remote(t *testing.T) {
	stub := &completionStub{enabled: true, reply: "  Here is how recursion works.  "}
	svc := NewService(stub, nil)

	reply := svc.Respond(context.Background(), Request{
		Message: "explain recursion", AgeBand: AgeBandTeen, Mode: ModeCodeReview, Context: "def f(): pass",
	})

	assert.Equal(t, "Here is how recursion works.", reply.Message)
	assert.Nil(t, reply.Suggestion)

	// system instruction reflects age band and mode
	assert.Contains(t, stub.lastSystem, "12-17")
	assert.Contains(t, stub.lastSystem, "Review the code")
	// caller context is sent ahead of the message
	require.True(t, strings.HasPrefix(stub.lastPrompt, "Context:\n"))
	assert.Contains(t, stub.lastPrompt, "explain recursion")
}

func TestService_Respond_remoteFailureDegrades(t *testing.T) {
	stub := &completionStub{enabled: true, err: errors.New("upstream down")}
	svc := NewService(stub, testLogger{})

	junior := svc.Respond(context.Background(), Request{Message: "help", AgeBand: AgeBandJunior, Mode: ModeChat})
	teen := svc.Respond(context.Background(), Request{Message: "help", AgeBand: AgeBandTeen, Mode: ModeChat})

	assert.Contains(t, junior.Message, "robot brain")
	assert.Contains(t, teen.Message, "try again")
	assert.NotEqual(t, junior.Message, teen.Message)
}

type testLogger struct{}

func (testLogger) Enable(bool) {}

func (testLogger) Debug(msg string, args ...interface{}) {}

func (testLogger) Info(msg string, args ...interface{}) {}

func (testLogger) Error(msg string, args ...interface{}) {}

func (testLogger) Fatal(msg string, args ...interface{}) {}
