package tutor

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

// Service turns a tutor request into a reply. It never returns an error to the
// caller: remote completion failures degrade to a canned apology and anything
// else falls back to keyword-matched replies. No conversation state is kept
// between calls.
type Service struct {
	completion core.CompletionService
	logger     core.Logger
}

func NewService(completion core.CompletionService, logger core.Logger) *Service {
	return &Service{completion: completion, logger: logger}
}

func (svc *Service) Respond(ctx context.Context, req Request) Reply {
	if svc.completion != nil && svc.completion.Enabled() {
		return svc.respondRemote(ctx, req)
	}
	return respondLocal(req)
}

func (svc *Service) respondRemote(ctx context.Context, req Request) Reply {
	prompt := req.Message
	if req.Context != "" {
		prompt = "Context:\n" + req.Context + "\n\n" + req.Message
	}

	text, err := svc.completion.Complete(ctx, systemInstruction(req.AgeBand, req.Mode), prompt)
	if err != nil {
		svc.logger.Error("tutor completion failed", errors.Wrap(err, "completing tutor reply"))
		return Reply{Message: apology(req.AgeBand)}
	}
	return Reply{Message: strings.TrimSpace(text)}
}

func respondLocal(req Request) Reply {
	msg := strings.ToLower(req.Message)
	for _, trg := range triggers {
		for _, kw := range trg.keywords {
			if strings.Contains(msg, kw) {
				reply := Reply{Message: trg.teen, Suggestion: trg.suggestion}
				if req.AgeBand == AgeBandJunior {
					reply.Message = trg.junior
				}
				return reply
			}
		}
	}
	if req.AgeBand == AgeBandJunior {
		return Reply{Message: "That's a great question! Tell me a bit more about what you're building and I'll help you figure it out. 🚀"}
	}
	return Reply{Message: "Good question. Walk me through what you're trying to do and what you've tried so far, and we'll work through it together."}
}

func systemInstruction(ageBand, mode string) string {
	var b strings.Builder
	b.WriteString("You are the CodewiseHub coding tutor. ")

	if ageBand == AgeBandJunior {
		b.WriteString("The learner is 6-11 years old: use short sentences, simple words, lots of encouragement and a playful tone. ")
	} else {
		b.WriteString("The learner is 12-17 years old: be clear and practical, explain the reasoning, and use correct terminology. ")
	}

	switch mode {
	case ModeCodeReview:
		b.WriteString("Review the code they share: point out what works, then the most important improvement, with a short example.")
	case ModePractice:
		b.WriteString("Set them a small practice exercise matched to their level, then offer to check their answer.")
	default:
		b.WriteString("Answer their question directly and end with one question that keeps them thinking.")
	}
	return b.String()
}

func apology(ageBand string) string {
	if ageBand == AgeBandJunior {
		return "Oops! My robot brain got a little sleepy. 😴 Can you ask me that again?"
	}
	return "Sorry - I couldn't reach the tutoring service just now. Please try again in a moment."
}
