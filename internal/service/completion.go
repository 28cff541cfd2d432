package service

import (
	"context"
	"log/slog"
)

const completionApologyMsg = "😔 Kechirasiz, hozir javob bera olmayman. Birozdan so'ng urinib ko'ring."

type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Completion relays user text to the completion provider. It fails soft: on
// any provider error the caller still gets a fixed apology string to send,
// so an inbound message is never left unanswered.
type Completion struct {
	provider CompletionProvider

	log *slog.Logger
}

func NewCompletion(provider CompletionProvider, log *slog.Logger) *Completion {
	return &Completion{
		provider: provider,
		log:      log.With("component", "service").With("service", "completion"),
	}
}

func (s *Completion) Complete(ctx context.Context, prompt string) string {
	reply, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		s.log.Warn("completion request failed", "error", err)
		return completionApologyMsg
	}
	return reply
}
