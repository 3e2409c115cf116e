package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// ConsoleSender logs messages instead of delivering them. Used in development
// when no SendGrid key is configured.
type ConsoleSender struct {
	logger zerolog.Logger
}

func NewConsoleSender(logger zerolog.Logger) *ConsoleSender {
	return &ConsoleSender{logger: logger}
}

func (s *ConsoleSender) Send(_ context.Context, to, subject, text string) error {
	s.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("text", text).
		Msg("console mail (not delivered)")
	return nil
}
