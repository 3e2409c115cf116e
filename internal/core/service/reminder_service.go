package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

// ReminderThrottle abstracts the recently-reminded store (Redis). A nil
// throttle disables suppression entirely.
type ReminderThrottle interface {
	Recently(ctx context.Context, email string, status domain.ReviewStatus) (bool, error)
	Mark(ctx context.Context, email string, status domain.ReviewStatus) error
}

// ReminderService fans reminder emails out to review contacts, best effort.
type ReminderService struct {
	repo     ports.ReviewRepository
	sender   ports.MailSender
	throttle ReminderThrottle
	logger   zerolog.Logger
}

func NewReminderService(repo ports.ReviewRepository, sender ports.MailSender, throttle ReminderThrottle, logger zerolog.Logger) *ReminderService {
	return &ReminderService{repo: repo, sender: sender, throttle: throttle, logger: logger}
}

func (s *ReminderService) SendDirect(ctx context.Context, email, subject, text string) error {
	if err := s.sender.Send(ctx, email, subject, text); err != nil {
		s.logger.Error().Err(err).Str("to", email).Msg("reminder delivery failed")
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}
	s.logger.Info().Str("to", email).Msg("reminder sent")
	return nil
}

// SendByStatus delivers the reminder to every matching review with a non-empty
// contact address. Each address is attempted independently; failures are
// tallied and logged but never abort the remaining deliveries, and nothing is
// retried.
func (s *ReminderService) SendByStatus(ctx context.Context, status domain.ReviewStatus, subject, text string) (*ports.ReminderResult, error) {
	modules, err := s.repo.ListModulesByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	programs, err := s.repo.ListProgramsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(modules)+len(programs))
	for _, m := range modules {
		if m.Email != "" {
			addresses = append(addresses, m.Email)
		}
	}
	for _, p := range programs {
		if p.Email != "" {
			addresses = append(addresses, p.Email)
		}
	}

	result := &ports.ReminderResult{}
	for _, to := range addresses {
		if s.throttled(ctx, to, status) {
			result.Skipped++
			continue
		}

		result.Attempted++
		if err := s.sender.Send(ctx, to, subject, text); err != nil {
			result.Failed++
			s.logger.Error().Err(err).Str("to", to).Str("status", string(status)).Msg("reminder delivery failed")
			continue
		}
		result.Sent++

		if s.throttle != nil {
			if err := s.throttle.Mark(ctx, to, status); err != nil {
				s.logger.Warn().Err(err).Str("to", to).Msg("throttle mark failed")
			}
		}
	}

	s.logger.Info().
		Str("review_status", string(status)).
		Int("sent", result.Sent).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("reminder run finished")

	return result, nil
}

func (s *ReminderService) throttled(ctx context.Context, email string, status domain.ReviewStatus) bool {
	if s.throttle == nil {
		return false
	}
	recent, err := s.throttle.Recently(ctx, email, status)
	if err != nil {
		s.logger.Warn().Err(err).Str("to", email).Msg("throttle check failed, sending anyway")
		return false
	}
	if recent {
		s.logger.Debug().Str("to", email).Str("status", string(status)).Msg("reminder suppressed, recently sent")
	}
	return recent
}
