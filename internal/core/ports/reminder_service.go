package ports

import (
	"context"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

// ReminderResult tallies a status-filtered reminder run. Attempted counts
// entities with a non-empty contact address; Skipped counts addresses
// suppressed by the throttle.
type ReminderResult struct {
	Attempted int `json:"attempted"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

type ReminderService interface {
	// SendDirect delivers a single reminder to one address.
	SendDirect(ctx context.Context, email, subject, text string) error

	// SendByStatus delivers a reminder to every review of either variant whose
	// status matches and whose contact email is non-empty. Per-address failures
	// are recorded but do not abort remaining deliveries.
	SendByStatus(ctx context.Context, status domain.ReviewStatus, subject, text string) (*ReminderResult, error)
}

// MailSender abstracts the outbound mail transport.
type MailSender interface {
	Send(ctx context.Context, to, subject, text string) error
}
