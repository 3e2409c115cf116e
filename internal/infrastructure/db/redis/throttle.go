package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

// ReminderThrottle suppresses repeat reminder emails backed by Redis.
// Key format: reminder:<address>:<status>
type ReminderThrottle struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReminderThrottle wraps the given Redis client. After a reminder is
// marked, the same (address, status) pair stays suppressed for ttl.
func NewReminderThrottle(client *redis.Client, ttl time.Duration) *ReminderThrottle {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ReminderThrottle{client: client, ttl: ttl}
}

// Recently reports whether this address was already reminded for this status.
func (t *ReminderThrottle) Recently(ctx context.Context, email string, status domain.ReviewStatus) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(email, status)).Result()
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n > 0, nil
}

// Mark records a delivered reminder (expires after the configured TTL).
func (t *ReminderThrottle) Mark(ctx context.Context, email string, status domain.ReviewStatus) error {
	return t.client.Set(ctx, t.key(email, status), "1", t.ttl).Err()
}

func (t *ReminderThrottle) key(email string, status domain.ReviewStatus) string {
	return fmt.Sprintf("reminder:%s:%s", email, status)
}
