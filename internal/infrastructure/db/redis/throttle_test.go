package redis

import (
	"testing"
	"time"
)

func TestClientOptions_Defaults(t *testing.T) {
	opts := clientOptions(Config{Addr: "localhost:6379", DB: 2})

	if opts.Addr != "localhost:6379" || opts.DB != 2 {
		t.Fatalf("config not applied: %+v", opts)
	}
	if opts.DialTimeout != defaultDialTimeout {
		t.Fatalf("expected default dial timeout, got %v", opts.DialTimeout)
	}
	if opts.ReadTimeout != opTimeout || opts.WriteTimeout != opTimeout {
		t.Fatalf("throttle calls must fail fast, got read=%v write=%v", opts.ReadTimeout, opts.WriteTimeout)
	}
}

func TestClientOptions_ExplicitTimeout(t *testing.T) {
	opts := clientOptions(Config{Addr: "localhost:6379", Timeout: time.Second})
	if opts.DialTimeout != time.Second {
		t.Fatalf("expected configured dial timeout, got %v", opts.DialTimeout)
	}
}

func TestThrottleKey(t *testing.T) {
	th := NewReminderThrottle(nil, 0)
	if got := th.key("lead@dundee.ac.uk", "In Progress"); got != "reminder:lead@dundee.ac.uk:In Progress" {
		t.Fatalf("unexpected key: %q", got)
	}
	if th.ttl != 24*time.Hour {
		t.Fatalf("expected default TTL, got %v", th.ttl)
	}
}
