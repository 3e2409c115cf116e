package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/acadreview/reviewhub/internal/core/domain"
)

type recordingSender struct {
	sent    []string
	failFor map[string]bool
}

func (s *recordingSender) Send(_ context.Context, to, _, _ string) error {
	if s.failFor[to] {
		return errors.New("smtp refused")
	}
	s.sent = append(s.sent, to)
	return nil
}

type stubThrottle struct {
	recent map[string]bool
	marked []string
}

func (t *stubThrottle) Recently(_ context.Context, email string, _ domain.ReviewStatus) (bool, error) {
	return t.recent[email], nil
}

func (t *stubThrottle) Mark(_ context.Context, email string, _ domain.ReviewStatus) error {
	t.marked = append(t.marked, email)
	return nil
}

func TestReminderService_SendByStatus_SkipsEmptyAddresses(t *testing.T) {
	repo := &stubReviewRepo{
		modules: []domain.ModuleReview{
			{ID: "1", Status: domain.StatusInProgress, Email: "lead@dundee.ac.uk"},
			{ID: "2", Status: domain.StatusInProgress, Email: ""},
			{ID: "3", Status: domain.StatusCompleted, Email: "done@dundee.ac.uk"},
		},
	}
	sender := &recordingSender{}
	svc := NewReminderService(repo, sender, nil, zerolog.Nop())

	res, err := svc.SendByStatus(context.Background(), domain.StatusInProgress, "Reminder", "Please complete your review")
	if err != nil {
		t.Fatalf("SendByStatus returned error: %v", err)
	}

	if res.Attempted != 1 || res.Sent != 1 {
		t.Fatalf("expected exactly one delivery attempt, got %+v", res)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "lead@dundee.ac.uk" {
		t.Fatalf("unexpected recipients: %v", sender.sent)
	}
}

func TestReminderService_SendByStatus_BestEffort(t *testing.T) {
	repo := &stubReviewRepo{
		modules: []domain.ModuleReview{
			{ID: "1", Status: domain.StatusNotStarted, Email: "bad@dundee.ac.uk"},
		},
		programs: []domain.ProgramReview{
			{ID: "2", Status: domain.StatusNotStarted, Email: "good@dundee.ac.uk"},
		},
	}
	sender := &recordingSender{failFor: map[string]bool{"bad@dundee.ac.uk": true}}
	svc := NewReminderService(repo, sender, nil, zerolog.Nop())

	res, err := svc.SendByStatus(context.Background(), domain.StatusNotStarted, "Reminder", "text")
	if err != nil {
		t.Fatalf("a per-address failure must not fail the run: %v", err)
	}
	if res.Attempted != 2 || res.Sent != 1 || res.Failed != 1 {
		t.Fatalf("unexpected tally: %+v", res)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "good@dundee.ac.uk" {
		t.Fatalf("remaining delivery should have proceeded: %v", sender.sent)
	}
}

func TestReminderService_SendByStatus_Throttled(t *testing.T) {
	repo := &stubReviewRepo{
		modules: []domain.ModuleReview{
			{ID: "1", Status: domain.StatusInProgress, Email: "recent@dundee.ac.uk"},
			{ID: "2", Status: domain.StatusInProgress, Email: "fresh@dundee.ac.uk"},
		},
	}
	sender := &recordingSender{}
	throttle := &stubThrottle{recent: map[string]bool{"recent@dundee.ac.uk": true}}
	svc := NewReminderService(repo, sender, throttle, zerolog.Nop())

	res, err := svc.SendByStatus(context.Background(), domain.StatusInProgress, "Reminder", "text")
	if err != nil {
		t.Fatalf("SendByStatus returned error: %v", err)
	}
	if res.Skipped != 1 || res.Sent != 1 {
		t.Fatalf("unexpected tally: %+v", res)
	}
	if len(throttle.marked) != 1 || throttle.marked[0] != "fresh@dundee.ac.uk" {
		t.Fatalf("only delivered addresses get marked: %v", throttle.marked)
	}
}

func TestReminderService_SendDirect_WrapsDeliveryFailure(t *testing.T) {
	sender := &recordingSender{failFor: map[string]bool{"x@dundee.ac.uk": true}}
	svc := NewReminderService(&stubReviewRepo{}, sender, nil, zerolog.Nop())

	err := svc.SendDirect(context.Background(), "x@dundee.ac.uk", "s", "t")
	if !errors.Is(err, domain.ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery, got %v", err)
	}
}
