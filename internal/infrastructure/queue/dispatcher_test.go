package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/edustack/course-platform/internal/core/domain"
)

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuthEvent
	done   chan struct{}
	expect int
}

func (r *recordingAudit) Record(_ context.Context, event domain.AuthEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if len(r.events) == r.expect {
		close(r.done)
	}
	return nil
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	recorder := &recordingAudit{done: make(chan struct{}), expect: 3}
	d := NewDispatcher(4, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		d.Enqueue(domain.AuthEvent{
			Username:  "alice",
			Action:    domain.AuditActionLogin,
			Outcome:   domain.AuditOutcomeFailure,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
	}

	select {
	case <-recorder.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for audit events")
	}

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	for i := 1; i < len(recorder.events); i++ {
		if recorder.events[i].Timestamp.Before(recorder.events[i-1].Timestamp) {
			t.Fatalf("events for one user recorded out of order: %v", recorder.events)
		}
	}
}

func TestDispatcher_ShardIsStablePerUsername(t *testing.T) {
	d := NewDispatcher(8, &recordingAudit{done: make(chan struct{}), expect: 1}, zerolog.Nop())

	first := d.shardIndex("carol")
	for i := 0; i < 10; i++ {
		if d.shardIndex("carol") != first {
			t.Fatalf("shard index not stable")
		}
	}
}
