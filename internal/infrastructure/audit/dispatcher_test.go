package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

type recordingRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *recordingRepo) Insert(_ context.Context, e domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *recordingRepo) List(context.Context, ports.Page) ([]domain.AuditEntry, int, error) {
	return nil, 0, nil
}

func (r *recordingRepo) snapshot() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline")
}

func TestDispatcher_EntriesReachRepository(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Emit(domain.AuditEntry{Actor: "ops@example.com", Action: domain.AuditLogin})
	d.Emit(domain.AuditEntry{Actor: "ops@example.com", Action: domain.AuditExport, Target: "leads"})

	waitFor(t, func() bool { return len(repo.snapshot()) == 2 })
}

func TestDispatcher_SameActorKeepsOrder(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, action := range []string{domain.AuditLogin, domain.AuditExport, domain.AuditLogout} {
		d.Emit(domain.AuditEntry{Actor: "ops@example.com", Action: action})
	}

	waitFor(t, func() bool { return len(repo.snapshot()) == 3 })
	got := repo.snapshot()
	want := []string{domain.AuditLogin, domain.AuditExport, domain.AuditLogout}
	for i, action := range want {
		if got[i].Action != action {
			t.Fatalf("entry %d: got %q, want %q", i, got[i].Action, action)
		}
	}
}

func TestDispatcher_EmitNeverBlocks(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())
	// Workers never started: the single buffer fills and overflow drops.

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Emit(domain.AuditEntry{Actor: "ops@example.com", Action: domain.AuditLogin})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Emit blocked with a full buffer")
	}
	if got := len(repo.snapshot()); got != 0 {
		t.Fatalf("no worker running, expected zero writes, got %d", got)
	}
}
