package redis

import (
	"context"
	"testing"
)

func TestInFlightGuard_AcquireRelease(t *testing.T) {
	guard := NewInFlightGuard(newTestRedis(t))
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "leads:abc")
	if err != nil || !ok {
		t.Fatalf("first acquire should win: ok=%v err=%v", ok, err)
	}

	ok, err = guard.Acquire(ctx, "leads:abc")
	if err != nil {
		t.Fatalf("second acquire errored: %v", err)
	}
	if ok {
		t.Fatalf("second acquire of a held key must lose")
	}

	// A different key is an independent slot.
	ok, _ = guard.Acquire(ctx, "leads:def")
	if !ok {
		t.Fatalf("unrelated key should be acquirable")
	}

	if err := guard.Release(ctx, "leads:abc"); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	ok, _ = guard.Acquire(ctx, "leads:abc")
	if !ok {
		t.Fatalf("released key should be acquirable again")
	}
}
