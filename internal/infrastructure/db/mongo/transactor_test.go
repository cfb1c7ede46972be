package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/songcontest/contest-api/internal/core/ports"
)

func TestTransactor_DisabledRunsOnceAndFlushesHooks(t *testing.T) {
	tx := NewTransactor(nil, false)
	boom := errors.New("boom")

	calls, hooked := 0, 0
	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		calls++
		ports.AfterCommit(ctx, func(context.Context) { hooked++ })
		if hooked != 0 {
			t.Fatalf("hook ran before the unit of work finished")
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected fn to run once, ran %d times", calls)
	}
	// Without transactions partial writes stay, so their follow-up work runs.
	if hooked != 1 {
		t.Fatalf("expected hook to run once, ran %d times", hooked)
	}
}

func TestTransactor_NestedCallJoinsOuterUnit(t *testing.T) {
	tx := NewTransactor(nil, false)

	var order []string
	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			ports.AfterCommit(ctx, func(context.Context) { order = append(order, "hook") })
			order = append(order, "inner")
			return nil
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "inner" || order[1] != "hook" {
		t.Fatalf("expected hook after inner work, got %v", order)
	}
}

func TestAfterCommit_OutsideUnitRunsImmediately(t *testing.T) {
	ran := false
	ports.AfterCommit(context.Background(), func(context.Context) { ran = true })
	if !ran {
		t.Fatalf("expected immediate run")
	}
}
