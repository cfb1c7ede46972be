package ports

import (
	"context"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// Transactor runs fn as one unit of work. Implementations that cannot offer
// atomicity run fn directly; repositories must use the ctx passed to fn.
// Callbacks registered with AfterCommit inside fn run once fn's writes are
// durable, and are dropped when the unit of work is rolled back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TallyCache stores computed participant tallies.
//
// Every Invalidate bumps the participant's generation. A tally computed
// after reading generation g is only stored while the generation is still g,
// so a reader that loaded votes before a concurrent write cannot put its
// stale total back after the writer invalidated.
type TallyCache interface {
	Get(ctx context.Context, participantID string) (*domain.Tally, bool, error)
	Generation(ctx context.Context, participantID string) (int64, error)
	// Set reports false when the generation moved and nothing was stored.
	Set(ctx context.Context, tally *domain.Tally, generation int64) (bool, error)
	Invalidate(ctx context.Context, participantIDs ...string) error
}
