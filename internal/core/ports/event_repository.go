package ports

import (
	"context"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// VoteEventRepository persists the vote audit trail.
type VoteEventRepository interface {
	// InsertEvent appends an event to the vote_events audit collection.
	InsertEvent(ctx context.Context, event *domain.VoteEvent) error
}

// VoteEventPublisher hands audit events to asynchronous storage.
// Publish must not block the request path beyond queue capacity.
type VoteEventPublisher interface {
	Publish(event domain.VoteEvent)
}
