package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/songcontest/contest-api/internal/core/domain"
)

const collectionVoteEvents = "vote_events"

// VoteEventRepository writes the vote audit trail.
type VoteEventRepository struct {
	col *mongo.Collection
}

func NewVoteEventRepository(db *mongo.Database) *VoteEventRepository {
	return &VoteEventRepository{col: db.Collection(collectionVoteEvents)}
}

// InsertEvent persists one audit record. Re-inserting an event with the same
// id is a no-op.
func (r *VoteEventRepository) InsertEvent(ctx context.Context, event *domain.VoteEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := voteEventDoc{
		ID:            event.ID,
		Type:          string(event.Type),
		UserID:        event.UserID,
		ParticipantID: event.ParticipantID,
		Vote:          event.Score,
		Reason:        event.Reason,
		OccurredAt:    event.OccurredAt.UTC(),
		RecordedAt:    time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert vote event: %w", err)
	}
	return nil
}
