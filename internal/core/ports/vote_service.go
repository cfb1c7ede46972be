package ports

import (
	"context"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// CastVoteInput carries a vote submission. VoterID comes from the verified
// token, never from the request body.
type CastVoteInput struct {
	VoterID       string
	ParticipantID string
	Score         int
}

// UserVoteItem is one entry of a user's own vote list, enriched with the
// entry it points at when that entry still exists.
type UserVoteItem struct {
	ParticipantID string
	Score         int
	Country       string
	Emoji         string
	Artist        string
	Song          string
	Year          int
}

// VoteService reconciles the two mirrored vote lists and answers reads over them.
type VoteService interface {
	CastVote(ctx context.Context, input CastVoteInput) (*domain.Participant, error)
	Tally(ctx context.Context, participantID string) (*domain.Tally, error)
	VotesForUser(ctx context.Context, userID string) ([]UserVoteItem, error)
	// RemoveUserVotes strips userID's votes from every participant.
	RemoveUserVotes(ctx context.Context, userID string) (int, error)
	// RemoveParticipantVotes strips participantID from every user's votes.
	RemoveParticipantVotes(ctx context.Context, participantID string) (int, error)
}

// AccountService manages the caller's own account.
type AccountService interface {
	DeleteAccount(ctx context.Context, userID string) error
}
