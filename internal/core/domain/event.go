package domain

import "time"

// VoteEventType names what happened to a vote.
type VoteEventType string

const (
	VoteCast      VoteEventType = "vote.cast"
	VoteRetracted VoteEventType = "vote.retracted"
)

// VoteEvent is an audit record of a vote mutation.
type VoteEvent struct {
	ID            string
	Type          VoteEventType
	UserID        string
	ParticipantID string
	Score         int
	Reason        string // why a vote was retracted, empty for casts
	OccurredAt    time.Time
}
