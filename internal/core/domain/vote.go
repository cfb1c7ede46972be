package domain

import (
	"fmt"
	"sort"
)

// Score bounds for a single vote.
const (
	MinScore = 1
	MaxScore = 12
)

// UserVote is the voter-side mirror of a vote.
type UserVote struct {
	ParticipantID string `json:"participant"`
	Score         int    `json:"vote"`
}

// ParticipantVote is the participant-side mirror of a vote.
type ParticipantVote struct {
	UserID string `json:"user"`
	Score  int    `json:"vote"`
}

// Tally is the naive aggregate of the votes a participant received.
type Tally struct {
	ParticipantID string            `json:"participant"`
	Total         int               `json:"total"`
	Votes         []ParticipantVote `json:"votes"`
}

// ValidateScore rejects scores outside [MinScore, MaxScore].
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return NewValidationError(fmt.Sprintf("vote must be an integer between %d and %d", MinScore, MaxScore))
	}
	return nil
}

// ApplyVote records score for participantID on the user's side.
// An existing entry is overwritten in place, otherwise a new one is
// prepended. The list is then stable-sorted by descending score.
// It reports whether a new entry was created.
func (u *User) ApplyVote(participantID string, score int) bool {
	created := true
	out := u.Votes[:0]
	for _, v := range u.Votes {
		if v.ParticipantID != participantID {
			out = append(out, v)
			continue
		}
		if !created {
			continue // duplicate pair from older data
		}
		v.Score = score
		out = append(out, v)
		created = false
	}
	if created {
		out = append([]UserVote{{ParticipantID: participantID, Score: score}}, out...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	u.Votes = out
	return created
}

// RemoveVotesFor drops every entry for participantID and returns how many were removed.
func (u *User) RemoveVotesFor(participantID string) int {
	out := u.Votes[:0]
	for _, v := range u.Votes {
		if v.ParticipantID != participantID {
			out = append(out, v)
		}
	}
	removed := len(u.Votes) - len(out)
	u.Votes = out
	return removed
}

// VoteFor returns the user's score for participantID, if any.
func (u *User) VoteFor(participantID string) (int, bool) {
	for _, v := range u.Votes {
		if v.ParticipantID == participantID {
			return v.Score, true
		}
	}
	return 0, false
}

// ApplyVote records score from userID on the participant's side, overwriting
// in place or prepending. It reports whether a new entry was created.
func (p *Participant) ApplyVote(userID string, score int) bool {
	created := true
	out := p.Votes[:0]
	for _, v := range p.Votes {
		if v.UserID != userID {
			out = append(out, v)
			continue
		}
		if !created {
			continue
		}
		v.Score = score
		out = append(out, v)
		created = false
	}
	if created {
		out = append([]ParticipantVote{{UserID: userID, Score: score}}, out...)
	}
	p.Votes = out
	return created
}

// RemoveVotesBy drops every entry cast by userID and returns how many were removed.
func (p *Participant) RemoveVotesBy(userID string) int {
	out := p.Votes[:0]
	for _, v := range p.Votes {
		if v.UserID != userID {
			out = append(out, v)
		}
	}
	removed := len(p.Votes) - len(out)
	p.Votes = out
	return removed
}

// Tally sums the scores of every vote the participant holds.
func (p *Participant) Tally() Tally {
	votes := make([]ParticipantVote, len(p.Votes))
	copy(votes, p.Votes)

	total := 0
	for _, v := range votes {
		total += v.Score
	}
	return Tally{ParticipantID: p.ID, Total: total, Votes: votes}
}
