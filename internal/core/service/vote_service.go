package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
	"github.com/songcontest/contest-api/internal/pkg/metrics"
)

const (
	reasonUserDeleted        = "user_deleted"
	reasonParticipantDeleted = "participant_deleted"
)

// VoteService reconciles the mirrored vote lists on users and participants.
type VoteService struct {
	users        ports.UserRepository
	participants ports.ParticipantRepository
	tx           ports.Transactor
	cache        ports.TallyCache
	events       ports.VoteEventPublisher
	log          zerolog.Logger
}

// NewVoteService wires the vote use cases.
func NewVoteService(
	users ports.UserRepository,
	participants ports.ParticipantRepository,
	tx ports.Transactor,
	cache ports.TallyCache,
	events ports.VoteEventPublisher,
	log zerolog.Logger,
) *VoteService {
	if cache == nil {
		cache = noCache{}
	}
	if events == nil {
		events = noEvents{}
	}
	return &VoteService{
		users:        users,
		participants: participants,
		tx:           tx,
		cache:        cache,
		events:       events,
		log:          log,
	}
}

// CastVote writes the vote to the voter's list, then to the participant's
// list, and returns the updated participant. Both writes share one unit of
// work; without transaction support a failure on the second write leaves
// the voter side already persisted.
func (s *VoteService) CastVote(ctx context.Context, in ports.CastVoteInput) (*domain.Participant, error) {
	if err := domain.ValidateScore(in.Score); err != nil {
		metrics.VoteErrorsTotal.WithLabelValues("invalid_score").Inc()
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.VoteReconcileDuration)
	defer timer.ObserveDuration()

	var (
		participant *domain.Participant
		created     bool
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// 1. Both documents must exist before anything is mutated.
		voter, err := s.users.FindByID(ctx, in.VoterID)
		if err != nil {
			return err
		}
		target, err := s.participants.FindByID(ctx, in.ParticipantID)
		if err != nil {
			return err
		}

		// 2. Voter side: overwrite or prepend, re-sort, persist.
		created = voter.ApplyVote(target.ID, in.Score)
		if err := s.users.Save(ctx, voter); err != nil {
			return fmt.Errorf("save voter: %w", err)
		}

		// 3. Participant side.
		target.ApplyVote(voter.ID, in.Score)
		if err := s.participants.Save(ctx, target); err != nil {
			return fmt.Errorf("save participant: %w", err)
		}

		participant = target
		return nil
	})
	if err != nil {
		reason := "persist_failed"
		if errors.Is(err, domain.ErrNotFound) {
			reason = "not_found"
		}
		metrics.VoteErrorsTotal.WithLabelValues(reason).Inc()
		return nil, fmt.Errorf("cast vote: %w", err)
	}

	s.invalidate(ctx, participant.ID)
	s.publish(ctx, domain.VoteCast, in.VoterID, participant.ID, in.Score, "")

	outcome := "updated"
	if created {
		outcome = "created"
	}
	metrics.VotesCastTotal.WithLabelValues(outcome).Inc()

	s.log.Info().
		Str("user_id", in.VoterID).
		Str("participant_id", participant.ID).
		Int("vote", in.Score).
		Str("outcome", outcome).
		Msg("vote cast")

	return participant, nil
}

// Tally returns the sum of a participant's votes, served from cache when
// possible. The computed tally is cached only if no invalidation happened
// since before the participant was loaded.
func (s *VoteService) Tally(ctx context.Context, participantID string) (*domain.Tally, error) {
	cached, ok, err := s.cache.Get(ctx, participantID)
	switch {
	case err != nil:
		metrics.TallyCacheTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("participant_id", participantID).Msg("tally cache read failed, loading from store")
	case ok:
		metrics.TallyCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		metrics.TallyCacheTotal.WithLabelValues("miss").Inc()
	}

	gen, genErr := s.cache.Generation(ctx, participantID)
	if genErr != nil {
		s.log.Warn().Err(genErr).Str("participant_id", participantID).Msg("tally cache generation read failed, not caching")
	}

	participant, err := s.participants.FindByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("tally: %w", err)
	}

	tally := participant.Tally()
	if genErr == nil {
		stored, err := s.cache.Set(ctx, &tally, gen)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("participant_id", participantID).Msg("tally cache write failed")
		case !stored:
			metrics.TallyCacheTotal.WithLabelValues("stale").Inc()
		}
	}
	return &tally, nil
}

// VotesForUser reads the user's own list, which is authoritative for this direction.
func (s *VoteService) VotesForUser(ctx context.Context, userID string) ([]ports.UserVoteItem, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("votes for user: %w", err)
	}

	items := make([]ports.UserVoteItem, 0, len(user.Votes))
	if len(user.Votes) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(user.Votes))
	for _, v := range user.Votes {
		ids = append(ids, v.ParticipantID)
	}
	found, err := s.participants.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("votes for user: load participants: %w", err)
	}
	byID := make(map[string]*domain.Participant, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	for _, v := range user.Votes {
		item := ports.UserVoteItem{ParticipantID: v.ParticipantID, Score: v.Score}
		if p, ok := byID[v.ParticipantID]; ok {
			item.Country = p.Country
			item.Emoji = p.Emoji
			item.Artist = p.Artist
			item.Song = p.Song
			item.Year = p.Year
		}
		items = append(items, item)
	}
	return items, nil
}

// RemoveUserVotes strips userID from every participant's vote list and
// returns the number of entries removed.
func (s *VoteService) RemoveUserVotes(ctx context.Context, userID string) (int, error) {
	participants, err := s.participants.Find(ctx, domain.ParticipantFilter{VotedBy: userID})
	if err != nil {
		return 0, fmt.Errorf("remove user votes: %w", err)
	}

	removed := 0
	touched := make([]string, 0, len(participants))
	for _, p := range participants {
		score := 0
		for _, v := range p.Votes {
			if v.UserID == userID {
				score = v.Score
				break
			}
		}
		n := p.RemoveVotesBy(userID)
		if n == 0 {
			continue
		}
		if err := s.participants.Save(ctx, p); err != nil {
			return removed, fmt.Errorf("remove user votes: save participant %s: %w", p.ID, err)
		}
		removed += n
		touched = append(touched, p.ID)
		s.publish(ctx, domain.VoteRetracted, userID, p.ID, score, reasonUserDeleted)
	}

	s.invalidate(ctx, touched...)
	metrics.VotesRetractedTotal.WithLabelValues(reasonUserDeleted).Add(float64(removed))
	return removed, nil
}

// RemoveParticipantVotes strips participantID from every user's vote list
// and returns the number of entries removed.
func (s *VoteService) RemoveParticipantVotes(ctx context.Context, participantID string) (int, error) {
	users, err := s.users.FindByVotedParticipant(ctx, participantID)
	if err != nil {
		return 0, fmt.Errorf("remove participant votes: %w", err)
	}

	removed := 0
	for _, u := range users {
		score, _ := u.VoteFor(participantID)
		n := u.RemoveVotesFor(participantID)
		if n == 0 {
			continue
		}
		if err := s.users.Save(ctx, u); err != nil {
			return removed, fmt.Errorf("remove participant votes: save user %s: %w", u.ID, err)
		}
		removed += n
		s.publish(ctx, domain.VoteRetracted, u.ID, participantID, score, reasonParticipantDeleted)
	}

	s.invalidate(ctx, participantID)
	metrics.VotesRetractedTotal.WithLabelValues(reasonParticipantDeleted).Add(float64(removed))
	return removed, nil
}

// invalidate and publish run once the surrounding unit of work commits, so
// cascades executed inside a caller's transaction neither clear the cache
// before their writes are visible nor emit events for rolled back work.
func (s *VoteService) invalidate(ctx context.Context, participantIDs ...string) {
	if len(participantIDs) == 0 {
		return
	}
	ports.AfterCommit(ctx, func(ctx context.Context) {
		if err := s.cache.Invalidate(ctx, participantIDs...); err != nil {
			s.log.Warn().Err(err).Strs("participant_ids", participantIDs).Msg("tally cache invalidation failed")
		}
	})
}

func (s *VoteService) publish(ctx context.Context, typ domain.VoteEventType, userID, participantID string, score int, reason string) {
	event := domain.VoteEvent{
		ID:            uuid.NewString(),
		Type:          typ,
		UserID:        userID,
		ParticipantID: participantID,
		Score:         score,
		Reason:        reason,
		OccurredAt:    time.Now().UTC(),
	}
	ports.AfterCommit(ctx, func(context.Context) {
		s.events.Publish(event)
	})
}

// noCache is used when no tally cache is configured: every read misses.
type noCache struct{}

func (noCache) Get(context.Context, string) (*domain.Tally, bool, error) { return nil, false, nil }
func (noCache) Generation(context.Context, string) (int64, error)        { return 0, nil }
func (noCache) Set(context.Context, *domain.Tally, int64) (bool, error)  { return false, nil }
func (noCache) Invalidate(context.Context, ...string) error              { return nil }

type noEvents struct{}

func (noEvents) Publish(domain.VoteEvent) {}
