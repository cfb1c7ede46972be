package handler

import (
	"context"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	currentFn  func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return s.currentFn(ctx, id)
}

type stubVoteService struct {
	castFn  func(ctx context.Context, in ports.CastVoteInput) (*domain.Participant, error)
	tallyFn func(ctx context.Context, id string) (*domain.Tally, error)
	votesFn func(ctx context.Context, userID string) ([]ports.UserVoteItem, error)
}

func (s *stubVoteService) CastVote(ctx context.Context, in ports.CastVoteInput) (*domain.Participant, error) {
	return s.castFn(ctx, in)
}

func (s *stubVoteService) Tally(ctx context.Context, id string) (*domain.Tally, error) {
	return s.tallyFn(ctx, id)
}

func (s *stubVoteService) VotesForUser(ctx context.Context, userID string) ([]ports.UserVoteItem, error) {
	return s.votesFn(ctx, userID)
}

func (s *stubVoteService) RemoveUserVotes(context.Context, string) (int, error) { return 0, nil }

func (s *stubVoteService) RemoveParticipantVotes(context.Context, string) (int, error) {
	return 0, nil
}

type stubAccountService struct {
	deleted []string
	err     error
}

func (s *stubAccountService) DeleteAccount(_ context.Context, userID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, userID)
	return nil
}

type stubCountryService struct {
	ports.CountryService
	updateFn func(ctx context.Context, id string, in ports.CountryInput) (*domain.Country, error)
}

func (s *stubCountryService) Update(ctx context.Context, id string, in ports.CountryInput) (*domain.Country, error) {
	return s.updateFn(ctx, id, in)
}

type stubParticipantService struct {
	ports.ParticipantService
	byYearFn func(ctx context.Context, year int) ([]*domain.Participant, error)
}

func (s *stubParticipantService) ListByYear(ctx context.Context, year int) ([]*domain.Participant, error) {
	return s.byYearFn(ctx, year)
}
