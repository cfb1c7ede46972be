package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/songcontest/contest-api/internal/core/ports"
)

// AccountService handles operations on the caller's own account.
type AccountService struct {
	users ports.UserRepository
	votes ports.VoteService
	tx    ports.Transactor
	log   zerolog.Logger
}

func NewAccountService(users ports.UserRepository, votes ports.VoteService, tx ports.Transactor, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, votes: votes, tx: tx, log: log}
}

// DeleteAccount removes the user's votes from every participant, then the
// user document itself. If the cascade fails part way the account is kept,
// so a retry of the whole request can finish the job.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	removed := 0
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindByID(ctx, userID); err != nil {
			return err
		}

		n, err := s.votes.RemoveUserVotes(ctx, userID)
		if err != nil {
			return err
		}
		removed = n

		return s.users.Delete(ctx, userID)
	})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.Info().Str("user_id", userID).Int("votes_removed", removed).Msg("account deleted")
	return nil
}
