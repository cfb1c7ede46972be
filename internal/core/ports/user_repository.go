package ports

import (
	"context"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByVotedParticipant returns every user holding a vote for participantID.
	FindByVotedParticipant(ctx context.Context, participantID string) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Save replaces the stored document with user, votes included.
	Save(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
