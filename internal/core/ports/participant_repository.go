package ports

import (
	"context"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// ParticipantRepository defines persistence operations for contest entries.
type ParticipantRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Participant, error)
	// FindByIDs returns the entries that still exist; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Participant, error)
	// Find lists entries matching filter, sorted by country name.
	Find(ctx context.Context, filter domain.ParticipantFilter) ([]*domain.Participant, error)
	Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	// Update overwrites the descriptive fields of an entry, leaving votes untouched.
	Update(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	// Save replaces the stored document with p, votes included.
	Save(ctx context.Context, p *domain.Participant) error
	Delete(ctx context.Context, id string) error
}
