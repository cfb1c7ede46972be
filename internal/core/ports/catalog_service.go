package ports

import (
	"context"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// CountryInput carries country fields. Nil pointers mean "not provided",
// which on update leaves the stored value unchanged.
type CountryInput struct {
	Name               *string
	Emoji              *string
	Flag               *string
	Image              *string
	Participations     *int
	FirstParticipation *string
	Victories          []string
	Hosts              []string
	Intro              *string
	Bio                *string
	Youtube            *string
}

// CompetitionInput carries competition fields; Country is the country name.
type CompetitionInput struct {
	Year    *int
	Host    *string
	Country *string
	Logo    *string
	Image   *string
	Winner  *string
	Intro   *string
	Bio     *string
	Youtube *string
}

// ParticipantInput carries entry fields; Country is the country name.
type ParticipantInput struct {
	Country    *string
	Artist     *string
	Song       *string
	Image      *string
	Intro      *string
	Bio        *string
	WrittenBy  *string
	ComposedBy *string
	Semifinal  *int
	Final      *bool
	Youtube    *string
	Year       *int
	Points     *int
}

// CountryService defines use-case operations for countries.
type CountryService interface {
	Create(ctx context.Context, input CountryInput) (*domain.Country, error)
	Get(ctx context.Context, id string) (*domain.Country, error)
	List(ctx context.Context) ([]*domain.Country, error)
	Update(ctx context.Context, id string, input CountryInput) (*domain.Country, error)
	Delete(ctx context.Context, id string) error
}

// CompetitionService defines use-case operations for competitions.
type CompetitionService interface {
	Create(ctx context.Context, input CompetitionInput) (*domain.Competition, error)
	Get(ctx context.Context, id string) (*domain.Competition, error)
	List(ctx context.Context) ([]*domain.Competition, error)
	Update(ctx context.Context, id string, input CompetitionInput) (*domain.Competition, error)
	Delete(ctx context.Context, id string) error
}

// ParticipantService defines use-case operations for contest entries.
type ParticipantService interface {
	Create(ctx context.Context, input ParticipantInput) (*domain.Participant, error)
	Get(ctx context.Context, id string) (*domain.Participant, error)
	List(ctx context.Context) ([]*domain.Participant, error)
	ListByYear(ctx context.Context, year int) ([]*domain.Participant, error)
	Update(ctx context.Context, id string, input ParticipantInput) (*domain.Participant, error)
	// Delete removes the entry after cascading it out of every user's votes.
	Delete(ctx context.Context, id string) error
}
