package ports

import (
	"context"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// CountryRepository defines persistence operations for countries.
type CountryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Country, error)
	FindByName(ctx context.Context, name string) (*domain.Country, error)
	// List returns all countries sorted by name.
	List(ctx context.Context) ([]*domain.Country, error)
	Create(ctx context.Context, c *domain.Country) (*domain.Country, error)
	Update(ctx context.Context, c *domain.Country) (*domain.Country, error)
	Delete(ctx context.Context, id string) error
}

// CompetitionRepository defines persistence operations for yearly editions.
type CompetitionRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Competition, error)
	FindByYear(ctx context.Context, year int) (*domain.Competition, error)
	// List returns all competitions, most recent year first.
	List(ctx context.Context) ([]*domain.Competition, error)
	Create(ctx context.Context, c *domain.Competition) (*domain.Competition, error)
	Update(ctx context.Context, c *domain.Competition) (*domain.Competition, error)
	Delete(ctx context.Context, id string) error
}
