package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

type CompetitionService struct {
	repo      ports.CompetitionRepository
	countries ports.CountryRepository
	log       zerolog.Logger
}

func NewCompetitionService(repo ports.CompetitionRepository, countries ports.CountryRepository, log zerolog.Logger) *CompetitionService {
	return &CompetitionService{repo: repo, countries: countries, log: log}
}

// Create stores a new edition. The host country must exist and the year must be unused.
func (s *CompetitionService) Create(ctx context.Context, in ports.CompetitionInput) (*domain.Competition, error) {
	var msgs []string
	if in.Year == nil || *in.Year <= 0 {
		msgs = append(msgs, "Year is required")
	}
	if in.Country == nil || strings.TrimSpace(*in.Country) == "" {
		msgs = append(msgs, "Country is required")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	if err := s.ensureYearFree(ctx, *in.Year, ""); err != nil {
		return nil, err
	}
	country, err := s.countries.FindByName(ctx, strings.TrimSpace(*in.Country))
	if err != nil {
		return nil, err
	}

	c := &domain.Competition{}
	applyCompetitionInput(c, in)
	c.AttachCountry(country)
	c.ApplyDefaults()

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create competition: %w", err)
	}

	s.log.Info().Str("competition_id", created.ID).Int("year", created.Year).Msg("competition created")
	return created, nil
}

func (s *CompetitionService) Get(ctx context.Context, id string) (*domain.Competition, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CompetitionService) List(ctx context.Context) ([]*domain.Competition, error) {
	return s.repo.List(ctx)
}

func (s *CompetitionService) Update(ctx context.Context, id string, in ports.CompetitionInput) (*domain.Competition, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Year != nil {
		if *in.Year <= 0 {
			return nil, domain.NewValidationError("Year is required")
		}
		if err := s.ensureYearFree(ctx, *in.Year, c.ID); err != nil {
			return nil, err
		}
	}

	applyCompetitionInput(c, in)

	if in.Country != nil {
		country, err := s.countries.FindByName(ctx, strings.TrimSpace(*in.Country))
		if err != nil {
			return nil, err
		}
		c.AttachCountry(country)
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update competition: %w", err)
	}
	return updated, nil
}

func (s *CompetitionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("competition_id", id).Msg("competition deleted")
	return nil
}

func (s *CompetitionService) ensureYearFree(ctx context.Context, year int, selfID string) error {
	existing, err := s.repo.FindByYear(ctx, year)
	switch {
	case err == nil && existing.ID != selfID:
		return domain.ErrCompetitionExists
	case err != nil && !errors.Is(err, domain.ErrCompetitionNotFound):
		return err
	}
	return nil
}

func applyCompetitionInput(c *domain.Competition, in ports.CompetitionInput) {
	setInt(&c.Year, in.Year)
	setString(&c.Host, in.Host)
	setString(&c.Logo, in.Logo)
	setString(&c.Image, in.Image)
	setString(&c.Winner, in.Winner)
	setString(&c.Intro, in.Intro)
	setString(&c.Bio, in.Bio)
	setString(&c.Youtube, in.Youtube)
}
