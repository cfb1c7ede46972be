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

type CountryService struct {
	repo ports.CountryRepository
	log  zerolog.Logger
}

func NewCountryService(repo ports.CountryRepository, log zerolog.Logger) *CountryService {
	return &CountryService{repo: repo, log: log}
}

// Create stores a new country. Names are unique.
func (s *CountryService) Create(ctx context.Context, in ports.CountryInput) (*domain.Country, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, domain.NewValidationError("Name is required")
	}

	if err := s.ensureNameFree(ctx, strings.TrimSpace(*in.Name), ""); err != nil {
		return nil, err
	}

	c := &domain.Country{}
	applyCountryInput(c, in)
	c.ApplyDefaults()

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create country: %w", err)
	}

	s.log.Info().Str("country_id", created.ID).Str("name", created.Name).Msg("country created")
	return created, nil
}

func (s *CountryService) Get(ctx context.Context, id string) (*domain.Country, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CountryService) List(ctx context.Context) ([]*domain.Country, error) {
	return s.repo.List(ctx)
}

// Update applies the provided fields only.
func (s *CountryService) Update(ctx context.Context, id string, in ports.CountryInput) (*domain.Country, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("Name is required")
		}
		if err := s.ensureNameFree(ctx, name, c.ID); err != nil {
			return nil, err
		}
	}

	applyCountryInput(c, in)

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update country: %w", err)
	}
	return updated, nil
}

func (s *CountryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("country_id", id).Msg("country deleted")
	return nil
}

func (s *CountryService) ensureNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil && existing.ID != selfID:
		return domain.ErrCountryExists
	case err != nil && !errors.Is(err, domain.ErrCountryNotFound):
		return err
	}
	return nil
}

func applyCountryInput(c *domain.Country, in ports.CountryInput) {
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	setString(&c.Emoji, in.Emoji)
	setString(&c.Flag, in.Flag)
	setString(&c.Image, in.Image)
	setInt(&c.Participations, in.Participations)
	setString(&c.FirstParticipation, in.FirstParticipation)
	if in.Victories != nil {
		c.Victories = in.Victories
	}
	if in.Hosts != nil {
		c.Hosts = in.Hosts
	}
	setString(&c.Intro, in.Intro)
	setString(&c.Bio, in.Bio)
	setString(&c.Youtube, in.Youtube)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
