package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

type ParticipantService struct {
	repo      ports.ParticipantRepository
	countries ports.CountryRepository
	votes     ports.VoteService
	tx        ports.Transactor
	log       zerolog.Logger
}

func NewParticipantService(
	repo ports.ParticipantRepository,
	countries ports.CountryRepository,
	votes ports.VoteService,
	tx ports.Transactor,
	log zerolog.Logger,
) *ParticipantService {
	return &ParticipantService{repo: repo, countries: countries, votes: votes, tx: tx, log: log}
}

// Create stores a new entry with no votes.
func (s *ParticipantService) Create(ctx context.Context, in ports.ParticipantInput) (*domain.Participant, error) {
	var msgs []string
	if in.Country == nil || strings.TrimSpace(*in.Country) == "" {
		msgs = append(msgs, "Country is required")
	}
	if in.Artist == nil || strings.TrimSpace(*in.Artist) == "" {
		msgs = append(msgs, "Artist is required")
	}
	if in.Song == nil || strings.TrimSpace(*in.Song) == "" {
		msgs = append(msgs, "Song is required")
	}
	if in.Semifinal != nil && (*in.Semifinal < 0 || *in.Semifinal > 2) {
		msgs = append(msgs, "Semifinal must be 0, 1 or 2")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	country, err := s.countries.FindByName(ctx, strings.TrimSpace(*in.Country))
	if err != nil {
		return nil, err
	}

	p := &domain.Participant{}
	applyParticipantInput(p, in)
	p.AttachCountry(country)
	p.Votes = nil
	p.ApplyDefaults()

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}

	s.log.Info().Str("participant_id", created.ID).Str("country", created.Country).Int("year", created.Year).Msg("participant created")
	return created, nil
}

func (s *ParticipantService) Get(ctx context.Context, id string) (*domain.Participant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ParticipantService) List(ctx context.Context) ([]*domain.Participant, error) {
	return s.repo.Find(ctx, domain.ParticipantFilter{})
}

func (s *ParticipantService) ListByYear(ctx context.Context, year int) ([]*domain.Participant, error) {
	return s.repo.Find(ctx, domain.ParticipantFilter{Year: &year})
}

// Update changes descriptive fields. Votes are never touched here.
func (s *ParticipantService) Update(ctx context.Context, id string, in ports.ParticipantInput) (*domain.Participant, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Semifinal != nil && (*in.Semifinal < 0 || *in.Semifinal > 2) {
		return nil, domain.NewValidationError("Semifinal must be 0, 1 or 2")
	}

	applyParticipantInput(p, in)

	if in.Country != nil {
		country, err := s.countries.FindByName(ctx, strings.TrimSpace(*in.Country))
		if err != nil {
			return nil, err
		}
		p.AttachCountry(country)
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return updated, nil
}

// Delete removes the entry from every user's vote list before deleting it.
func (s *ParticipantService) Delete(ctx context.Context, id string) error {
	removed := 0
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}

		n, err := s.votes.RemoveParticipantVotes(ctx, id)
		if err != nil {
			return err
		}
		removed = n

		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}

	s.log.Info().Str("participant_id", id).Int("votes_removed", removed).Msg("participant deleted")
	return nil
}

func applyParticipantInput(p *domain.Participant, in ports.ParticipantInput) {
	setString(&p.Artist, in.Artist)
	setString(&p.Song, in.Song)
	setString(&p.Image, in.Image)
	setString(&p.Intro, in.Intro)
	setString(&p.Bio, in.Bio)
	setString(&p.WrittenBy, in.WrittenBy)
	setString(&p.ComposedBy, in.ComposedBy)
	setInt(&p.Semifinal, in.Semifinal)
	setBool(&p.Final, in.Final)
	setString(&p.Youtube, in.Youtube)
	setInt(&p.Year, in.Year)
	setInt(&p.Points, in.Points)
}
