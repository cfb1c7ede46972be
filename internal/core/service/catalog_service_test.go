package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

var sweden = &domain.Country{ID: "SE", Name: "Sweden", Emoji: "🇸🇪", Flag: "se.svg"}

func TestCountryService_CreateAppliesDefaults(t *testing.T) {
	svc := NewCountryService(newStubCountryRepo(), zerolog.Nop())

	c, err := svc.Create(context.Background(), ports.CountryInput{Name: strPtr("Norway"), Participations: intPtr(62)})
	require.NoError(t, err)
	assert.Equal(t, "Norway", c.Name)
	assert.Equal(t, 62, c.Participations)
	assert.Equal(t, domain.PlaceholderImage, c.Image)
	assert.Equal(t, []string{"None"}, c.Victories)
	assert.Equal(t, []string{"Never hosted"}, c.Hosts)
}

func TestCountryService_CreateRejectsDuplicateAndMissingName(t *testing.T) {
	svc := NewCountryService(newStubCountryRepo(sweden), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CountryInput{Name: strPtr("Sweden")})
	assert.True(t, errors.Is(err, domain.ErrCountryExists))

	_, err = svc.Create(context.Background(), ports.CountryInput{})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCountryService_UpdateOnlyTouchesProvidedFields(t *testing.T) {
	repo := newStubCountryRepo(&domain.Country{ID: "SE", Name: "Sweden", Emoji: "🇸🇪", Participations: 62, Bio: "old"})
	svc := NewCountryService(repo, zerolog.Nop())

	c, err := svc.Update(context.Background(), "SE", ports.CountryInput{Bio: strPtr(""), Participations: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, "Sweden", c.Name)
	assert.Equal(t, "🇸🇪", c.Emoji)
	assert.Equal(t, "", c.Bio, "explicit empty string is a value, not absence")
	assert.Equal(t, 0, c.Participations)

	// Renaming to its own name is not a conflict.
	_, err = svc.Update(context.Background(), "SE", ports.CountryInput{Name: strPtr("Sweden")})
	assert.NoError(t, err)
}

func TestCompetitionService_Create(t *testing.T) {
	svc := NewCompetitionService(newStubCompetitionRepo(), newStubCountryRepo(sweden), zerolog.Nop())
	ctx := context.Background()

	c, err := svc.Create(ctx, ports.CompetitionInput{Year: intPtr(2024), Country: strPtr("Sweden"), Host: strPtr("Malmö")})
	require.NoError(t, err)
	assert.Equal(t, "SE", c.CountryID)
	assert.Equal(t, "🇸🇪", c.Emoji)
	assert.Equal(t, domain.PlaceholderImage, c.Image)

	_, err = svc.Create(ctx, ports.CompetitionInput{Year: intPtr(2024), Country: strPtr("Sweden")})
	assert.True(t, errors.Is(err, domain.ErrCompetitionExists))

	_, err = svc.Create(ctx, ports.CompetitionInput{Year: intPtr(2025), Country: strPtr("Atlantis")})
	assert.True(t, errors.Is(err, domain.ErrCountryNotFound))

	_, err = svc.Create(ctx, ports.CompetitionInput{})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Messages, 2)
}

func TestCompetitionService_ListMostRecentFirst(t *testing.T) {
	svc := NewCompetitionService(newStubCompetitionRepo(), newStubCountryRepo(sweden), zerolog.Nop())
	ctx := context.Background()

	for _, y := range []int{2016, 2024, 2013} {
		_, err := svc.Create(ctx, ports.CompetitionInput{Year: intPtr(y), Country: strPtr("Sweden")})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 2024, list[0].Year)
	assert.Equal(t, 2013, list[2].Year)
}

func TestParticipantService_CreateDenormalizesCountry(t *testing.T) {
	f := newVoteFixture()
	svc := NewParticipantService(f.participants, newStubCountryRepo(sweden), f.svc, f.tx, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.ParticipantInput{
		Country:   strPtr("Sweden"),
		Artist:    strPtr("Måns Zelmerlöw"),
		Song:      strPtr("Heroes"),
		Year:      intPtr(2015),
		Semifinal: intPtr(1),
		Final:     boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "SE", p.CountryID)
	assert.Equal(t, "se.svg", p.Flag)
	assert.Equal(t, "Unknown", p.WrittenBy)
	assert.Equal(t, "Unknown", p.ComposedBy)
	assert.True(t, p.Final)
	assert.NotNil(t, p.Votes)
	assert.Empty(t, p.Votes)

	_, err = svc.Create(context.Background(), ports.ParticipantInput{Country: strPtr("Sweden"), Artist: strPtr("x"), Song: strPtr("y"), Semifinal: intPtr(3)})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestParticipantService_UpdateKeepsVotes(t *testing.T) {
	f := newVoteFixture()
	f.cast(t, "U1", "P1", 9)
	svc := NewParticipantService(f.participants, newStubCountryRepo(sweden), f.svc, f.tx, zerolog.Nop())

	p, err := svc.Update(context.Background(), "P1", ports.ParticipantInput{Points: intPtr(583), Final: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, 583, p.Points)
	assert.Equal(t, "Loreen", p.Artist)
	assert.Equal(t, []domain.ParticipantVote{{UserID: "U1", Score: 9}}, f.participants.items["P1"].Votes)
}

func TestParticipantService_ListByYear(t *testing.T) {
	f := newVoteFixture()
	f.participants.items["P3"] = &domain.Participant{ID: "P3", Country: "Italy", Year: 2021}
	svc := NewParticipantService(f.participants, newStubCountryRepo(), f.svc, f.tx, zerolog.Nop())

	list, err := svc.ListByYear(context.Background(), 2023)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Finland", list[0].Country)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestParticipantService_DeleteCascadesIntoUsers(t *testing.T) {
	f := newVoteFixture()
	f.cast(t, "U1", "P1", 8)
	f.cast(t, "U1", "P2", 6)
	f.cast(t, "U2", "P1", 1)
	svc := NewParticipantService(f.participants, newStubCountryRepo(), f.svc, f.tx, zerolog.Nop())

	require.NoError(t, svc.Delete(context.Background(), "P1"))

	assert.NotContains(t, f.participants.items, "P1")
	assert.Equal(t, []domain.UserVote{{ParticipantID: "P2", Score: 6}}, f.users.users["U1"].Votes)
	assert.Empty(t, f.users.users["U2"].Votes)

	err := svc.Delete(context.Background(), "P1")
	assert.True(t, errors.Is(err, domain.ErrParticipantNotFound))
}

func TestParticipantService_DeleteDropsTallyCachedDuringCascade(t *testing.T) {
	f := newVoteFixture()
	f.cast(t, "U1", "P1", 8)
	svc := NewParticipantService(f.participants, newStubCountryRepo(), f.svc, f.tx, zerolog.Nop())

	// A reader caches P1 after its votes were stripped but before the
	// document itself is removed.
	cachedDuringDelete := false
	f.participants.beforeDelete = func() {
		_, err := f.svc.Tally(context.Background(), "P1")
		require.NoError(t, err)
		_, cachedDuringDelete = f.cache.items["P1"]
	}

	require.NoError(t, svc.Delete(context.Background(), "P1"))

	assert.True(t, cachedDuringDelete)
	assert.NotContains(t, f.cache.items, "P1")
	_, err := f.svc.Tally(context.Background(), "P1")
	assert.True(t, errors.Is(err, domain.ErrParticipantNotFound))
}
