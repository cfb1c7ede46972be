package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

const manifest = `
countries:
  - name: Sweden
    flag: se.svg
    participations: 62
    victories: ["1974", "2023"]
  - name: Finland
competitions:
  - year: 2024
    country: Sweden
    host: Malmö
participants:
  - country: Sweden
    artist: Loreen
    song: Tattoo
    year: 2023
    semifinal: 2
    final: true
  - country: Finland
    artist: Käärijä
    song: Cha Cha Cha
    year: 2023
`

type fakeCountries struct {
	ports.CountryService
	names map[string]bool
}

func (f *fakeCountries) Create(_ context.Context, in ports.CountryInput) (*domain.Country, error) {
	if f.names[*in.Name] {
		return nil, domain.ErrCountryExists
	}
	f.names[*in.Name] = true
	return &domain.Country{Name: *in.Name}, nil
}

type fakeCompetitions struct {
	ports.CompetitionService
	years map[int]bool
	err   error
}

func (f *fakeCompetitions) Create(_ context.Context, in ports.CompetitionInput) (*domain.Competition, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.years[*in.Year] {
		return nil, domain.ErrCompetitionExists
	}
	f.years[*in.Year] = true
	return &domain.Competition{Year: *in.Year}, nil
}

type fakeParticipants struct {
	ports.ParticipantService
	created []ports.ParticipantInput
}

func (f *fakeParticipants) Create(_ context.Context, in ports.ParticipantInput) (*domain.Participant, error) {
	f.created = append(f.created, in)
	return &domain.Participant{Artist: *in.Artist}, nil
}

func (f *fakeParticipants) ListByYear(_ context.Context, year int) ([]*domain.Participant, error) {
	var out []*domain.Participant
	for _, in := range f.created {
		if *in.Year == year {
			out = append(out, &domain.Participant{Artist: *in.Artist, Song: *in.Song, Year: year})
		}
	}
	return out, nil
}

func newLoader() (*Loader, *fakeCompetitions, *fakeParticipants) {
	comps := &fakeCompetitions{years: map[int]bool{}}
	parts := &fakeParticipants{}
	l := NewLoader(&fakeCountries{names: map[string]bool{}}, comps, parts, zerolog.Nop())
	return l, comps, parts
}

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(manifest))
	require.NoError(t, err)

	require.Len(t, m.Countries, 2)
	assert.Equal(t, "Sweden", m.Countries[0].Name)
	require.NotNil(t, m.Countries[0].Participations)
	assert.Equal(t, 62, *m.Countries[0].Participations)
	assert.Nil(t, m.Countries[1].Flag)

	require.Len(t, m.Competitions, 1)
	assert.Equal(t, 2024, m.Competitions[0].Year)

	require.Len(t, m.Participants, 2)
	assert.Equal(t, 2, *m.Participants[0].Semifinal)
	assert.True(t, *m.Participants[0].Final)
	assert.Nil(t, m.Participants[1].Semifinal)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("countries:\n  - nmae: Sweden\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestApply(t *testing.T) {
	m, err := Parse(strings.NewReader(manifest))
	require.NoError(t, err)

	l, _, parts := newLoader()
	res, err := l.Apply(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, Result{Created: 5}, res)
	require.Len(t, parts.created, 2)
	assert.Equal(t, "Tattoo", *parts.created[0].Song)
}

func TestApply_RerunSkipsExisting(t *testing.T) {
	m, err := Parse(strings.NewReader(manifest))
	require.NoError(t, err)

	l, _, parts := newLoader()
	_, err = l.Apply(context.Background(), m)
	require.NoError(t, err)

	res, err := l.Apply(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 5}, res)
	assert.Len(t, parts.created, 2)
}

func TestApply_StopsOnError(t *testing.T) {
	m, err := Parse(strings.NewReader(manifest))
	require.NoError(t, err)

	l, comps, parts := newLoader()
	comps.err = domain.ErrCountryNotFound

	res, err := l.Apply(context.Background(), m)
	assert.True(t, errors.Is(err, domain.ErrCountryNotFound))
	assert.Equal(t, 2, res.Created)
	assert.Empty(t, parts.created)
}
