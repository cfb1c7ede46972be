// Package seed imports catalog data (countries, competitions and
// participants) from a YAML manifest through the regular services, so seeded
// records get the same validation and defaults as ones created over HTTP.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

// Manifest is the top-level document.
type Manifest struct {
	Countries    []Country     `yaml:"countries"`
	Competitions []Competition `yaml:"competitions"`
	Participants []Participant `yaml:"participants"`
}

type Country struct {
	Name               string   `yaml:"name"`
	Emoji              *string  `yaml:"emoji"`
	Flag               *string  `yaml:"flag"`
	Image              *string  `yaml:"image"`
	Participations     *int     `yaml:"participations"`
	FirstParticipation *string  `yaml:"firstParticipation"`
	Victories          []string `yaml:"victories"`
	Hosts              []string `yaml:"hosts"`
	Intro              *string  `yaml:"intro"`
	Bio                *string  `yaml:"bio"`
	Youtube            *string  `yaml:"youtube"`
}

type Competition struct {
	Year    int     `yaml:"year"`
	Country string  `yaml:"country"`
	Host    *string `yaml:"host"`
	Logo    *string `yaml:"logo"`
	Image   *string `yaml:"image"`
	Winner  *string `yaml:"winner"`
	Intro   *string `yaml:"intro"`
	Bio     *string `yaml:"bio"`
	Youtube *string `yaml:"youtube"`
}

type Participant struct {
	Country    string  `yaml:"country"`
	Artist     string  `yaml:"artist"`
	Song       string  `yaml:"song"`
	Year       int     `yaml:"year"`
	Semifinal  *int    `yaml:"semifinal"`
	Final      *bool   `yaml:"final"`
	Image      *string `yaml:"image"`
	Intro      *string `yaml:"intro"`
	Bio        *string `yaml:"bio"`
	WrittenBy  *string `yaml:"writtenBy"`
	ComposedBy *string `yaml:"composedBy"`
	Youtube    *string `yaml:"youtube"`
	Points     *int    `yaml:"points"`
}

// Parse decodes a manifest. Unknown keys are rejected so typos surface.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("seed: manifest is empty")
		}
		return nil, fmt.Errorf("seed: parse manifest: %w", err)
	}
	return &m, nil
}

// Result counts what Apply did.
type Result struct {
	Created int
	Skipped int
}

// Loader applies manifests.
type Loader struct {
	countries    ports.CountryService
	competitions ports.CompetitionService
	participants ports.ParticipantService
	log          zerolog.Logger
}

func NewLoader(
	countries ports.CountryService,
	competitions ports.CompetitionService,
	participants ports.ParticipantService,
	log zerolog.Logger,
) *Loader {
	return &Loader{countries: countries, competitions: competitions, participants: participants, log: log}
}

// Apply creates countries first, then competitions, then participants, since
// the latter two reference countries by name. Records that already exist are
// skipped, which makes re-running a manifest safe.
func (l *Loader) Apply(ctx context.Context, m *Manifest) (Result, error) {
	var res Result

	for _, c := range m.Countries {
		_, err := l.countries.Create(ctx, c.input())
		if err := res.record(err, domain.ErrCountryExists); err != nil {
			return res, fmt.Errorf("seed: country %q: %w", c.Name, err)
		}
	}

	for _, c := range m.Competitions {
		_, err := l.competitions.Create(ctx, c.input())
		if err := res.record(err, domain.ErrCompetitionExists); err != nil {
			return res, fmt.Errorf("seed: competition %d: %w", c.Year, err)
		}
	}

	existing := make(map[int]map[string]bool)
	for _, p := range m.Participants {
		seen, ok := existing[p.Year]
		if !ok {
			list, err := l.participants.ListByYear(ctx, p.Year)
			if err != nil {
				return res, fmt.Errorf("seed: list participants %d: %w", p.Year, err)
			}
			seen = make(map[string]bool, len(list))
			for _, e := range list {
				seen[entryKey(e.Artist, e.Song)] = true
			}
			existing[p.Year] = seen
		}

		key := entryKey(p.Artist, p.Song)
		if seen[key] {
			res.Skipped++
			continue
		}
		if _, err := l.participants.Create(ctx, p.input()); err != nil {
			return res, fmt.Errorf("seed: participant %q (%d): %w", p.Artist, p.Year, err)
		}
		seen[key] = true
		res.Created++
	}

	l.log.Info().
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Msg("seed applied")
	return res, nil
}

func (r *Result) record(err, exists error) error {
	switch {
	case err == nil:
		r.Created++
	case errors.Is(err, exists):
		r.Skipped++
	default:
		return err
	}
	return nil
}

func entryKey(artist, song string) string {
	return strings.ToLower(strings.TrimSpace(artist)) + "\x00" + strings.ToLower(strings.TrimSpace(song))
}

func (c Country) input() ports.CountryInput {
	return ports.CountryInput{
		Name:               &c.Name,
		Emoji:              c.Emoji,
		Flag:               c.Flag,
		Image:              c.Image,
		Participations:     c.Participations,
		FirstParticipation: c.FirstParticipation,
		Victories:          c.Victories,
		Hosts:              c.Hosts,
		Intro:              c.Intro,
		Bio:                c.Bio,
		Youtube:            c.Youtube,
	}
}

func (c Competition) input() ports.CompetitionInput {
	return ports.CompetitionInput{
		Year:    &c.Year,
		Country: &c.Country,
		Host:    c.Host,
		Logo:    c.Logo,
		Image:   c.Image,
		Winner:  c.Winner,
		Intro:   c.Intro,
		Bio:     c.Bio,
		Youtube: c.Youtube,
	}
}

func (p Participant) input() ports.ParticipantInput {
	return ports.ParticipantInput{
		Country:    &p.Country,
		Artist:     &p.Artist,
		Song:       &p.Song,
		Year:       &p.Year,
		Semifinal:  p.Semifinal,
		Final:      p.Final,
		Image:      p.Image,
		Intro:      p.Intro,
		Bio:        p.Bio,
		WrittenBy:  p.WrittenBy,
		ComposedBy: p.ComposedBy,
		Youtube:    p.Youtube,
		Points:     p.Points,
	}
}
