package handler

import (
	"github.com/songcontest/contest-api/internal/core/domain"
	"github.com/songcontest/contest-api/internal/core/ports"
)

// messageResponse is the single-message envelope, also used for errors.
type messageResponse struct {
	Msg string `json:"msg"`
}

// errorListResponse is returned for validation and conflict errors.
type errorListResponse struct {
	Errors []messageResponse `json:"errors"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Votes ---

type voteRequest struct {
	Vote *int `json:"vote" validate:"required"`
}

type tallyResponse struct {
	Total int                      `json:"total"`
	Votes []domain.ParticipantVote `json:"votes"`
}

type userVoteResponse struct {
	Participant string `json:"participant"`
	Vote        int    `json:"vote"`
	Country     string `json:"country,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Song        string `json:"song,omitempty"`
	Year        int    `json:"year,omitempty"`
}

func toUserVoteResponses(items []ports.UserVoteItem) []userVoteResponse {
	out := make([]userVoteResponse, 0, len(items))
	for _, it := range items {
		out = append(out, userVoteResponse{
			Participant: it.ParticipantID,
			Vote:        it.Score,
			Country:     it.Country,
			Emoji:       it.Emoji,
			Artist:      it.Artist,
			Song:        it.Song,
			Year:        it.Year,
		})
	}
	return out
}

// --- Catalog ---
// Pointer fields distinguish "absent" from an explicit zero value.

type countryRequest struct {
	Name               *string  `json:"name"`
	Emoji              *string  `json:"emoji"`
	Flag               *string  `json:"flag"`
	Image              *string  `json:"image"`
	Participations     *int     `json:"participations" validate:"omitempty,min=0"`
	FirstParticipation *string  `json:"firstParticipation"`
	Victories          []string `json:"victories"`
	Hosts              []string `json:"hosts"`
	Intro              *string  `json:"intro"`
	Bio                *string  `json:"bio"`
	Youtube            *string  `json:"youtube"`
}

func (r countryRequest) toInput() ports.CountryInput {
	return ports.CountryInput{
		Name:               r.Name,
		Emoji:              r.Emoji,
		Flag:               r.Flag,
		Image:              r.Image,
		Participations:     r.Participations,
		FirstParticipation: r.FirstParticipation,
		Victories:          r.Victories,
		Hosts:              r.Hosts,
		Intro:              r.Intro,
		Bio:                r.Bio,
		Youtube:            r.Youtube,
	}
}

type competitionRequest struct {
	Year    *int    `json:"year" validate:"omitempty,min=1956"`
	Host    *string `json:"host"`
	Country *string `json:"country"`
	Logo    *string `json:"logo"`
	Image   *string `json:"image"`
	Winner  *string `json:"winner"`
	Intro   *string `json:"intro"`
	Bio     *string `json:"bio"`
	Youtube *string `json:"youtube"`
}

func (r competitionRequest) toInput() ports.CompetitionInput {
	return ports.CompetitionInput{
		Year:    r.Year,
		Host:    r.Host,
		Country: r.Country,
		Logo:    r.Logo,
		Image:   r.Image,
		Winner:  r.Winner,
		Intro:   r.Intro,
		Bio:     r.Bio,
		Youtube: r.Youtube,
	}
}

type participantRequest struct {
	Country    *string `json:"country"`
	Artist     *string `json:"artist"`
	Song       *string `json:"song"`
	Image      *string `json:"image"`
	Intro      *string `json:"intro"`
	Bio        *string `json:"bio"`
	WrittenBy  *string `json:"writtenBy"`
	ComposedBy *string `json:"composedBy"`
	Semifinal  *int    `json:"semifinal"`
	Final      *bool   `json:"final"`
	Youtube    *string `json:"youtube"`
	Year       *int    `json:"year"`
	Points     *int    `json:"points" validate:"omitempty,min=0"`
}

func (r participantRequest) toInput() ports.ParticipantInput {
	return ports.ParticipantInput{
		Country:    r.Country,
		Artist:     r.Artist,
		Song:       r.Song,
		Image:      r.Image,
		Intro:      r.Intro,
		Bio:        r.Bio,
		WrittenBy:  r.WrittenBy,
		ComposedBy: r.ComposedBy,
		Semifinal:  r.Semifinal,
		Final:      r.Final,
		Youtube:    r.Youtube,
		Year:       r.Year,
		Points:     r.Points,
	}
}
