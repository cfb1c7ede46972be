package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/songcontest/contest-api/internal/core/domain"
)

// Stored shapes. References between users and participants are ObjectIDs so
// the collections stay compatible with documents written by the site.

type userVoteDoc struct {
	Participant primitive.ObjectID `bson:"participant"`
	Vote        int                `bson:"vote"`
}

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Role     string             `bson:"role"`
	Votes    []userVoteDoc      `bson:"votes"`
	Date     time.Time          `bson:"date"`
}

type participantVoteDoc struct {
	User primitive.ObjectID `bson:"user"`
	Vote int                `bson:"vote"`
}

type participantDoc struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Country    string               `bson:"country"`
	CountryID  primitive.ObjectID   `bson:"countryId,omitempty"`
	Emoji      string               `bson:"emoji"`
	Flag       string               `bson:"flag"`
	Artist     string               `bson:"artist"`
	Song       string               `bson:"song"`
	Image      string               `bson:"image"`
	Intro      string               `bson:"intro,omitempty"`
	Bio        string               `bson:"bio,omitempty"`
	WrittenBy  string               `bson:"writtenBy"`
	ComposedBy string               `bson:"composedBy"`
	Semifinal  int                  `bson:"semifinal"`
	Final      bool                 `bson:"final"`
	Youtube    string               `bson:"youtube,omitempty"`
	Year       int                  `bson:"year,omitempty"`
	Points     int                  `bson:"points,omitempty"`
	Votes      []participantVoteDoc `bson:"votes"`
}

type countryDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	Emoji              string             `bson:"emoji"`
	Flag               string             `bson:"flag"`
	Image              string             `bson:"image"`
	Participations     int                `bson:"participations"`
	FirstParticipation string             `bson:"firstParticipation"`
	Victories          []string           `bson:"victories"`
	Hosts              []string           `bson:"hosts"`
	Intro              string             `bson:"intro,omitempty"`
	Bio                string             `bson:"bio,omitempty"`
	Youtube            string             `bson:"youtube,omitempty"`
}

type competitionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Year      int                `bson:"year"`
	Host      string             `bson:"host"`
	Country   string             `bson:"country"`
	CountryID primitive.ObjectID `bson:"countryId,omitempty"`
	Emoji     string             `bson:"emoji"`
	Logo      string             `bson:"logo"`
	Image     string             `bson:"image"`
	Winner    string             `bson:"winner"`
	Intro     string             `bson:"intro,omitempty"`
	Bio       string             `bson:"bio,omitempty"`
	Youtube   string             `bson:"youtube,omitempty"`
}

type voteEventDoc struct {
	ID            string    `bson:"_id"`
	Type          string    `bson:"type"`
	UserID        string    `bson:"user"`
	ParticipantID string    `bson:"participant"`
	Vote          int       `bson:"vote"`
	Reason        string    `bson:"reason,omitempty"`
	OccurredAt    time.Time `bson:"occurredAt"`
	RecordedAt    time.Time `bson:"recordedAt"`
}

// objectID parses a hex id. Malformed ids can never match a document, so
// they are reported as notFound.
func objectID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}

// optionalObjectID is used for denormalized references that may be empty.
func optionalObjectID(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

func toUserDoc(u *domain.User) (userDoc, error) {
	doc := userDoc{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.PasswordHash,
		Role:     u.Role,
		Votes:    make([]userVoteDoc, 0, len(u.Votes)),
		Date:     u.CreatedAt,
	}
	if u.ID != "" {
		oid, err := objectID(u.ID, domain.ErrUserNotFound)
		if err != nil {
			return userDoc{}, err
		}
		doc.ID = oid
	}
	for _, v := range u.Votes {
		oid, err := objectID(v.ParticipantID, domain.ErrParticipantNotFound)
		if err != nil {
			return userDoc{}, err
		}
		doc.Votes = append(doc.Votes, userVoteDoc{Participant: oid, Vote: v.Score})
	}
	return doc, nil
}

func (d userDoc) toDomain() *domain.User {
	votes := make([]domain.UserVote, 0, len(d.Votes))
	for _, v := range d.Votes {
		votes = append(votes, domain.UserVote{ParticipantID: v.Participant.Hex(), Score: v.Vote})
	}
	return &domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Role:         d.Role,
		Votes:        votes,
		CreatedAt:    d.Date,
	}
}

func toParticipantDoc(p *domain.Participant) (participantDoc, error) {
	doc := participantDoc{
		Country:    p.Country,
		CountryID:  optionalObjectID(p.CountryID),
		Emoji:      p.Emoji,
		Flag:       p.Flag,
		Artist:     p.Artist,
		Song:       p.Song,
		Image:      p.Image,
		Intro:      p.Intro,
		Bio:        p.Bio,
		WrittenBy:  p.WrittenBy,
		ComposedBy: p.ComposedBy,
		Semifinal:  p.Semifinal,
		Final:      p.Final,
		Youtube:    p.Youtube,
		Year:       p.Year,
		Points:     p.Points,
		Votes:      make([]participantVoteDoc, 0, len(p.Votes)),
	}
	if p.ID != "" {
		oid, err := objectID(p.ID, domain.ErrParticipantNotFound)
		if err != nil {
			return participantDoc{}, err
		}
		doc.ID = oid
	}
	for _, v := range p.Votes {
		oid, err := objectID(v.UserID, domain.ErrUserNotFound)
		if err != nil {
			return participantDoc{}, err
		}
		doc.Votes = append(doc.Votes, participantVoteDoc{User: oid, Vote: v.Score})
	}
	return doc, nil
}

func (d participantDoc) toDomain() *domain.Participant {
	votes := make([]domain.ParticipantVote, 0, len(d.Votes))
	for _, v := range d.Votes {
		votes = append(votes, domain.ParticipantVote{UserID: v.User.Hex(), Score: v.Vote})
	}
	return &domain.Participant{
		ID:         d.ID.Hex(),
		Country:    d.Country,
		CountryID:  hexOrEmpty(d.CountryID),
		Emoji:      d.Emoji,
		Flag:       d.Flag,
		Artist:     d.Artist,
		Song:       d.Song,
		Image:      d.Image,
		Intro:      d.Intro,
		Bio:        d.Bio,
		WrittenBy:  d.WrittenBy,
		ComposedBy: d.ComposedBy,
		Semifinal:  d.Semifinal,
		Final:      d.Final,
		Youtube:    d.Youtube,
		Year:       d.Year,
		Points:     d.Points,
		Votes:      votes,
	}
}

func toCountryDoc(c *domain.Country) countryDoc {
	return countryDoc{
		ID:                 optionalObjectID(c.ID),
		Name:               c.Name,
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

func (d countryDoc) toDomain() *domain.Country {
	return &domain.Country{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		Emoji:              d.Emoji,
		Flag:               d.Flag,
		Image:              d.Image,
		Participations:     d.Participations,
		FirstParticipation: d.FirstParticipation,
		Victories:          d.Victories,
		Hosts:              d.Hosts,
		Intro:              d.Intro,
		Bio:                d.Bio,
		Youtube:            d.Youtube,
	}
}

func toCompetitionDoc(c *domain.Competition) competitionDoc {
	return competitionDoc{
		ID:        optionalObjectID(c.ID),
		Year:      c.Year,
		Host:      c.Host,
		Country:   c.Country,
		CountryID: optionalObjectID(c.CountryID),
		Emoji:     c.Emoji,
		Logo:      c.Logo,
		Image:     c.Image,
		Winner:    c.Winner,
		Intro:     c.Intro,
		Bio:       c.Bio,
		Youtube:   c.Youtube,
	}
}

func (d competitionDoc) toDomain() *domain.Competition {
	return &domain.Competition{
		ID:        d.ID.Hex(),
		Year:      d.Year,
		Host:      d.Host,
		Country:   d.Country,
		CountryID: hexOrEmpty(d.CountryID),
		Emoji:     d.Emoji,
		Logo:      d.Logo,
		Image:     d.Image,
		Winner:    d.Winner,
		Intro:     d.Intro,
		Bio:       d.Bio,
		Youtube:   d.Youtube,
	}
}
