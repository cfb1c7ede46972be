package domain

// PlaceholderImage is used when an entry, country or competition has no picture.
const PlaceholderImage = "https://eurovision.tv/images/placeholder.jpg?id=cb2836e4db74575ca788"

const unknownCredit = "Unknown"

// Participant is a contest entry representing a country in a given year.
type Participant struct {
	ID         string            `json:"_id"`
	Country    string            `json:"country"`
	CountryID  string            `json:"countryId"`
	Emoji      string            `json:"emoji"`
	Flag       string            `json:"flag"`
	Artist     string            `json:"artist"`
	Song       string            `json:"song"`
	Image      string            `json:"image"`
	Intro      string            `json:"intro,omitempty"`
	Bio        string            `json:"bio,omitempty"`
	WrittenBy  string            `json:"writtenBy"`
	ComposedBy string            `json:"composedBy"`
	Semifinal  int               `json:"semifinal"`
	Final      bool              `json:"final"`
	Youtube    string            `json:"youtube,omitempty"`
	Year       int               `json:"year,omitempty"`
	Points     int               `json:"points,omitempty"`
	Votes      []ParticipantVote `json:"votes"`
}

// ApplyDefaults fills the presentation fields left empty on creation.
func (p *Participant) ApplyDefaults() {
	if p.Image == "" {
		p.Image = PlaceholderImage
	}
	if p.WrittenBy == "" {
		p.WrittenBy = unknownCredit
	}
	if p.ComposedBy == "" {
		p.ComposedBy = unknownCredit
	}
	if p.Votes == nil {
		p.Votes = []ParticipantVote{}
	}
}

// AttachCountry copies the denormalized country fields onto the entry.
func (p *Participant) AttachCountry(c *Country) {
	p.Country = c.Name
	p.CountryID = c.ID
	p.Emoji = c.Emoji
	p.Flag = c.Flag
}

// ParticipantFilter narrows a participant listing. Nil fields are ignored.
type ParticipantFilter struct {
	Year    *int
	VotedBy string
}
