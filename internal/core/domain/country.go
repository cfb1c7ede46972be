package domain

// Country is a participating broadcaster nation.
type Country struct {
	ID                 string   `json:"_id"`
	Name               string   `json:"name"`
	Emoji              string   `json:"emoji"`
	Flag               string   `json:"flag"`
	Image              string   `json:"image"`
	Participations     int      `json:"participations"`
	FirstParticipation string   `json:"firstParticipation"`
	Victories          []string `json:"victories"`
	Hosts              []string `json:"hosts"`
	Intro              string   `json:"intro,omitempty"`
	Bio                string   `json:"bio,omitempty"`
	Youtube            string   `json:"youtube,omitempty"`
}

// ApplyDefaults fills the fields the site shows when nothing was provided.
func (c *Country) ApplyDefaults() {
	if c.Image == "" {
		c.Image = PlaceholderImage
	}
	if len(c.Victories) == 0 {
		c.Victories = []string{"None"}
	}
	if len(c.Hosts) == 0 {
		c.Hosts = []string{"Never hosted"}
	}
}

// Competition is a single yearly edition of the contest.
type Competition struct {
	ID        string `json:"_id"`
	Year      int    `json:"year"`
	Host      string `json:"host"`
	Country   string `json:"country"`
	CountryID string `json:"countryId"`
	Emoji     string `json:"emoji"`
	Logo      string `json:"logo"`
	Image     string `json:"image"`
	Winner    string `json:"winner"`
	Intro     string `json:"intro,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
}

// ApplyDefaults fills the presentation fields left empty on creation.
func (c *Competition) ApplyDefaults() {
	if c.Image == "" {
		c.Image = PlaceholderImage
	}
}

// AttachCountry copies the denormalized host-country fields.
func (c *Competition) AttachCountry(country *Country) {
	c.Country = country.Name
	c.CountryID = country.ID
	c.Emoji = country.Emoji
}
