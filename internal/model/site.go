package model

// Song is a released single shown on the music page.
type Song struct {
	Title       string `yaml:"title"`
	ReleaseDate string `yaml:"release_date"` // YYYY-MM-DD
	Description string `yaml:"description"`
	CoverArtURL string `yaml:"cover_art_url"`
}

// Show is a tour date.
type Show struct {
	Date        string `yaml:"date"` // YYYY-MM-DD
	Title       string `yaml:"title"`
	Location    string `yaml:"location"`
	Address     string `yaml:"address"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
	TicketLink  string `yaml:"ticket_link"`
}

// Link is an outbound streaming or social link.
type Link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}
