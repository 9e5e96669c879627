// Package content loads the band's page content (songs, tour dates, links)
// and orders it for display.
package content

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kellyband/site/internal/model"
	"github.com/kellyband/site/web"
)

// DateLayout is the format of song release dates and show dates.
const DateLayout = "2006-01-02"

// Catalog is the full set of page content.
type Catalog struct {
	MasterStreamLink string       `yaml:"master_stream_link"`
	Songs            []model.Song `yaml:"songs"`
	Shows            []model.Show `yaml:"shows"`
	Links            []model.Link `yaml:"links"`
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(web.Content)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML content and validates every date.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	for _, s := range c.Songs {
		if _, err := time.Parse(DateLayout, s.ReleaseDate); err != nil {
			return nil, fmt.Errorf("song %q: bad release_date %q", s.Title, s.ReleaseDate)
		}
	}
	for _, s := range c.Shows {
		if _, err := time.Parse(DateLayout, s.Date); err != nil {
			return nil, fmt.Errorf("show %q: bad date %q", s.Title, s.Date)
		}
	}
	return &c, nil
}

// SongsNewestFirst returns the songs ordered by release date, most recent first.
func (c *Catalog) SongsNewestFirst() []model.Song {
	songs := append([]model.Song(nil), c.Songs...)
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].ReleaseDate > songs[j].ReleaseDate
	})
	return songs
}

// Tour splits the shows around now. A show stays upcoming for its whole
// calendar day in now's location. Upcoming shows are soonest first, past
// shows most recent first.
func (c *Catalog) Tour(now time.Time) (upcoming, past []model.Show) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	for _, s := range c.Shows {
		date, err := time.ParseInLocation(DateLayout, s.Date, now.Location())
		if err != nil {
			continue
		}
		if date.Before(today) {
			past = append(past, s)
		} else {
			upcoming = append(upcoming, s)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })
	sort.SliceStable(past, func(i, j int) bool { return past[i].Date > past[j].Date })
	return upcoming, past
}
