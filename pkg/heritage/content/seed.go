package content

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

//go:embed seed.toml
var defaultSeed []byte

type record struct {
	ID            string   `toml:"id"`
	Title         string   `toml:"title"`
	Category      string   `toml:"category"`
	ImageKeyword  string   `toml:"imageKeyword"`
	Image         string   `toml:"image"`
	Publisher     string   `toml:"publisher"`
	TimeAgo       string   `toml:"timeAgo"`
	Subtitle      string   `toml:"subtitle"`
	Keywords      []string `toml:"keywords"`
	Rating        string   `toml:"rating"`
	Reviews       string   `toml:"reviews"`
	CategoryBadge string   `toml:"categoryBadge"`
	Tags          []string `toml:"tags"`
	Location      string   `toml:"location"`
	Duration      string   `toml:"duration"`
}

// isReference reports whether r only names an item defined elsewhere.
func (r record) isReference() bool {
	return r.Title == ""
}

type override struct {
	ID        string   `toml:"id"`
	Lang      string   `toml:"lang"`
	Title     string   `toml:"title"`
	Category  string   `toml:"category"`
	Subtitle  string   `toml:"subtitle"`
	Publisher string   `toml:"publisher"`
	Keywords  []string `toml:"keywords"`
}

type profileOverride struct {
	Name string `toml:"name"`
	Role string `toml:"role"`
}

type profileRecord struct {
	Name         string                     `toml:"name"`
	Role         string                     `toml:"role"`
	Avatar       string                     `toml:"avatar"`
	Saved        int                        `toml:"saved"`
	Read         int                        `toml:"read"`
	Translations map[string]profileOverride `toml:"translations"`
}

type seed struct {
	Bookmarks      []string      `toml:"bookmarks"`
	Profile        profileRecord `toml:"profile"`
	Categories     []Category    `toml:"categories"`
	Trending       []record      `toml:"trending"`
	Latest         []record      `toml:"latest"`
	TopNews        []record      `toml:"topNews"`
	CulturalEvents []record      `toml:"culturalEvents"`
	Museums        []record      `toml:"museums"`
	Saved          []record      `toml:"saved"`
	Translations   []override    `toml:"translations"`
}

// sections returns the seed's section lists in aggregate order.
func (s *seed) sections() []struct {
	key     SectionKey
	records []record
} {
	return []struct {
		key     SectionKey
		records []record
	}{
		{SectionTrending, s.Trending},
		{SectionLatest, s.Latest},
		{SectionTopNews, s.TopNews},
		{SectionCulturalEvents, s.CulturalEvents},
		{SectionMuseums, s.Museums},
		{SectionSaved, s.Saved},
	}
}

func decodeSeed(r io.Reader) (*seed, error) {
	var s seed
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("content: decode seed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidSeed, undecoded[0])
	}
	return &s, nil
}
