package content

import "strings"

// SectionKey names an ordered grouping of items.
type SectionKey string

const (
	SectionTrending       SectionKey = "trending"
	SectionLatest         SectionKey = "latest"
	SectionTopNews        SectionKey = "topNews"
	SectionCulturalEvents SectionKey = "culturalEvents"
	SectionMuseums        SectionKey = "museums"
	SectionSaved          SectionKey = "saved"
)

// Sections returns every known section key.
func Sections() []SectionKey {
	return []SectionKey{
		SectionTrending,
		SectionLatest,
		SectionTopNews,
		SectionCulturalEvents,
		SectionMuseums,
		SectionSaved,
	}
}

// Span is a run of text within a paragraph.
type Span struct {
	Text      string
	Highlight bool
}

// Paragraph is an ordered run of spans.
type Paragraph struct {
	Spans []Span
}

// Text joins the paragraph's spans.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, s := range p.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Item is an article, place or event projected into one language.
type Item struct {
	ID           string
	Title        string
	Category     string
	ImageKeyword string
	Image        string
	Publisher    string
	Timestamp    string
	Subtitle     string
	Keywords     []string
	Content      []Paragraph

	// Derived from ID, see Stat.
	Likes    string
	Comments string

	// Explore listings only.
	Rating        string
	Reviews       string
	CategoryBadge string
	Tags          []string
	Location      string
	Duration      string
}

const defaultPreview = "Check out this amazing story on Heritage Pulse."

// Preview returns the text of the first paragraph, used on cards.
func (it Item) Preview() string {
	if len(it.Content) == 0 {
		return defaultPreview
	}
	return it.Content[0].Text()
}

// Profile is the static user profile.
type Profile struct {
	Name   string
	Role   string
	Avatar string
	Saved  int
	Read   int
}

// Category is an explore filter chip.
type Category struct {
	Name string `toml:"name"`
	Icon string `toml:"icon"`
}

// AllCategory matches every item in ByCategory.
const AllCategory = "All"
