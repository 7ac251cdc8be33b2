package content

import (
	"fmt"
	"net/url"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/locale"
	"golang.org/x/text/language"
)

const (
	defaultImageKeyword = "culture"
	defaultTimestamp    = "Just now"
	defaultPublisher    = "Heritage Pulse"
	defaultSubtitle     = "Discover India"
	defaultCategory     = "General"
	bodyCategory        = "Culture"

	imageWidth  = 400
	imageHeight = 300
)

// ImageURL builds the placeholder image address for an item.
func ImageURL(keyword, id string, width, height int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", url.PathEscape(id+keyword), width, height)
}

// Keywords generates hashtags for a category when an item carries none.
func Keywords(category string) []string {
	base := []string{"#India", "#" + category, "#Culture"}
	switch category {
	case "History":
		return append(base, "#Ancient", "#Archaeology")
	case "Dance":
		return append(base, "#Classical", "#ArtForm")
	case "Festivals":
		return append(base, "#Celebration", "#Tradition")
	}
	return append(base, "#Heritage", "#Travel")
}

type overrideKey struct {
	id   string
	lang language.Tag
}

// project renders rec in tag. Override fields win one by one; anything the
// override leaves empty keeps the base-language text.
func (s *Store) project(rec record, tag language.Tag) Item {
	it := Item{
		ID:            rec.ID,
		Title:         rec.Title,
		Category:      or(rec.Category, defaultCategory),
		ImageKeyword:  rec.ImageKeyword,
		Image:         rec.Image,
		Publisher:     or(rec.Publisher, defaultPublisher),
		Timestamp:     or(rec.TimeAgo, defaultTimestamp),
		Subtitle:      or(rec.Subtitle, or(rec.CategoryBadge, defaultSubtitle)),
		Keywords:      rec.Keywords,
		Likes:         Stat(rec.ID, StatLikes),
		Comments:      Stat(rec.ID, StatComments),
		Rating:        rec.Rating,
		Reviews:       rec.Reviews,
		CategoryBadge: rec.CategoryBadge,
		Tags:          clone(rec.Tags),
		Location:      rec.Location,
		Duration:      rec.Duration,
	}
	if it.Image == "" {
		it.Image = ImageURL(or(rec.ImageKeyword, defaultImageKeyword), rec.ID, imageWidth, imageHeight)
	}
	if len(it.Keywords) == 0 {
		it.Keywords = Keywords(or(rec.Category, bodyCategory))
	}
	it.Keywords = clone(it.Keywords)

	category := or(rec.Category, bodyCategory)
	if ov, ok := s.overrides[overrideKey{rec.ID, tag}]; ok {
		it.Title = or(ov.Title, it.Title)
		it.Subtitle = or(ov.Subtitle, it.Subtitle)
		it.Publisher = or(ov.Publisher, it.Publisher)
		if ov.Category != "" {
			it.Category = ov.Category
			category = ov.Category
		}
		if len(ov.Keywords) > 0 {
			it.Keywords = clone(ov.Keywords)
		}
	}

	it.Content = s.body(it.Title, category, tag)
	return it
}

// body fills the three paragraph article template for title in tag.
func (s *Store) body(title, category string, tag language.Tag) []Paragraph {
	c := s.catalog
	return []Paragraph{
		{Spans: []Span{
			{Text: title, Highlight: true},
			{Text: c.Localize(tag, "body_intro", map[string]any{"Category": locale.Lower(tag, category)})},
		}},
		{Spans: []Span{
			{Text: c.Text(tag, "body_history")},
		}},
		{Spans: []Span{
			{Text: c.Text(tag, "body_today")},
			{Text: c.Text(tag, "body_legacy"), Highlight: true},
			{Text: c.Text(tag, "body_end")},
		}},
	}
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func clone(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
