package content

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/locale"
	"golang.org/x/text/language"
)

// Option configures a Store.
type Option func(*options)

type options struct {
	seed    io.Reader
	catalog *locale.Catalog
	rand    *rand.Rand
	logger  *slog.Logger
}

// WithSeed loads content from r instead of the embedded seed document.
func WithSeed(r io.Reader) Option {
	return func(o *options) { o.seed = r }
}

// WithCatalog sets the message catalog used for article bodies.
func WithCatalog(c *locale.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithRand sets the random source Refresh shuffles with.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithLogger routes store logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Store is the in-memory authority for content items, section membership,
// bookmarks and language projection. Reads never fail: unknown keys and
// ids degrade to empty results or documented fallbacks.
// It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	records  []record // aggregate order
	index    map[string]int
	sections map[SectionKey][]string

	trendingSeed []string
	latestSeed   []string

	bookmarks []string

	overrides  map[overrideKey]override
	profile    profileRecord
	categories []Category

	catalog *locale.Catalog
	intn    func(int) int
	logger  *slog.Logger
}

// New builds a store from the embedded seed unless WithSeed is given.
func New(opts ...Option) (*Store, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == nil {
		o.seed = bytes.NewReader(defaultSeed)
	}
	if o.catalog == nil {
		c, err := locale.NewCatalog()
		if err != nil {
			return nil, err
		}
		o.catalog = c
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	sd, err := decodeSeed(o.seed)
	if err != nil {
		return nil, err
	}

	s := &Store{
		index:      make(map[string]int),
		sections:   make(map[SectionKey][]string),
		overrides:  make(map[overrideKey]override),
		profile:    sd.Profile,
		categories: sd.Categories,
		catalog:    o.catalog,
		intn:       rand.IntN,
		logger:     o.logger,
	}
	if o.rand != nil {
		s.intn = o.rand.IntN
	}

	if err := s.load(sd); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNew is New for the embedded seed, which is known good.
func MustNew(opts ...Option) *Store {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) load(sd *seed) error {
	for _, sec := range sd.sections() {
		ids := make([]string, 0, len(sec.records))
		for _, rec := range sec.records {
			if rec.ID == "" {
				return fmt.Errorf("%w: %s entry without id", ErrInvalidSeed, sec.key)
			}
			_, exists := s.index[rec.ID]
			switch {
			case exists && !rec.isReference():
				return fmt.Errorf("%w: %q", ErrDuplicateID, rec.ID)
			case !exists && rec.isReference():
				return fmt.Errorf("%w: %s references unknown id %q", ErrInvalidSeed, sec.key, rec.ID)
			case !exists:
				s.index[rec.ID] = len(s.records)
				s.records = append(s.records, rec)
			}
			ids = append(ids, rec.ID)
		}
		s.sections[sec.key] = ids
	}

	s.trendingSeed = slices.Clone(s.sections[SectionTrending])
	s.latestSeed = slices.Clone(s.sections[SectionLatest])
	// saved is derived from bookmarks, never from the static list
	delete(s.sections, SectionSaved)

	if sd.Bookmarks != nil {
		s.bookmarks = slices.Clone(sd.Bookmarks)
	} else {
		for _, rec := range sd.Saved {
			s.bookmarks = append(s.bookmarks, rec.ID)
		}
	}

	for _, ov := range sd.Translations {
		if ov.ID == "" || ov.Lang == "" {
			return fmt.Errorf("%w: translation without id or lang", ErrInvalidSeed)
		}
		if !locale.IsSupported(ov.Lang) {
			return fmt.Errorf("%w: translation %q for unsupported language %q", ErrInvalidSeed, ov.ID, ov.Lang)
		}
		s.overrides[overrideKey{ov.ID, locale.Resolve(ov.Lang)}] = ov
	}
	return nil
}

// Section returns the items of key projected into lang. Unknown keys yield
// an empty slice. SectionSaved is the current bookmark list.
func (s *Store) Section(key SectionKey, lang string) []Item {
	if key == SectionSaved {
		return s.SavedItems(lang)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag := locale.Resolve(lang)
	ids := s.sections[key]
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.project(s.records[s.index[id]], tag))
	}
	return out
}

// SectionIDs returns the ids of key in their current order.
func (s *Store) SectionIDs(key SectionKey) []string {
	if key == SectionSaved {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return slices.Clone(s.bookmarks)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sections[key])
}

// AllItems returns every item in aggregate order: trending, latest, top
// news, cultural events, museums, then the saved seed.
func (s *Store) AllItems(lang string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag := locale.Resolve(lang)
	out := make([]Item, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, s.project(rec, tag))
	}
	return out
}

// Lookup returns the item with id projected into lang, or ErrNotFound.
func (s *Store) Lookup(id, lang string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.project(s.records[i], locale.Resolve(lang)), nil
}

// ItemByID returns the item with id projected into lang. When id is
// unknown it returns the first item of the aggregate list, for callers
// that render whatever comes back without validating the id. Use Lookup
// to tell the two apart.
func (s *Store) ItemByID(id, lang string) Item {
	if it, err := s.Lookup(id, lang); err == nil {
		return it
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.records) == 0 {
		return Item{}
	}
	s.logger.Debug("item lookup fell back to first item", "id", id)
	return s.project(s.records[0], locale.Resolve(lang))
}

// IndexOf returns the position of id in AllItems, or -1.
func (s *Store) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// ToggleBookmark flips id's membership in the bookmark set and returns the
// new state. Ids without an item are accepted; SavedItems skips them.
func (s *Store) ToggleBookmark(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.bookmarks, id); i >= 0 {
		s.bookmarks = slices.Delete(s.bookmarks, i, i+1)
		s.logger.Debug("bookmark removed", "id", id)
		return false
	}
	s.bookmarks = append(s.bookmarks, id)
	s.logger.Debug("bookmark added", "id", id)
	return true
}

// IsBookmarked reports whether id is in the bookmark set.
func (s *Store) IsBookmarked(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.bookmarks, id)
}

// SavedItems returns the bookmarked items in bookmark order, projected
// into lang. Bookmarked ids with no item are dropped.
func (s *Store) SavedItems(lang string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag := locale.Resolve(lang)
	out := make([]Item, 0, len(s.bookmarks))
	for _, id := range s.bookmarks {
		i, ok := s.index[id]
		if !ok {
			continue
		}
		out = append(out, s.project(s.records[i], tag))
	}
	return out
}

// Refresh reshuffles trending and latest from their seed order, as if new
// content had arrived. Membership is unchanged.
func (s *Store) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections[SectionTrending] = s.shuffled(s.trendingSeed)
	s.sections[SectionLatest] = s.shuffled(s.latestSeed)
	s.logger.Debug("sections refreshed",
		"trending", len(s.trendingSeed),
		"latest", len(s.latestSeed),
	)
}

// shuffled returns a uniformly permuted copy of ids (Fisher-Yates).
func (s *Store) shuffled(ids []string) []string {
	out := slices.Clone(ids)
	for i := len(out) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Profile returns the user profile with name and role in lang when the
// seed translates them.
func (s *Store) Profile(lang string) Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := Profile{
		Name:   s.profile.Name,
		Role:   s.profile.Role,
		Avatar: s.profile.Avatar,
		Saved:  s.profile.Saved,
		Read:   s.profile.Read,
	}
	tag := locale.Resolve(lang)
	if tag == locale.Base {
		return p
	}
	if ov, ok := s.profile.Translations[locale.Code(tag)]; ok {
		p.Name = or(ov.Name, p.Name)
		p.Role = or(ov.Role, p.Role)
	}
	return p
}

// Categories returns the explore filter chips.
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// ByCategory returns the items whose base-language category, badge or tags
// match name. AllCategory returns every item.
func (s *Store) ByCategory(name, lang string) []Item {
	if strings.EqualFold(name, AllCategory) {
		return s.AllItems(lang)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag := locale.Resolve(lang)
	var out []Item
	for _, rec := range s.records {
		if matchesCategory(rec, name) {
			out = append(out, s.project(rec, tag))
		}
	}
	return out
}

func matchesCategory(rec record, name string) bool {
	if strings.EqualFold(rec.Category, name) || strings.EqualFold(rec.CategoryBadge, name) {
		return true
	}
	for _, t := range rec.Tags {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// Search returns the items whose title, subtitle or keywords in lang
// contain query, ignoring case. An empty query matches everything.
func (s *Store) Search(query, lang string) []Item {
	tag := locale.Resolve(lang)
	q := locale.Lower(tag, strings.TrimSpace(query))
	items := s.AllItems(lang)
	if q == "" {
		return items
	}
	out := items[:0]
	for _, it := range items {
		if matchesQuery(it, q, tag) {
			out = append(out, it)
		}
	}
	return out
}

func matchesQuery(it Item, q string, tag language.Tag) bool {
	fields := append([]string{it.Title, it.Subtitle, it.Location}, it.Keywords...)
	for _, f := range fields {
		if strings.Contains(locale.Lower(tag, f), q) {
			return true
		}
	}
	return false
}
