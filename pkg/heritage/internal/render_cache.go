package internal

import "slices"

const defaultPageLimit = 16

// PageKey identifies one rendering of an article. A page rendered for a
// different language, width or theme is a different page.
type PageKey struct {
	ArticleID string
	Lang      string
	Theme     string
	Width     int
}

// RenderCache keeps the most recently rendered reader pages so paging back
// and forth does not re-run markdown rendering.
type RenderCache struct {
	pages map[PageKey]string
	lru   []PageKey // least recently used first
	limit int
}

func NewRenderCache() *RenderCache {
	return NewRenderCacheWithSize(defaultPageLimit)
}

func NewRenderCacheWithSize(limit int) *RenderCache {
	return &RenderCache{
		pages: make(map[PageKey]string),
		limit: max(limit, 1),
	}
}

// Get returns the rendered page for key and marks it recently used.
func (c *RenderCache) Get(key PageKey) (string, bool) {
	page, ok := c.pages[key]
	if ok {
		c.touch(key)
	}
	return page, ok
}

// Put stores a rendered page, evicting the least recently used page when
// the cache is full.
func (c *RenderCache) Put(key PageKey, page string) {
	if _, ok := c.pages[key]; ok {
		c.pages[key] = page
		c.touch(key)
		return
	}
	if len(c.lru) >= c.limit {
		delete(c.pages, c.lru[0])
		c.lru = c.lru[1:]
	}
	c.pages[key] = page
	c.lru = append(c.lru, key)
}

// Retain drops every page rendered for another language or theme. Pages of
// other widths are left to age out.
func (c *RenderCache) Retain(lang, theme string) {
	c.lru = slices.DeleteFunc(c.lru, func(k PageKey) bool {
		if k.Lang == lang && k.Theme == theme {
			return false
		}
		delete(c.pages, k)
		return true
	})
}

func (c *RenderCache) Len() int {
	return len(c.lru)
}

func (c *RenderCache) touch(key PageKey) {
	if i := slices.Index(c.lru, key); i >= 0 {
		c.lru = append(slices.Delete(c.lru, i, i+1), key)
	}
}
