package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func page(id, lang string) PageKey {
	return PageKey{ArticleID: id, Lang: lang, Theme: "light", Width: 76}
}

func TestRenderCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewRenderCacheWithSize(2)
	c.Put(page("t1", "en"), "one")
	c.Put(page("t2", "en"), "two")

	_, ok := c.Get(page("t1", "en")) // t2 is now the oldest
	assert.True(t, ok)

	c.Put(page("t3", "en"), "three")
	_, ok = c.Get(page("t2", "en"))
	assert.False(t, ok)

	got, ok := c.Get(page("t1", "en"))
	assert.True(t, ok)
	assert.Equal(t, "one", got)
	assert.Equal(t, 2, c.Len())
}

func TestRenderCache_KeyIncludesWidth(t *testing.T) {
	c := NewRenderCache()
	narrow := page("t1", "en")
	wide := narrow
	wide.Width = 120

	c.Put(narrow, "narrow")
	_, ok := c.Get(wide)
	assert.False(t, ok)
}

func TestRenderCache_PutReplaces(t *testing.T) {
	c := NewRenderCache()
	c.Put(page("t1", "en"), "v1")
	c.Put(page("t1", "en"), "v2")

	got, _ := c.Get(page("t1", "en"))
	assert.Equal(t, "v2", got)
	assert.Equal(t, 1, c.Len())
}

func TestRenderCache_Retain(t *testing.T) {
	c := NewRenderCache()
	c.Put(page("t1", "en"), "en")
	c.Put(page("t1", "te"), "te")
	dark := page("t2", "te")
	dark.Theme = "dark"
	c.Put(dark, "dark")

	c.Retain("te", "light")

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(page("t1", "te"))
	assert.True(t, ok)
	_, ok = c.Get(page("t1", "en"))
	assert.False(t, ok)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "dark", ThemeByName("dark").Name)
	assert.Equal(t, "light", ThemeByName("sepia").Name)
}

func TestPadding(t *testing.T) {
	p := Symmetric(1, 2)
	top, right, bottom, left := p.Values()
	assert.Equal(t, []int{1, 2, 1, 2}, []int{top, right, bottom, left})
	assert.Equal(t, 4, p.Horizontal())
}
