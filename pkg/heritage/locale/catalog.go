package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var messageFiles embed.FS

// Catalog looks up translated messages. Missing translations fall back to
// Base, and a message missing from Base renders as its id.
type Catalog struct {
	bundle     *i18n.Bundle
	localizers map[language.Tag]*i18n.Localizer
}

// NewCatalog loads the embedded message files.
func NewCatalog() (*Catalog, error) {
	return NewCatalogFS(messageFiles, "locales")
}

// NewCatalogFS loads every *.toml message file in dir of fsys. File names
// follow the go-i18n convention, e.g. active.te.toml.
func NewCatalogFS(fsys fs.FS, dir string) (*Catalog, error) {
	bundle := i18n.NewBundle(Base)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("locale: read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(fsys, path.Join(dir, e.Name())); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", e.Name(), err)
		}
	}

	c := &Catalog{
		bundle:     bundle,
		localizers: make(map[language.Tag]*i18n.Localizer, len(supported)),
	}
	for _, tag := range supported {
		c.localizers[tag] = i18n.NewLocalizer(bundle, tag.String())
	}
	return c, nil
}

// MustCatalog is NewCatalog for the embedded files, which are known good.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Text returns the message id in tag with no template data.
func (c *Catalog) Text(tag language.Tag, id string) string {
	return c.Localize(tag, id, nil)
}

// Localize renders the message id in tag with data as template input.
func (c *Catalog) Localize(tag language.Tag, id string, data map[string]any) string {
	for _, t := range []language.Tag{tag, Base} {
		loc, ok := c.localizers[t]
		if !ok {
			continue
		}
		msg, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    id,
			TemplateData: data,
		})
		if err == nil {
			return msg
		}
	}
	return id
}

// Has reports whether tag carries its own translation of id.
func (c *Catalog) Has(tag language.Tag, id string) bool {
	loc, ok := c.localizers[tag]
	if !ok {
		return false
	}
	_, got, err := loc.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: id})
	return err == nil && got == tag
}

// LanguageName returns the picker label for target rendered in tag.
func (c *Catalog) LanguageName(tag, target language.Tag) string {
	return c.Text(tag, LabelKey(target))
}
