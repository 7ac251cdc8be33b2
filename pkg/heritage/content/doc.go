// Package content is the in-memory store behind every Heritage Pulse screen.
//
// Items come from an embedded TOML seed grouped into named sections
// (trending, latest, topNews, culturalEvents, museums). Every read takes a
// language code and returns items projected into that language: per-item
// overrides from the seed replace title, category, subtitle, publisher and
// keywords field by field, and the article body is generated from the
// locale catalog. Unsupported codes render in English.
//
// The bookmark set is the only state users change. It starts from the
// seed's bookmark list, is flipped by ToggleBookmark, and backs the saved
// section. Nothing is persisted.
package content
