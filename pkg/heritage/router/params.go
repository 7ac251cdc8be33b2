package router

import "fmt"

// Params is the one-shot payload carried by a navigation. It is a closed
// union: only the variants declared in this package implement it.
// A nil Params is the empty bag.
type Params interface {
	accepts(Screen) bool
}

// DetailParams opens the article reader on a specific article.
type DetailParams struct {
	ArticleID string
}

func (p DetailParams) accepts(s Screen) bool {
	return s == ScreenDetail && p.ArticleID != ""
}

// SectionParams describes an explore section listing.
// ItemIDs, when set, pins the listing to those ids instead of the
// section's own membership.
type SectionParams struct {
	SectionKey string
	Title      string
	Subtitle   string
	ItemIDs    []string
}

func (p SectionParams) accepts(s Screen) bool {
	return s == ScreenExploreSectionList || s == ScreenExploreSectionGrid
}

// requiresParams lists the screens that cannot be shown without a payload.
func requiresParams(s Screen) bool {
	return s == ScreenDetail
}

func checkParams(screen Screen, params Params) error {
	if params == nil {
		if requiresParams(screen) {
			return fmt.Errorf("%w: %s requires parameters", ErrParams, screen)
		}
		return nil
	}
	// only the value variants are members; pointers and typed nils are not
	switch params.(type) {
	case DetailParams, SectionParams:
	default:
		return fmt.Errorf("%w: %T is not a navigation payload", ErrParams, params)
	}
	if !params.accepts(screen) {
		return fmt.Errorf("%w: %T not accepted by %s", ErrParams, params, screen)
	}
	return nil
}

// ArticleID extracts the article id from p, or "" when p is not a DetailParams.
func ArticleID(p Params) string {
	if d, ok := p.(DetailParams); ok {
		return d.ArticleID
	}
	return ""
}

// Section extracts section listing params, reporting whether p carried them.
func Section(p Params) (SectionParams, bool) {
	sp, ok := p.(SectionParams)
	return sp, ok
}
