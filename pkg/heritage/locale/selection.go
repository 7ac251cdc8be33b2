package locale

import (
	"go.uber.org/atomic"
	"golang.org/x/text/language"
)

// Selection is the process-wide current language. It is safe for
// concurrent use.
type Selection struct {
	code *atomic.String
}

// NewSelection creates a selection resolved from code.
func NewSelection(code string) *Selection {
	return &Selection{code: atomic.NewString(Code(Resolve(code)))}
}

// Set resolves code and makes it current, returning the language actually
// selected.
func (s *Selection) Set(code string) language.Tag {
	tag := Resolve(code)
	s.code.Store(Code(tag))
	return tag
}

// Current returns the selected language.
func (s *Selection) Current() language.Tag {
	return Resolve(s.code.Load())
}

// Code returns the short code of the selected language.
func (s *Selection) Code() string {
	return s.code.Load()
}

// Next cycles to the following supported language and returns it.
func (s *Selection) Next() language.Tag {
	cur := s.Current()
	for i, tag := range supported {
		if tag == cur {
			next := supported[(i+1)%len(supported)]
			s.code.Store(Code(next))
			return next
		}
	}
	s.code.Store(Code(Base))
	return Base
}
