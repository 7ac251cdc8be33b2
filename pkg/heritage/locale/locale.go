// Package locale resolves the languages Heritage Pulse can render and
// holds the message catalog used for UI labels and article body templates.
//
// English is the base language. Every lookup for a language outside the
// supported set, or for a message a language does not translate, falls
// back to English.
package locale

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	English = language.English
	Telugu  = language.MustParse("te")
	Tamil   = language.MustParse("ta")
	Kannada = language.MustParse("kn")

	// Base is the language every projection falls back to.
	Base = English
)

var supported = []language.Tag{English, Telugu, Tamil, Kannada}

var matcher = language.NewMatcher(supported)

// labelKeys maps each supported language to the message naming it.
var labelKeys = map[language.Tag]string{
	English: "language_english",
	Telugu:  "language_telugu",
	Tamil:   "language_tamil",
	Kannada: "language_kannada",
}

// Supported returns the supported languages, base language first.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Resolve maps a language code such as "te", "ta-IN" or "fr" to a supported
// language. Unparseable and unsupported codes resolve to Base.
func Resolve(code string) language.Tag {
	if code == "" {
		return Base
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Base
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Base
	}
	return supported[idx]
}

// IsSupported reports whether code resolves to a supported language on its own
// merit rather than through the base fallback.
func IsSupported(code string) bool {
	tag := Resolve(code)
	if tag != Base {
		return true
	}
	parsed, err := language.Parse(code)
	if err != nil {
		return false
	}
	base, _ := parsed.Base()
	eng, _ := English.Base()
	return base == eng
}

// Code returns the short code of a supported language, e.g. "te".
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// LabelKey returns the message id naming tag in the language picker.
func LabelKey(tag language.Tag) string {
	if key, ok := labelKeys[tag]; ok {
		return key
	}
	return labelKeys[Base]
}

// Lower lowercases s using the casing rules of tag.
func Lower(tag language.Tag, s string) string {
	return cases.Lower(tag).String(s)
}
