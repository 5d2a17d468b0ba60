package config

import (
	"github.com/rpgo/formkit/internal/behavior"
	"golang.org/x/text/language"
)

// presetTags lists the languages with a selector preset; the first entry is
// the fallback.
var presetTags = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var presetMatcher = language.NewMatcher(presetTags)

// Preset returns the selector preset that best matches lang. Any Portuguese
// variant selects the Portuguese markers; everything else falls back to
// English.
func Preset(lang string) behavior.Selectors {
	tag, _, _ := language.ParseAcceptLanguage(lang)
	_, idx, conf := presetMatcher.Match(tag...)
	if conf == language.No {
		return behavior.EnglishSelectors
	}
	if presetTags[idx] == language.BrazilianPortuguese {
		return behavior.PortugueseSelectors
	}
	return behavior.EnglishSelectors
}
