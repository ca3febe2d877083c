package domain

// DefaultTargetLang is used when a translation query has no target language.
const DefaultTargetLang = "EN"

// TranslationQuery is a single word to translate.
type TranslationQuery struct {
	Word       string  `json:"word"`
	TargetLang *string `json:"target_lang,omitempty"`
}

// Target returns the requested language or DefaultTargetLang.
func (q TranslationQuery) Target() string {
	if q.TargetLang == nil || *q.TargetLang == "" {
		return DefaultTargetLang
	}
	return *q.TargetLang
}

// TranslationResult is the translated word. Empty when the provider had none.
type TranslationResult struct {
	Translation string `json:"translation"`
}
