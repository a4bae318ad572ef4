package dnd5e

// Language is a spoken or secret language
type Language string

// Standard languages (PHB p.123)
const (
	LanguageCommon   Language = "Common"
	LanguageDwarvish Language = "Dwarvish"
	LanguageElvish   Language = "Elvish"
	LanguageGiant    Language = "Giant"
	LanguageGnomish  Language = "Gnomish"
	LanguageGoblin   Language = "Goblin"
	LanguageHalfling Language = "Halfling"
	LanguageOrc      Language = "Orc"
)

// Exotic languages
const (
	LanguageAbyssal     Language = "Abyssal"
	LanguageCelestial   Language = "Celestial"
	LanguageDraconic    Language = "Draconic"
	LanguageDeepSpeech  Language = "Deep Speech"
	LanguageInfernal    Language = "Infernal"
	LanguagePrimordial  Language = "Primordial"
	LanguageSylvan      Language = "Sylvan"
	LanguageUndercommon Language = "Undercommon"
)

// Secret languages are granted by class features and never drawn
const (
	LanguageDruidic     Language = "Druidic"
	LanguageThievesCant Language = "Thieves' Cant"
)

// StandardLanguages lists the standard languages
var StandardLanguages = []Language{
	LanguageCommon,
	LanguageDwarvish,
	LanguageElvish,
	LanguageGiant,
	LanguageGnomish,
	LanguageGoblin,
	LanguageHalfling,
	LanguageOrc,
}

// ExoticLanguages lists the exotic languages
var ExoticLanguages = []Language{
	LanguageAbyssal,
	LanguageCelestial,
	LanguageDraconic,
	LanguageDeepSpeech,
	LanguageInfernal,
	LanguagePrimordial,
	LanguageSylvan,
	LanguageUndercommon,
}

// LearnableLanguages is every language an "any language" option may grant
func LearnableLanguages() []Language {
	out := make([]Language, 0, len(StandardLanguages)+len(ExoticLanguages))
	out = append(out, StandardLanguages...)
	return append(out, ExoticLanguages...)
}

// IsExotic reports whether l is an exotic language
func (l Language) IsExotic() bool {
	for _, e := range ExoticLanguages {
		if e == l {
			return true
		}
	}
	return false
}

// LanguageOption is a deferred language grant: pick Count languages from
// From, or from every learnable language when From is empty.
type LanguageOption struct {
	Count  int          `json:"count"`
	From   []Language   `json:"from,omitempty"`
	Source ChoiceSource `json:"source"`
}
