package domain

// Language selects a marketing copy template.
type Language string

const (
	LangHebrew  Language = "he"
	LangEnglish Language = "en"
)

// NormalizeLanguage maps a raw lang query value to a supported template
// language. Hebrew is the default; any unrecognized value behaves as Hebrew.
func NormalizeLanguage(raw string) Language {
	if raw == string(LangEnglish) {
		return LangEnglish
	}
	return LangHebrew
}

// MarketingCopy is a static marketing template for one language. The
// SourcesLine template contains a single %s verb interpolated with the
// fallback record's source URL list at response time; the interpolated result
// is appended to Benefits, so the raw template never leaves the service.
type MarketingCopy struct {
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	Benefits    []string `json:"benefits"`
	SourcesLine string   `json:"-"`
	CTA         string   `json:"cta"`
}
