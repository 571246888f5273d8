package domain

// SignalGroup is a set of alternative keywords; the group is satisfied when
// any one of them appears in the flattened page text.
type SignalGroup []string

// FieldTrigger maps a detection keyword to a spec field and the canned value
// substituted for it. The extractor detects THAT a feature is present and
// reports a known-good static description, not a verbatim scrape.
type FieldTrigger struct {
	Keyword string
	Field   FieldName
	Value   string
}

// ExtractionRules is the declarative rule set evaluated against a model's
// tech-spec page. All RequiredSignals groups must be satisfied before any
// FieldTrigger output is trusted; otherwise the page layout is assumed to
// have drifted and the caller falls back entirely.
type ExtractionRules struct {
	RequiredSignals []SignalGroup
	FieldTriggers   []FieldTrigger
}
