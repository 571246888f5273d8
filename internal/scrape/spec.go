package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/roynafshi-stack/asus-model-api/internal/domain"
)

// FlattenText extracts the visible text content of the markup, lowercases it,
// and collapses all whitespace runs to single spaces.
func FlattenText(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript").Remove()
	return strings.Join(strings.Fields(strings.ToLower(doc.Text())), " ")
}

// Spec evaluates a model's extraction rules against tech-spec page markup.
//
// Gate: every required signal group must be satisfied by the flattened text;
// otherwise nil is returned and the caller falls back entirely. Partial
// extraction against a drifted layout risks serving stale or mismatched
// fields, so the gate is all-or-nothing.
//
// Past the gate, each field trigger is tested independently: a present
// keyword sets its field to the rule's canned value (first trigger per field
// wins); an absent keyword leaves the field unset so the caller falls back
// for that field only.
func Spec(markup string, rules domain.ExtractionRules) map[domain.FieldName]string {
	text := FlattenText(markup)
	if text == "" {
		return nil
	}

	for _, group := range rules.RequiredSignals {
		if !anySignal(text, group) {
			return nil
		}
	}

	fields := make(map[domain.FieldName]string)
	for _, trigger := range rules.FieldTriggers {
		if _, done := fields[trigger.Field]; done {
			continue
		}
		if strings.Contains(text, trigger.Keyword) {
			fields[trigger.Field] = trigger.Value
		}
	}
	return fields
}

// anySignal reports whether any keyword of the group appears in the text.
func anySignal(text string, group domain.SignalGroup) bool {
	for _, kw := range group {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
