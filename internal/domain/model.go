package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrModelRequired signals a missing or whitespace-only model query value.
var ErrModelRequired = errors.New("model is required")

// UnsupportedModelError signals a model value that matches no registered
// prefix. It carries the list of supported prefixes for the error response.
type UnsupportedModelError struct {
	Model     string
	Supported []string
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("model %q is not supported (supported: %s)", e.Model, strings.Join(e.Supported, ", "))
}

// Model is one registry entry: everything needed to serve spec, images, and
// marketing for a laptop model family without branching code.
type Model struct {
	// Prefix is the normalized model-number prefix this entry matches.
	Prefix string

	// Name is the human-readable product name.
	Name string

	// ProductPageURL and TechSpecPageURL are the two fixed vendor pages.
	ProductPageURL  string
	TechSpecPageURL string

	// ImageHostPattern is matched as a substring against image URL hosts to
	// exclude third-party and ad images (covers the vendor's CDN subdomains).
	ImageHostPattern string

	// Fallback is the hand-authored spec record served whenever live
	// extraction is unavailable or incomplete.
	Fallback SpecData

	// Rules drive the spec extractor for this model.
	Rules ExtractionRules

	// Marketing holds the static bilingual copy templates.
	Marketing map[Language]MarketingCopy
}

// SourceURLs returns the model's source pages, product page first.
func (m *Model) SourceURLs() []string {
	return []string{m.ProductPageURL, m.TechSpecPageURL}
}

// Registry maps model identifiers to their registry entries. Adding a model is
// a data change, not a code change.
type Registry struct {
	models []*Model
}

// NewRegistry creates a registry over the given models.
func NewRegistry(models ...*Model) *Registry {
	return &Registry{models: models}
}

// Supported returns the registered model prefixes.
func (r *Registry) Supported() []string {
	out := make([]string, len(r.models))
	for i, m := range r.models {
		out[i] = m.Prefix
	}
	return out
}

// Resolve normalizes a raw model query value (trim, uppercase) and returns the
// matching registry entry. An empty value yields ErrModelRequired; a non-empty
// value matching no prefix yields UnsupportedModelError.
func (r *Registry) Resolve(raw string) (*Model, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return nil, ErrModelRequired
	}
	for _, m := range r.models {
		if strings.HasPrefix(normalized, m.Prefix) {
			return m, nil
		}
	}
	return nil, &UnsupportedModelError{Model: normalized, Supported: r.Supported()}
}
