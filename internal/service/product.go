package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/roynafshi-stack/asus-model-api/internal/domain"
	"github.com/roynafshi-stack/asus-model-api/internal/scrape"
)

// PageFetcher fetches raw vendor page markup.
type PageFetcher interface {
	Page(ctx context.Context, url string) (string, error)
}

// ProductService implements the spec, images, and marketing operations.
// Upstream failures are never surfaced: every operation degrades to the
// model's static fallback data.
type ProductService struct {
	registry *domain.Registry
	fetcher  PageFetcher
	logger   *slog.Logger
	nowFunc  func() time.Time
}

// NewProductService creates a new product service.
func NewProductService(registry *domain.Registry, fetcher PageFetcher, logger *slog.Logger) *ProductService {
	return &ProductService{
		registry: registry,
		fetcher:  fetcher,
		logger:   logger,
		nowFunc:  time.Now,
	}
}

// SpecResult is the response payload for the spec operation.
type SpecResult struct {
	Model     string            `json:"model"`
	Name      string            `json:"name"`
	Spec      domain.SpecRecord `json:"spec"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// ImagesResult is the response payload for the images operation.
type ImagesResult struct {
	Model       string              `json:"model"`
	SourcePages []string            `json:"source_pages"`
	Images      []domain.ImageEntry `json:"images"`
	Note        string              `json:"note"`
	FetchedAt   time.Time           `json:"fetched_at"`
}

// MarketingResult is the response payload for the marketing operation.
type MarketingResult struct {
	domain.MarketingCopy
	Model     string    `json:"model"`
	Lang      string    `json:"lang"`
	FetchedAt time.Time `json:"fetched_at"`
}

const imagesNote = "images are scraped best-effort from the vendor pages; an empty list means the pages were unavailable"

// Spec returns the merged spec record for the given model query value. The
// tech-spec page is fetched and run through the model's extraction rules;
// any fetch or gate failure means the full static fallback is served, and a
// partial extraction falls back per field. Provenance on each field records
// which way it went.
func (s *ProductService) Spec(ctx context.Context, rawModel string) (*SpecResult, error) {
	model, err := s.registry.Resolve(rawModel)
	if err != nil {
		return nil, err
	}

	var extracted map[domain.FieldName]string
	markup, err := s.fetcher.Page(ctx, model.TechSpecPageURL)
	if err != nil {
		s.logger.WarnContext(ctx, "tech-spec page unavailable, serving fallback",
			slog.String("model", model.Prefix),
			slog.String("url", model.TechSpecPageURL),
			slog.String("error", err.Error()),
		)
	} else {
		extracted = scrape.Spec(markup, model.Rules)
		if extracted == nil {
			s.logger.WarnContext(ctx, "signal gate failed, serving fallback",
				slog.String("model", model.Prefix),
			)
		}
	}

	return &SpecResult{
		Model:     model.Prefix,
		Name:      model.Name,
		Spec:      domain.MergeSpec(model.Fallback, extracted, model.SourceURLs()),
		FetchedAt: s.nowFunc().UTC(),
	}, nil
}

// Images returns the de-duplicated image set scraped from both vendor pages,
// product page entries first. Both fetches run concurrently; a failed fetch
// contributes an empty sequence, never an error. There is no fallback image
// set, so an empty result is a valid outcome.
func (s *ProductService) Images(ctx context.Context, rawModel string) (*ImagesResult, error) {
	model, err := s.registry.Resolve(rawModel)
	if err != nil {
		return nil, err
	}

	pages := model.SourceURLs()
	perPage := make([][]domain.ImageEntry, len(pages))

	var wg sync.WaitGroup
	for i, pageURL := range pages {
		wg.Add(1)
		go func(i int, pageURL string) {
			defer wg.Done()
			markup, err := s.fetcher.Page(ctx, pageURL)
			if err != nil {
				s.logger.WarnContext(ctx, "image source page unavailable",
					slog.String("model", model.Prefix),
					slog.String("url", pageURL),
					slog.String("error", err.Error()),
				)
				return
			}
			perPage[i] = scrape.Images(markup, pageURL, model.ImageHostPattern)
		}(i, pageURL)
	}
	wg.Wait()

	var merged []domain.ImageEntry
	for _, entries := range perPage {
		merged = append(merged, entries...)
	}

	return &ImagesResult{
		Model:       model.Prefix,
		SourcePages: pages,
		Images:      scrape.Dedupe(merged),
		Note:        imagesNote,
		FetchedAt:   s.nowFunc().UTC(),
	}, nil
}

// Marketing returns the static bilingual copy for the given model and lang
// query values. No network fetch occurs. Hebrew is the default template; the
// returned Lang echoes the literal input even when the content falls back.
func (s *ProductService) Marketing(rawModel, rawLang string) (*MarketingResult, error) {
	model, err := s.registry.Resolve(rawModel)
	if err != nil {
		return nil, err
	}

	lang := domain.NormalizeLanguage(strings.TrimSpace(rawLang))
	tmpl := model.Marketing[lang]

	rendered := tmpl
	rendered.Benefits = make([]string, 0, len(tmpl.Benefits)+1)
	rendered.Benefits = append(rendered.Benefits, tmpl.Benefits...)
	if tmpl.SourcesLine != "" {
		rendered.Benefits = append(rendered.Benefits, fmt.Sprintf(tmpl.SourcesLine, strings.Join(model.SourceURLs(), ", ")))
	}

	echoLang := rawLang
	if strings.TrimSpace(echoLang) == "" {
		echoLang = string(lang)
	}

	return &MarketingResult{
		MarketingCopy: rendered,
		Model:         model.Prefix,
		Lang:          echoLang,
		FetchedAt:     s.nowFunc().UTC(),
	}, nil
}
