package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roynafshi-stack/asus-model-api/internal/domain"
)

// fakeFetcher serves canned markup per URL; URLs with no entry fail.
type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Page(_ context.Context, url string) (string, error) {
	if body, ok := f.pages[url]; ok {
		return body, nil
	}
	return "", errors.New("upstream unavailable")
}

func serviceTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestService(pages map[string]string) *ProductService {
	return NewProductService(domain.DefaultRegistry(), &fakeFetcher{pages: pages}, serviceTestLogger())
}

const gatedSpecPage = `<html><body>
	<p>14.0" 3K (2880 x 1800) OLED touchscreen</p>
	<p>Intel Core Ultra 9 185H</p>
	<p>2x Thunderbolt 4, 16GB LPDDR5X</p>
</body></html>`

func TestSpec_MissingModel(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Spec(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrModelRequired)
}

func TestSpec_UnsupportedModel(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Spec(context.Background(), "ROG-STRIX")
	var unsupported *domain.UnsupportedModelError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, []string{"UX8406"}, unsupported.Supported)
}

func TestSpec_FetchFailureServesFullFallback(t *testing.T) {
	svc := newTestService(nil) // every fetch fails

	got, err := svc.Spec(context.Background(), "UX8406")
	require.NoError(t, err)

	fallback := domain.ZenbookDuo().Fallback
	for _, name := range domain.SpecFields {
		f := got.Spec.FieldByName(name)
		assert.Equal(t, domain.SourceFallback, f.Source, "field %s", name)
		assert.Equal(t, fallback.Field(name), f.Value, "field %s", name)
	}
	assert.False(t, got.FetchedAt.IsZero())
}

func TestSpec_GateFailureServesFullFallback(t *testing.T) {
	model := domain.ZenbookDuo()
	// OLED and connectivity present, no CPU-family keyword: gate must fail.
	svc := newTestService(map[string]string{
		model.TechSpecPageURL: `<body><p>OLED, Thunderbolt 4, 16GB LPDDR5X</p></body>`,
	})

	got, err := svc.Spec(context.Background(), "UX8406")
	require.NoError(t, err)

	assert.Equal(t, domain.SourceFallback, got.Spec.Memory.Source)
	assert.Equal(t, model.Fallback.Memory, got.Spec.Memory.Value)
}

func TestSpec_LiveFieldsMergeOverFallback(t *testing.T) {
	model := domain.ZenbookDuo()
	svc := newTestService(map[string]string{
		model.TechSpecPageURL: gatedSpecPage,
	})

	got, err := svc.Spec(context.Background(), "ux8406ma")
	require.NoError(t, err)

	assert.Equal(t, domain.SourceLive, got.Spec.Memory.Source)
	assert.Equal(t, "16GB / 32GB LPDDR5X onboard", got.Spec.Memory.Value)

	// No battery keyword on the page: fallback for that field only.
	assert.Equal(t, domain.SourceFallback, got.Spec.Battery.Source)
	assert.Equal(t, model.Fallback.Battery, got.Spec.Battery.Value)

	assert.Equal(t, model.SourceURLs(), got.Spec.Sources)
}

func TestImages_MergesProductPageFirst(t *testing.T) {
	model := domain.ZenbookDuo()
	svc := newTestService(map[string]string{
		model.ProductPageURL:  `<img src="https://dlcdnwebimgs.asus.com/product-hero.png" alt="hero">`,
		model.TechSpecPageURL: `<img src="https://dlcdnwebimgs.asus.com/techspec-ports.png" alt="ports">`,
	})

	got, err := svc.Images(context.Background(), "UX8406")
	require.NoError(t, err)

	require.Len(t, got.Images, 2)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/product-hero.png", got.Images[0].URL)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/techspec-ports.png", got.Images[1].URL)
	assert.Equal(t, model.SourceURLs(), got.SourcePages)
}

func TestImages_DeduplicatesAcrossPages(t *testing.T) {
	model := domain.ZenbookDuo()
	shared := `<img src="https://dlcdnwebimgs.asus.com/shared.png" alt="shared">`
	svc := newTestService(map[string]string{
		model.ProductPageURL:  shared,
		model.TechSpecPageURL: shared,
	})

	got, err := svc.Images(context.Background(), "UX8406")
	require.NoError(t, err)

	assert.Len(t, got.Images, 1)
}

func TestImages_AllFetchesFailYieldsEmptyList(t *testing.T) {
	svc := newTestService(nil)

	got, err := svc.Images(context.Background(), "UX8406")
	require.NoError(t, err)

	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)
	assert.NotEmpty(t, got.Note)
}

func TestImages_PartialFailureKeepsSurvivingPage(t *testing.T) {
	model := domain.ZenbookDuo()
	svc := newTestService(map[string]string{
		model.TechSpecPageURL: `<img src="https://dlcdnwebimgs.asus.com/only.png" alt="only">`,
	})

	got, err := svc.Images(context.Background(), "UX8406")
	require.NoError(t, err)

	require.Len(t, got.Images, 1)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/only.png", got.Images[0].URL)
}

func TestMarketing_HebrewDefault(t *testing.T) {
	svc := newTestService(nil)

	for _, lang := range []string{"", "he", "fr", "xx"} {
		got, err := svc.Marketing("UX8406", lang)
		require.NoError(t, err, "lang=%q", lang)
		assert.Equal(t, domain.ZenbookDuo().Marketing[domain.LangHebrew].Headline, got.Headline, "lang=%q", lang)
	}
}

func TestMarketing_English(t *testing.T) {
	svc := newTestService(nil)

	got, err := svc.Marketing("UX8406", "en")
	require.NoError(t, err)
	assert.Equal(t, "en", got.Lang)
	assert.Contains(t, got.Headline, "Two Screens")
}

func TestMarketing_LangEchoesLiteralInput(t *testing.T) {
	svc := newTestService(nil)

	got, err := svc.Marketing("UX8406", "fr")
	require.NoError(t, err)
	// Content falls back to Hebrew but the lang echo stays literal.
	assert.Equal(t, "fr", got.Lang)

	omitted, err := svc.Marketing("UX8406", "")
	require.NoError(t, err)
	assert.Equal(t, "he", omitted.Lang)
}

func TestMarketing_SourcesInterpolatedIntoBenefits(t *testing.T) {
	svc := newTestService(nil)

	got, err := svc.Marketing("UX8406", "en")
	require.NoError(t, err)

	model := domain.ZenbookDuo()
	last := got.Benefits[len(got.Benefits)-1]
	assert.Contains(t, last, model.ProductPageURL)
	assert.Contains(t, last, model.TechSpecPageURL)
}

func TestMarketing_NoFetchOccurs(t *testing.T) {
	// A fetcher that panics proves marketing never touches the network.
	svc := NewProductService(domain.DefaultRegistry(), panicFetcher{}, serviceTestLogger())

	_, err := svc.Marketing("UX8406", "he")
	assert.NoError(t, err)
}

type panicFetcher struct{}

func (panicFetcher) Page(context.Context, string) (string, error) {
	panic("marketing must not fetch")
}
