package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roynafshi-stack/asus-model-api/internal/domain"
)

const pageURL = "https://www.asus.com/laptops/zenbook-duo/"

func TestImages_CollectsSrcAndAlt(t *testing.T) {
	markup := `<html><body>
		<img src="https://dlcdnwebimgs.asus.com/gain/img-hero.png" alt="Hero shot">
		<img src="https://dlcdnwebimgs.asus.com/gain/img-pen.jpg" alt="">
	</body></html>`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 2)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/gain/img-hero.png", got[0].URL)
	assert.Equal(t, "Hero shot", got[0].Alt)
	assert.Equal(t, domain.RoleHero, got[0].Role)
	assert.Equal(t, domain.RolePen, got[1].Role)
}

func TestImages_LazyLoadAttribute(t *testing.T) {
	markup := `<img data-src="https://dlcdnwebimgs.asus.com/lazy-kickstand.webp" alt="Kickstand">`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 1)
	assert.Equal(t, domain.RoleKickstand, got[0].Role)
}

func TestImages_LazyLoadBehindPlaceholderSrc(t *testing.T) {
	markup := `<body>
		<img src="https://dlcdnwebimgs.asus.com/placeholder.gif" data-src="https://dlcdnwebimgs.asus.com/real-hero.jpg" alt="Hero">
		<img src="data:image/gif;base64,R0lGOD" data-src="https://dlcdnwebimgs.asus.com/lazy-pen.png" alt="Pen">
	</body>`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 2)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/real-hero.jpg", got[0].URL)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/lazy-pen.png", got[1].URL)
}

func TestImages_CollectsBothSrcAndDataSrc(t *testing.T) {
	markup := `<img src="https://dlcdnwebimgs.asus.com/eager.jpg" data-src="https://dlcdnwebimgs.asus.com/lazy.jpg" alt="both">`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 2)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/eager.jpg", got[0].URL)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/lazy.jpg", got[1].URL)
}

func TestImages_SrcsetFirstCandidate(t *testing.T) {
	markup := `<picture>
		<source srcset="https://dlcdnwebimgs.asus.com/small-desktop.jpg 1x, https://dlcdnwebimgs.asus.com/big-desktop.jpg 2x">
		<img src="https://dlcdnwebimgs.asus.com/fallback-desktop.jpeg" alt="Desktop mode">
	</picture>`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 2)
	// Only the first srcset candidate is taken.
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/small-desktop.jpg", got[0].URL)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/fallback-desktop.jpeg", got[1].URL)
}

func TestImages_ExcludesNonImageExtensions(t *testing.T) {
	markup := `<body>
		<img src="https://dlcdnwebimgs.asus.com/banner.gif" alt="animated">
		<img src="https://dlcdnwebimgs.asus.com/logo.svg" alt="logo">
		<img src="https://dlcdnwebimgs.asus.com/photo.jpg?w=800" alt="kept">
	</body>`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 1)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/photo.jpg?w=800", got[0].URL)
}

func TestImages_ResolvesRelativeURLs(t *testing.T) {
	markup := `<img src="/media/gallery/shot1.png" alt="relative">`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 1)
	assert.Equal(t, "https://www.asus.com/media/gallery/shot1.png", got[0].URL)
}

func TestImages_FiltersThirdPartyHosts(t *testing.T) {
	markup := `<body>
		<img src="https://ads.tracker.example/pixel.png" alt="ad">
		<img src="https://dlcdnwebimgs.asus.com/real.png" alt="real">
	</body>`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 1)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/real.png", got[0].URL)
}

func TestImages_DeduplicatesPreservingOrder(t *testing.T) {
	markup := `<body>
		<img src="https://dlcdnwebimgs.asus.com/a.png" alt="first">
		<img src="https://dlcdnwebimgs.asus.com/b.png" alt="second">
		<img src="https://dlcdnwebimgs.asus.com/a.png" alt="dup">
	</body>`

	got := Images(markup, pageURL, "asus.com")

	require.Len(t, got, 2)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/a.png", got[0].URL)
	assert.Equal(t, "first", got[0].Alt)
	assert.Equal(t, "https://dlcdnwebimgs.asus.com/b.png", got[1].URL)
}

func TestImages_MalformedMarkup(t *testing.T) {
	got := Images("<<<<not html", pageURL, "asus.com")
	assert.Empty(t, got)
}

func TestClassifyRole_OrderedFirstMatchWins(t *testing.T) {
	tests := []struct {
		url  string
		want domain.ImageRole
	}{
		{"https://cdn.asus.com/hero-banner.png", domain.RoleHero},
		{"https://cdn.asus.com/kv-main.png", domain.RoleHero},
		// "hero" rule precedes "dual" even when both keywords appear.
		{"https://cdn.asus.com/hero-dual.png", domain.RoleHero},
		{"https://cdn.asus.com/dual-screen.png", domain.RoleModeDualScreen},
		{"https://cdn.asus.com/duo-mode.png", domain.RoleModeDualScreen},
		{"https://cdn.asus.com/laptop-mode.png", domain.RoleModeLaptop},
		{"https://cdn.asus.com/desktop-setup.png", domain.RoleDesktopMode},
		{"https://cdn.asus.com/kickstand-up.png", domain.RoleKickstand},
		{"https://cdn.asus.com/ports-left.png", domain.RolePorts},
		{"https://cdn.asus.com/pen-stylus.png", domain.RolePen},
		{"https://cdn.asus.com/cafe-scene.png", domain.RoleLifestyle},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRole(tt.url), "url=%s", tt.url)
	}
}

func TestDedupe_AcrossPages(t *testing.T) {
	merged := []domain.ImageEntry{
		{URL: "https://cdn.asus.com/a.png", Role: domain.RoleHero},
		{URL: "https://cdn.asus.com/b.png", Role: domain.RoleLifestyle},
		{URL: "https://cdn.asus.com/a.png", Role: domain.RoleHero},
	}

	got := Dedupe(merged)

	require.Len(t, got, 2)
	assert.Equal(t, "https://cdn.asus.com/a.png", got[0].URL)
	assert.Equal(t, "https://cdn.asus.com/b.png", got[1].URL)
}
