package scrape

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/roynafshi-stack/asus-model-api/internal/domain"
)

// imageExtensions are the only file types kept; anything else (gif, svg,
// tracking pixels) is dropped.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// roleRules classify an image URL by ordered substring tests on the lowercased
// URL. First matching rule wins; lifestyle is the default.
var roleRules = []struct {
	keywords []string
	role     domain.ImageRole
}{
	{[]string{"hero", "key-visual", "kv"}, domain.RoleHero},
	{[]string{"dual", "duo"}, domain.RoleModeDualScreen},
	{[]string{"laptop"}, domain.RoleModeLaptop},
	{[]string{"desktop"}, domain.RoleDesktopMode},
	{[]string{"kickstand"}, domain.RoleKickstand},
	{[]string{"port", "io"}, domain.RolePorts},
	{[]string{"pen"}, domain.RolePen},
}

// ClassifyRole assigns a semantic role to an image URL.
func ClassifyRole(imageURL string) domain.ImageRole {
	lowered := strings.ToLower(imageURL)
	for _, rule := range roleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.role
			}
		}
	}
	return domain.RoleLifestyle
}

// Images extracts product images from raw markup. It collects img src /
// lazy-load data-src attributes plus the first candidate of every srcset,
// keeps only vendor-hosted png/jpg/jpeg/webp URLs (resolving relative links
// against pageURL), classifies each into a role, and de-duplicates by exact
// URL preserving first-seen order. It never fails: unparseable input yields
// an empty slice.
func Images(markup, pageURL, hostPattern string) []domain.ImageEntry {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var entries []domain.ImageEntry
	seen := make(map[string]struct{})

	add := func(raw, alt string) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return
		}
		resolved, err := base.Parse(raw)
		if err != nil {
			return
		}
		if !hasImageExtension(resolved.Path) {
			return
		}
		if !strings.Contains(strings.ToLower(resolved.Host), strings.ToLower(hostPattern)) {
			return
		}
		abs := resolved.String()
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		entries = append(entries, domain.ImageEntry{
			URL:  abs,
			Alt:  alt,
			Role: ClassifyRole(abs),
		})
	}

	doc.Find("img, source").Each(func(_ int, s *goquery.Selection) {
		alt := s.AttrOr("alt", "")

		// Both attributes are collected: lazy-loaded images carry a
		// placeholder src (1x1 gif, data URI) alongside the real URL in
		// data-src, and the extension filter discards the placeholder.
		add(s.AttrOr("src", ""), alt)
		add(s.AttrOr("data-src", ""), alt)

		if srcset := s.AttrOr("srcset", ""); srcset != "" {
			add(firstSrcsetCandidate(srcset), alt)
		}
	})

	return entries
}

// Dedupe removes duplicate URLs from a merged image sequence, preserving
// first-seen order.
func Dedupe(entries []domain.ImageEntry) []domain.ImageEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]domain.ImageEntry, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.URL]; dup {
			continue
		}
		seen[e.URL] = struct{}{}
		out = append(out, e)
	}
	return out
}

// hasImageExtension reports whether the URL path ends in a kept image type.
// The query string is not part of the path, so "photo.jpg?w=800" passes.
func hasImageExtension(path string) bool {
	lowered := strings.ToLower(path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return false
}

// firstSrcsetCandidate returns the URL of the first candidate in a srcset
// attribute value ("url1 1x, url2 2x" -> "url1").
func firstSrcsetCandidate(srcset string) string {
	first, _, _ := strings.Cut(srcset, ",")
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
