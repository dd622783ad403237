package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/igcsenotes/site/internal/model"
)

func TestResolveAllAbsent(t *testing.T) {
	m := Resolve(PageOverrides{}, nil, ResolveOptions{})

	assert.Equal(t, DefaultTitle, m.Title)
	assert.Equal(t, DefaultDescription, m.Description)
	assert.Equal(t, DefaultTitle, m.OGTitle)
	assert.Equal(t, DefaultDescription, m.OGDescription)
	assert.Equal(t, DefaultTitle, m.TwitterTitle)
	assert.Equal(t, DefaultImagePath, m.OGImageURL)
	assert.Equal(t, DefaultImagePath, m.TwitterImageURL)
	assert.Empty(t, m.Keywords)
	assert.Empty(t, m.CanonicalURL)
	assert.False(t, m.NoIndex)
	assert.False(t, m.NoFollow)
}

func TestResolveFallbackOrder(t *testing.T) {
	section := &model.SEOFields{MetaTitle: "Doc Title"}
	over := PageOverrides{Title: "Page Title", Description: "Page Desc"}

	m := Resolve(over, section, ResolveOptions{})

	// Document value wins over the caller override; the override wins
	// over the hardcoded default.
	assert.Equal(t, "Doc Title", m.Title)
	assert.Equal(t, "Page Desc", m.Description)
}

func TestResolveKeywordsFallback(t *testing.T) {
	// Section keywords win, then the caller's page keywords, then
	// absent. The page step carries the hardcoded per-page keyword
	// strings the handlers supply.
	m := Resolve(PageOverrides{Keywords: "page, kw"}, &model.SEOFields{MetaKeywords: "doc, kw"}, ResolveOptions{})
	assert.Equal(t, "doc, kw", m.Keywords)

	m = Resolve(PageOverrides{Keywords: "page, kw"}, nil, ResolveOptions{})
	assert.Equal(t, "page, kw", m.Keywords)

	m = Resolve(PageOverrides{}, nil, ResolveOptions{})
	assert.Empty(t, m.Keywords)
}

func TestResolveSocialChains(t *testing.T) {
	section := &model.SEOFields{
		MetaTitle: "Meta",
		OGTitle:   "OG",
	}

	m := Resolve(PageOverrides{}, section, ResolveOptions{})

	assert.Equal(t, "OG", m.OGTitle)
	// Twitter falls through to OG, not to the meta title.
	assert.Equal(t, "OG", m.TwitterTitle)
	// OG description falls through to the resolved description.
	assert.Equal(t, DefaultDescription, m.OGDescription)
	assert.Equal(t, DefaultDescription, m.TwitterDescription)
}

func TestResolveImages(t *testing.T) {
	og := &model.Image{URL: "https://cdn.example.com/og.png", Alt: "OG alt"}
	section := &model.SEOFields{OGImage: og}

	m := Resolve(PageOverrides{}, section, ResolveOptions{})

	assert.Equal(t, "https://cdn.example.com/og.png", m.OGImageURL)
	assert.Equal(t, "OG alt", m.OGImageAlt)
	// Twitter image falls back to the resolved OG image.
	assert.Equal(t, "https://cdn.example.com/og.png", m.TwitterImageURL)
}

func TestResolveDefaultImageOverride(t *testing.T) {
	m := Resolve(PageOverrides{}, nil, ResolveOptions{DefaultImage: "/img/custom.jpg"})
	assert.Equal(t, "/img/custom.jpg", m.OGImageURL)
	assert.Equal(t, "/img/custom.jpg", m.TwitterImageURL)
}

func TestResolveFollowPolicy(t *testing.T) {
	section := &model.SEOFields{NoFollow: true, NoIndex: true}

	page := Resolve(PageOverrides{}, section, ResolveOptions{FollowPolicy: FollowPageLevel})
	assert.True(t, page.NoFollow)
	assert.True(t, page.NoIndex)

	// Link-level enforcement never sets the page-level flag; noIndex is
	// unaffected by the policy.
	link := Resolve(PageOverrides{}, section, ResolveOptions{FollowPolicy: FollowLinkLevel})
	assert.False(t, link.NoFollow)
	assert.True(t, link.NoIndex)
}

func TestResolveIdempotent(t *testing.T) {
	section := &model.SEOFields{
		MetaTitle:          "Title",
		MetaDescription:    "Desc",
		MetaKeywords:       "k1, k2",
		OGTitle:            "OG Title",
		OGDescription:      "OG Desc",
		OGImage:            &model.Image{URL: "https://cdn/og.png", Alt: "OG alt"},
		TwitterTitle:       "TW Title",
		TwitterDescription: "TW Desc",
		TwitterImage:       &model.Image{URL: "https://cdn/tw.png", Alt: "TW alt"},
		CanonicalURL:       "https://site/page",
		NoIndex:            true,
		NoFollow:           true,
	}

	first := Resolve(PageOverrides{}, section, ResolveOptions{})

	// Feeding the resolved record back through as both override and
	// section yields the same record.
	again := Resolve(PageOverrides{
		Title:        first.Title,
		Description:  first.Description,
		Keywords:     first.Keywords,
		CanonicalURL: first.CanonicalURL,
	}, &model.SEOFields{
		MetaTitle:          first.Title,
		MetaDescription:    first.Description,
		MetaKeywords:       first.Keywords,
		OGTitle:            first.OGTitle,
		OGDescription:      first.OGDescription,
		OGImage:            &model.Image{URL: first.OGImageURL, Alt: first.OGImageAlt},
		TwitterTitle:       first.TwitterTitle,
		TwitterDescription: first.TwitterDescription,
		TwitterImage:       &model.Image{URL: first.TwitterImageURL, Alt: first.TwitterImageAlt},
		CanonicalURL:       first.CanonicalURL,
		NoIndex:            first.NoIndex,
		NoFollow:           first.NoFollow,
	}, ResolveOptions{})

	assert.Equal(t, first, again)
}

func TestResolveCanonical(t *testing.T) {
	m := Resolve(PageOverrides{CanonicalURL: "https://site/x"}, &model.SEOFields{}, ResolveOptions{})
	assert.Equal(t, "https://site/x", m.CanonicalURL)

	m = Resolve(PageOverrides{CanonicalURL: "https://site/x"}, &model.SEOFields{CanonicalURL: "https://site/y"}, ResolveOptions{})
	assert.Equal(t, "https://site/y", m.CanonicalURL)
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "", ImageURL(nil))
	assert.Equal(t, "", ImageURL(&model.Image{}))
	assert.Equal(t, "direct", ImageURL(&model.Image{URL: "direct", Asset: &model.Asset{URL: "asset"}}))
	assert.Equal(t, "asset", ImageURL(&model.Image{Asset: &model.Asset{URL: "asset"}}))
}

func TestParseFollowPolicy(t *testing.T) {
	assert.Equal(t, FollowLinkLevel, ParseFollowPolicy("link"))
	assert.Equal(t, FollowPageLevel, ParseFollowPolicy("page"))
	assert.Equal(t, FollowPageLevel, ParseFollowPolicy(""))
	assert.Equal(t, FollowPageLevel, ParseFollowPolicy("bogus"))
}

func TestSettingsFields(t *testing.T) {
	assert.Nil(t, SettingsFields(nil))

	got := SettingsFields(&model.SEOSettings{MetaTitle: "T", MetaDescription: "D"})
	assert.Equal(t, "T", got.MetaTitle)
	assert.Equal(t, "D", got.MetaDescription)
}
