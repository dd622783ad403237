package seo

import "github.com/igcsenotes/site/internal/model"

// Hardcoded last-resort defaults used when neither the document nor
// the caller supplies a value.
const (
	DefaultTitle       = "CIE IGCSE Notes"
	DefaultDescription = "Comprehensive IGCSE study notes and resources"
	DefaultImagePath   = "/images/default-og-image.jpg"
	SiteName           = "CIE IGCSE Notes"
)

// FollowPolicy selects where a page-level noFollow flag is enforced.
type FollowPolicy int

const (
	// FollowPageLevel lets the document's noFollow flag gate the
	// page-level robots meta tag.
	FollowPageLevel FollowPolicy = iota
	// FollowLinkLevel always emits follow at the page level and
	// leaves nofollow enforcement to per-link rel attributes.
	FollowLinkLevel
)

// ParseFollowPolicy maps a config string to a FollowPolicy. Anything
// other than "link" means page-level enforcement.
func ParseFollowPolicy(s string) FollowPolicy {
	if s == "link" {
		return FollowLinkLevel
	}
	return FollowPageLevel
}

// PageOverrides are the caller-supplied per-page values consulted
// after the document's own SEO fields.
type PageOverrides struct {
	Title        string
	Description  string
	Keywords     string
	CanonicalURL string
}

// ResolveOptions tune the resolver.
type ResolveOptions struct {
	// DefaultImage overrides the built-in social-card image path.
	DefaultImage string
	FollowPolicy FollowPolicy
}

// Metadata is the fully resolved page metadata record. Every field is
// populated (or deliberately absent, for Keywords and CanonicalURL)
// regardless of how sparse the inputs were.
type Metadata struct {
	Title              string
	Description        string
	Keywords           string
	OGTitle            string
	OGDescription      string
	OGImageURL         string
	OGImageAlt         string
	TwitterTitle       string
	TwitterDescription string
	TwitterImageURL    string
	TwitterImageAlt    string
	CanonicalURL       string
	NoIndex            bool
	NoFollow           bool
}

// ImageURL resolves a CMS image to a usable URL: the direct url field
// wins, then the expanded asset reference, then empty.
func ImageURL(img *model.Image) string {
	if img == nil {
		return ""
	}
	if img.URL != "" {
		return img.URL
	}
	if img.Asset != nil {
		return img.Asset.URL
	}
	return ""
}

// Resolve merges document-level SEO fields, caller overrides, and the
// hardcoded defaults into a complete Metadata record. Absent inputs
// are valid; the function never fails.
func Resolve(over PageOverrides, section *model.SEOFields, opts ResolveOptions) Metadata {
	if section == nil {
		section = &model.SEOFields{}
	}
	defaultImage := opts.DefaultImage
	if defaultImage == "" {
		defaultImage = DefaultImagePath
	}

	m := Metadata{
		Title:       firstOf(section.MetaTitle, over.Title, DefaultTitle),
		Description: firstOf(section.MetaDescription, over.Description, DefaultDescription),
		Keywords:    firstOf(section.MetaKeywords, over.Keywords),
		NoIndex:     section.NoIndex,
	}

	m.OGTitle = firstOf(section.OGTitle, m.Title)
	m.OGDescription = firstOf(section.OGDescription, m.Description)
	m.TwitterTitle = firstOf(section.TwitterTitle, m.OGTitle)
	m.TwitterDescription = firstOf(section.TwitterDescription, m.OGDescription)

	m.OGImageURL = firstOf(ImageURL(section.OGImage), defaultImage)
	m.TwitterImageURL = firstOf(ImageURL(section.TwitterImage), m.OGImageURL)
	if section.OGImage != nil {
		m.OGImageAlt = section.OGImage.Alt
	}
	m.OGImageAlt = firstOf(m.OGImageAlt, m.OGTitle)
	if section.TwitterImage != nil {
		m.TwitterImageAlt = section.TwitterImage.Alt
	}
	m.TwitterImageAlt = firstOf(m.TwitterImageAlt, m.TwitterTitle)

	m.CanonicalURL = firstOf(section.CanonicalURL, over.CanonicalURL)

	if opts.FollowPolicy == FollowPageLevel {
		m.NoFollow = section.NoFollow
	}

	return m
}

// SettingsFields adapts the site-wide SEO settings document into
// section fields usable as a resolver input.
func SettingsFields(s *model.SEOSettings) *model.SEOFields {
	if s == nil {
		return nil
	}
	return &model.SEOFields{
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
	}
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
