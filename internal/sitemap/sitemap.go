// Package sitemap builds the sitemap.xml document.
package sitemap

import (
	"encoding/xml"
	"time"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Priorities for the two page tiers.
const (
	HomePriority    = "1.0"
	SubjectPriority = "0.8"
)

// URLSet represents the root of a sitemap document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL represents a single sitemap entry.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Build generates a sitemap with the homepage plus one entry per
// published subject slug. Every entry is stamped with now and a
// weekly change frequency.
func Build(baseURL string, slugs []string, now time.Time) ([]byte, error) {
	lastmod := now.UTC().Format(time.RFC3339)
	doc := URLSet{
		Xmlns: xmlns,
		URLs: []URL{
			{
				Loc:        baseURL,
				LastMod:    lastmod,
				ChangeFreq: "weekly",
				Priority:   HomePriority,
			},
		},
	}
	for _, slug := range slugs {
		if slug == "" {
			continue
		}
		doc.URLs = append(doc.URLs, URL{
			Loc:        baseURL + "/" + slug,
			LastMod:    lastmod,
			ChangeFreq: "weekly",
			Priority:   SubjectPriority,
		})
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), output...), nil
}
