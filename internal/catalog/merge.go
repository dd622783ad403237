// Package catalog builds the unified subject listing from the three
// independently sourced subject collections.
package catalog

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/igcsenotes/site/internal/model"
)

// Provenance tags which collection a subject entry came from. It is
// the tie-break in deduplication: published pages are live content
// and win over curated duplicates.
type Provenance string

const (
	ProvenanceCuratedGrid       Provenance = "curated-grid"
	ProvenanceCuratedAdditional Provenance = "curated-additional"
	ProvenancePublishedDynamic  Provenance = "published-dynamic"
)

// OrderPolicy is the configurable ordering of the merged catalog.
type OrderPolicy string

const (
	OrderAlphabetical        OrderPolicy = "alphabetical"
	OrderReverseAlphabetical OrderPolicy = "reverse-alphabetical"
	OrderRecentFirst         OrderPolicy = "recent-first"
	OrderOldestFirst         OrderPolicy = "oldest-first"
	OrderCustom              OrderPolicy = "custom"
)

// Entry is one subject in the merged catalog. Entries are built fresh
// per request and never mutated after the merge.
type Entry struct {
	Name        string
	Slug        string
	Description string
	Color       string
	Image       *model.Image
	DateUpdated time.Time // zero when unknown
	ButtonText  string
	DetailHref  string
	Provenance  Provenance
}

var (
	slugSpaces = regexp.MustCompile(`\s+`)
	slugStrip  = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives a URL-safe slug from a subject name: lowercase,
// whitespace collapsed to dashes, everything else dropped.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugStrip.ReplaceAllString(s, "")
}

// Merge combines curated grid subjects, curated additional subjects
// and published dynamic subject pages into one deduplicated, ordered
// catalog.
//
// Curated entries keep their position; when a curated entry collides
// with a published page (case-insensitive name match or derived-slug
// match, either alone suffices), the entry is rebound to the
// published page in place: it takes the published identity, href and
// provenance while keeping the curated presentation fields the page
// does not carry.
func Merge(grid []model.GridSubject, additional []model.AdditionalSubject, published []model.SubjectPage, policy OrderPolicy, includeAdditional bool) []Entry {
	entries := make([]Entry, 0, len(grid)+len(additional)+len(published))

	for _, s := range grid {
		entries = append(entries, curatedEntry(s, ProvenanceCuratedGrid))
	}

	if includeAdditional && len(additional) > 0 {
		extra := make([]model.AdditionalSubject, len(additional))
		copy(extra, additional)
		sort.SliceStable(extra, func(i, j int) bool {
			return extra[i].DisplayOrder < extra[j].DisplayOrder
		})
		for _, s := range extra {
			entries = append(entries, curatedEntry(s.GridSubject, ProvenanceCuratedAdditional))
		}
	}

	// Rebind curated entries that a published page supersedes, then
	// append the published pages nobody curated.
	claimed := make(map[string]bool, len(published))
	for i := range entries {
		if pub := matchPublished(entries[i], published); pub != nil {
			entries[i] = rebindToPublished(entries[i], *pub)
			claimed[strings.ToLower(pub.SubjectName)] = true
		}
	}
	for _, pub := range published {
		if claimed[strings.ToLower(pub.SubjectName)] {
			continue
		}
		entries = append(entries, publishedEntry(pub))
	}

	applyOrder(entries, policy)

	for i := range entries {
		if entries[i].DetailHref == "" {
			entries[i].DetailHref = "#"
		}
	}
	return entries
}

func curatedEntry(s model.GridSubject, prov Provenance) Entry {
	e := Entry{
		Name:        s.Name,
		Slug:        Slugify(s.Name),
		Description: s.Description,
		Color:       s.Color,
		Image:       s.Image,
		ButtonText:  s.ViewNotesButton.Text,
		DetailHref:  curatedHref(s),
		Provenance:  prov,
	}
	if t, err := time.Parse("2006-01-02", s.DateUpdated); err == nil {
		e.DateUpdated = t
	}
	return e
}

// curatedHref resolves the configured URL of a curated entry,
// rewriting legacy /subjects/<slug> paths to the bare /<slug> form.
func curatedHref(s model.GridSubject) string {
	href := s.ViewNotesButton.Destination()
	if strings.HasPrefix(href, "/subjects/") {
		return "/" + Slugify(s.Name)
	}
	return href
}

func publishedEntry(pub model.SubjectPage) Entry {
	desc := pub.PageDescription
	if len(desc) > 100 {
		desc = desc[:100] + "..."
	}
	return Entry{
		Name:        pub.SubjectName,
		Slug:        pub.SubjectSlug.Current,
		Description: desc,
		Color:       "bg-blue-500",
		DateUpdated: time.Now(),
		ButtonText:  "View Notes",
		DetailHref:  "/" + pub.SubjectSlug.Current,
		Provenance:  ProvenancePublishedDynamic,
	}
}

func rebindToPublished(e Entry, pub model.SubjectPage) Entry {
	e.Name = pub.SubjectName
	e.Slug = pub.SubjectSlug.Current
	e.DetailHref = "/" + pub.SubjectSlug.Current
	e.Provenance = ProvenancePublishedDynamic
	return e
}

// matchPublished finds the published page superseding an entry. A
// case-insensitive name match or a derived-slug match is each
// sufficient on its own.
func matchPublished(e Entry, published []model.SubjectPage) *model.SubjectPage {
	for i := range published {
		pub := &published[i]
		if strings.EqualFold(pub.SubjectName, e.Name) {
			return pub
		}
		if pub.SubjectSlug.Current != "" && pub.SubjectSlug.Current == Slugify(e.Name) {
			return pub
		}
	}
	return nil
}

func applyOrder(entries []Entry, policy OrderPolicy) {
	switch policy {
	case OrderAlphabetical:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(entries, func(i, j int) bool {
			return c.CompareString(entries[i].Name, entries[j].Name) < 0
		})
	case OrderReverseAlphabetical:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(entries, func(i, j int) bool {
			return c.CompareString(entries[i].Name, entries[j].Name) > 0
		})
	case OrderRecentFirst:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].DateUpdated.After(entries[j].DateUpdated)
		})
	case OrderOldestFirst:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].DateUpdated.Before(entries[j].DateUpdated)
		})
	default:
		// "custom" and anything unknown: keep construction order.
	}
}
