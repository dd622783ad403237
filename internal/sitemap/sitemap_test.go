package sitemap

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "https://cie-igcse-notes.vercel.app"

func TestBuild(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	body, err := Build(base, []string{"physics", "chemistry"}, now)
	require.NoError(t, err)

	var doc URLSet
	require.NoError(t, xml.Unmarshal(body, &doc))

	require.Len(t, doc.URLs, 3)
	assert.Equal(t, base, doc.URLs[0].Loc)
	assert.Equal(t, HomePriority, doc.URLs[0].Priority)
	assert.Equal(t, base+"/physics", doc.URLs[1].Loc)
	assert.Equal(t, SubjectPriority, doc.URLs[1].Priority)
	assert.Equal(t, base+"/chemistry", doc.URLs[2].Loc)

	for _, u := range doc.URLs {
		assert.Equal(t, "weekly", u.ChangeFreq)
		assert.Equal(t, "2025-06-01T12:00:00Z", u.LastMod)
	}
}

func TestBuildHomepageOnly(t *testing.T) {
	body, err := Build(base, nil, time.Now())
	require.NoError(t, err)

	var doc URLSet
	require.NoError(t, xml.Unmarshal(body, &doc))
	require.Len(t, doc.URLs, 1)
	assert.Equal(t, base, doc.URLs[0].Loc)
}

func TestBuildSkipsEmptySlugs(t *testing.T) {
	body, err := Build(base, []string{"", "biology", ""}, time.Now())
	require.NoError(t, err)

	var doc URLSet
	require.NoError(t, xml.Unmarshal(body, &doc))
	require.Len(t, doc.URLs, 2)
	assert.Equal(t, base+"/biology", doc.URLs[1].Loc)
}

func TestBuildIncludesXMLHeader(t *testing.T) {
	body, err := Build(base, nil, time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), xml.Header))
	assert.Contains(t, string(body), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
}
