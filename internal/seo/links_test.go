package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const origin = "https://cie-igcse-notes.vercel.app"

func TestIsInternal(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"root-relative path", "/subjects", true},
		{"fragment", "#contact", true},
		{"query only", "?page=2", true},
		{"relative path", "subjects/math", true},
		{"same host", "https://cie-igcse-notes.vercel.app/math", true},
		{"same host with www", "https://www.cie-igcse-notes.vercel.app/math", true},
		{"other host", "https://example.com/igcse", false},
		{"protocol-relative same host", "//cie-igcse-notes.vercel.app/math", true},
		{"protocol-relative other host", "//example.com/igcse", false},
		{"empty string", "", true},
		{"scheme without host", "https://", false},
		{"mailto-like with scheme marker", "mailto://someone@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInternal(tt.url, origin), "url %q", tt.url)
		})
	}
}

func TestIsInternalProtocolRelativeMatchesOrigin(t *testing.T) {
	// "//host/path" carries a host, so it is compared against the
	// origin rather than treated as a root-relative path.
	assert.True(t, IsInternal("//cie-igcse-notes.vercel.app/math", "cie-igcse-notes.vercel.app"))
}

func TestIsInternalEmptyOrigin(t *testing.T) {
	// Without an origin a host comparison cannot succeed, so absolute
	// URLs classify external. Relative forms stay internal.
	assert.False(t, IsInternal("https://example.com", ""))
	assert.True(t, IsInternal("/subjects", ""))
	assert.True(t, IsInternal("#top", ""))
}

func TestIsInternalBareHostOrigin(t *testing.T) {
	assert.True(t, IsInternal("https://example.com/x", "example.com"))
	assert.True(t, IsInternal("https://example.com/x", "example.com:8080"))
	assert.True(t, IsInternal("https://www.example.com/x", "example.com"))
	assert.False(t, IsInternal("https://other.com/x", "example.com"))
}

func TestRel(t *testing.T) {
	assert.Equal(t, "", Rel("/subjects", origin, false))
	assert.Equal(t, "", Rel("/subjects", origin, true))
	assert.Equal(t, "noopener noreferrer", Rel("https://example.com", origin, false))
	assert.Equal(t, "noopener noreferrer nofollow", Rel("https://example.com", origin, true))
}

func TestOpensNewTab(t *testing.T) {
	assert.False(t, OpensNewTab("/subjects", origin))
	assert.True(t, OpensNewTab("https://example.com", origin))
}
