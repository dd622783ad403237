// Package seo provides link classification and page metadata
// resolution.
package seo

import (
	"net/url"
	"strings"
)

// IsInternal reports whether rawURL points at the current site rather
// than an external host. origin may be a full URL or a bare hostname;
// when it is empty and a host comparison would be needed, the link is
// classified external. Classification never fails: any parse error
// also degrades to external.
func IsInternal(rawURL, origin string) bool {
	// Protocol-relative URLs carry a host and must be compared
	// against the origin, so check them before the plain "/" case.
	if strings.HasPrefix(rawURL, "//") {
		rawURL = "https:" + rawURL
	} else {
		if strings.HasPrefix(rawURL, "/") || strings.HasPrefix(rawURL, "#") || strings.HasPrefix(rawURL, "?") {
			return true
		}
		if !strings.Contains(rawURL, "://") {
			// No scheme: a relative path.
			return true
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return false
	}

	host := hostnameOf(origin)
	if host == "" {
		return false
	}

	return stripWWW(u.Hostname()) == stripWWW(host)
}

// Rel returns the rel attribute for a link: empty for internal links,
// "noopener noreferrer" for external ones, with "nofollow" appended
// when the site-wide no-follow-external setting is on.
func Rel(rawURL, origin string, noFollowExternal bool) string {
	if IsInternal(rawURL, origin) {
		return ""
	}
	parts := []string{"noopener", "noreferrer"}
	if noFollowExternal {
		parts = append(parts, "nofollow")
	}
	return strings.Join(parts, " ")
}

// OpensNewTab reports whether a link should open in a new tab, which
// is the case exactly for external links.
func OpensNewTab(rawURL, origin string) bool {
	return !IsInternal(rawURL, origin)
}

func hostnameOf(origin string) string {
	if origin == "" {
		return ""
	}
	if strings.Contains(origin, "://") {
		u, err := url.Parse(origin)
		if err != nil {
			return ""
		}
		return u.Hostname()
	}
	// Bare hostname, possibly with a port.
	if host, _, ok := strings.Cut(origin, ":"); ok {
		return host
	}
	return origin
}

func stripWWW(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
