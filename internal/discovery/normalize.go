package discovery

import (
	"net/url"
	"strings"
)

// redirectParams are the query parameters search engines hide the real
// destination behind ("/url?q=..." on Google, "/l/?uddg=..." on DuckDuckGo).
var redirectParams = []string{"q", "uddg", "url"}

// NormalizeProfileURL canonicalizes a raw hyperlink from a search results
// page into the form https://www.linkedin.com/in/<slug>. It unwraps engine
// redirect URLs, upgrades scheme-less and bare-path forms, and strips query
// strings and fragments. Returns "" when no profile path is recognizable.
// Applying it to its own output is a no-op.
func NormalizeProfileURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// Redirect wrappers first: the destination is a query parameter.
	if u, err := url.Parse(raw); err == nil && u.RawQuery != "" {
		q := u.Query()
		for _, param := range redirectParams {
			if v := q.Get(param); strings.Contains(v, "/in/") {
				return NormalizeProfileURL(v)
			}
		}
	}

	// Tracking parameters and fragments.
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}

	idx := strings.Index(raw, "/in/")
	if idx < 0 {
		return ""
	}
	if h := hostOf(raw[:idx]); h != "" && h != "linkedin.com" && !strings.HasSuffix(h, ".linkedin.com") {
		return ""
	}

	slug := raw[idx+len("/in/"):]
	if j := strings.IndexByte(slug, '/'); j >= 0 {
		slug = slug[:j]
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}

	return "https://www.linkedin.com/in/" + slug
}

// hostOf extracts a lowercase host from the text preceding the profile
// path. Empty input (a bare "/in/..." path) yields "".
func hostOf(head string) string {
	head = strings.TrimPrefix(head, "http://")
	head = strings.TrimPrefix(head, "https://")
	head = strings.TrimPrefix(head, "www.")
	if i := strings.IndexByte(head, '/'); i >= 0 {
		head = head[:i]
	}
	return strings.ToLower(head)
}
