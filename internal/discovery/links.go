package discovery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector strategies tried against the parsed results page. Engine
// result containers first, then any anchor that mentions a profile path,
// then the redirect anchors the engines wrap external links in.
var linkSelectors = []string{
	`div.g a[href*="linkedin.com/in"]`,
	`a.result__a[href*="linkedin.com"]`,
	`a[href*="linkedin.com/in"]`,
	`a[href*="duckduckgo.com/l/"]`,
	`a[href^="/url?q="]`,
}

// profileURLPattern matches profile URLs embedded anywhere in raw HTML,
// including inside script blobs the selectors cannot see.
var profileURLPattern = regexp.MustCompile(`https?://[a-zA-Z0-9./\-_%]*linkedin\.com/in/[a-zA-Z0-9\-_%.]+`)

// ExtractProfileLinks pulls normalized profile URLs out of a search
// results page. Selector strategies run first; the raw regex scan is a
// fallback for when the page structure defeats every selector. Order of
// first appearance is preserved and duplicates are dropped.
func ExtractProfileLinks(content string, limit int) []string {
	var hrefs []string
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		for _, sel := range linkSelectors {
			doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
				if href, ok := s.Attr("href"); ok {
					hrefs = append(hrefs, href)
				}
			})
		}
	}

	out := normalizeLinks(hrefs, limit)
	if len(out) == 0 {
		out = normalizeLinks(profileURLPattern.FindAllString(content, -1), limit)
	}
	return out
}

func normalizeLinks(hrefs []string, limit int) []string {
	seen := make(map[string]struct{}, len(hrefs))
	var out []string
	for _, href := range hrefs {
		u := NormalizeProfileURL(href)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
