package discovery

import "strings"

// Phrases that mark a fetched page as an anti-automation challenge
// rather than a real results page.
var blockingPhrases = []string{
	"captcha",
	"unusual traffic",
	"detected unusual",
	"verify you are human",
	"verify you're human",
	"are you a robot",
	"suspicious activity",
	"automated queries",
	"too many requests",
}

// URL markers for challenge redirects. These outrank everything else,
// including an apparent no-results page.
var blockingURLHints = []string{
	"/sorry/",
	"captcha",
	"challenge",
	"blocked",
}

// noResultsPhrase marks a legitimately empty results page. An engine
// saying "no matches" is not blocking us, whatever else the content
// heuristics think.
const noResultsPhrase = "did not match any documents"

// IsBlocked guesses whether a fetched page is an anti-bot challenge.
// Purely heuristic; callers treat a blocked page as an empty result.
func IsBlocked(content, pageURL string) bool {
	u := strings.ToLower(pageURL)
	for _, hint := range blockingURLHints {
		if strings.Contains(u, hint) {
			return true
		}
	}

	c := strings.ToLower(content)
	if strings.Contains(c, noResultsPhrase) {
		return false
	}
	for _, phrase := range blockingPhrases {
		if strings.Contains(c, phrase) {
			return true
		}
	}
	// Crude, and intentionally so: rate-limit pages rarely say more
	// than the status code.
	return strings.Contains(c, "403") || strings.Contains(c, "429")
}
