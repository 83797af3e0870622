package discovery_test

import (
	"testing"

	"leadsprinter/internal/discovery"
)

func TestIsBlocked_ContentPhrases(t *testing.T) {
	cases := []string{
		"<html>Please complete the CAPTCHA to continue</html>",
		"Our systems have detected unusual traffic from your network",
		"Verify you are human before continuing",
		"We have received too many requests from your IP",
	}
	for _, content := range cases {
		if !discovery.IsBlocked(content, "https://www.google.com/search?q=x") {
			t.Errorf("IsBlocked(%.40q...) = false, want true", content)
		}
	}
}

func TestIsBlocked_CleanPage(t *testing.T) {
	content := `<html><body><a href="https://www.linkedin.com/in/jane-doe">Jane Doe</a></body></html>`
	if discovery.IsBlocked(content, "https://www.google.com/search?q=x") {
		t.Error("IsBlocked on a clean results page = true, want false")
	}
}

func TestIsBlocked_URLHints(t *testing.T) {
	for _, u := range []string{
		"https://www.google.com/sorry/index?continue=x",
		"https://www.example.com/captcha?r=1",
	} {
		if !discovery.IsBlocked("<html>anything</html>", u) {
			t.Errorf("IsBlocked(_, %q) = false, want true", u)
		}
	}
}

func TestIsBlocked_NoResultsOverridesContentChecks(t *testing.T) {
	content := "Your search - zxqv captcha - did not match any documents."
	if discovery.IsBlocked(content, "https://www.google.com/search?q=zxqv") {
		t.Error("no-results page treated as blocked; content checks should yield to the no-results phrase")
	}
}

func TestIsBlocked_NoResultsDoesNotOverrideURLChecks(t *testing.T) {
	content := "Your search did not match any documents."
	if !discovery.IsBlocked(content, "https://www.google.com/sorry/index") {
		t.Error("challenge URL not treated as blocked; URL checks outrank the no-results phrase")
	}
}

func TestIsBlocked_StatusCodes(t *testing.T) {
	if !discovery.IsBlocked("Error 429: too many things", "https://example.com/") {
		t.Error("page mentioning 429 should be treated as blocked")
	}
	if !discovery.IsBlocked("403 Forbidden", "https://example.com/") {
		t.Error("page mentioning 403 should be treated as blocked")
	}
}
