package discovery_test

import (
	"testing"

	"leadsprinter/internal/discovery"
)

func TestNormalizeProfileURL_Canonical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"http://linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"https://ie.linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"www.linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"/in/jane-doe", "https://www.linkedin.com/in/jane-doe"},
		{"https://www.linkedin.com/in/jane-doe/", "https://www.linkedin.com/in/jane-doe"},
		{"https://www.linkedin.com/in/jane-doe/details/experience", "https://www.linkedin.com/in/jane-doe"},
	}
	for _, c := range cases {
		if got := discovery.NormalizeProfileURL(c.in); got != c.want {
			t.Errorf("NormalizeProfileURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeProfileURL_StripsTracking(t *testing.T) {
	cases := []string{
		"https://www.linkedin.com/in/jane-doe?originalSubdomain=ie",
		"https://www.linkedin.com/in/jane-doe?trk=public_profile#experience",
		"https://www.linkedin.com/in/jane-doe#about",
	}
	for _, in := range cases {
		if got := discovery.NormalizeProfileURL(in); got != "https://www.linkedin.com/in/jane-doe" {
			t.Errorf("NormalizeProfileURL(%q) = %q, want tracking stripped", in, got)
		}
	}
}

func TestNormalizeProfileURL_UnwrapsRedirects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"google", "https://www.google.com/url?q=https%3A%2F%2Fwww.linkedin.com%2Fin%2Fjane-doe&sa=U&ved=abc"},
		{"google relative", "/url?q=https://www.linkedin.com/in/jane-doe&sa=U"},
		{"duckduckgo", "https://duckduckgo.com/l/?uddg=https%3A%2F%2Fie.linkedin.com%2Fin%2Fjane-doe&rut=xyz"},
		{"duckduckgo relative", "//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.linkedin.com%2Fin%2Fjane-doe%3Ftrk%3Dx"},
	}
	for _, c := range cases {
		if got := discovery.NormalizeProfileURL(c.in); got != "https://www.linkedin.com/in/jane-doe" {
			t.Errorf("%s: NormalizeProfileURL(%q) = %q, want unwrapped profile URL", c.name, c.in, got)
		}
	}
}

func TestNormalizeProfileURL_RejectsNonProfiles(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"https://www.linkedin.com/company/acme",
		"https://www.linkedin.com/jobs/view/12345",
		"https://example.com/in/jane-doe",
		"https://www.google.com/search?q=linkedin",
		"https://www.linkedin.com/in/",
		"not a url at all",
	}
	for _, in := range cases {
		if got := discovery.NormalizeProfileURL(in); got != "" {
			t.Errorf("NormalizeProfileURL(%q) = %q, want \"\"", in, got)
		}
	}
}

func TestNormalizeProfileURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://www.linkedin.com/in/jane-doe",
		"https://duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.linkedin.com%2Fin%2Fjohn",
		"linkedin.com/in/someone?trk=x",
		"https://example.com/not-a-profile",
		"",
	}
	for _, in := range inputs {
		once := discovery.NormalizeProfileURL(in)
		twice := discovery.NormalizeProfileURL(once)
		if once != twice {
			t.Errorf("NormalizeProfileURL not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
