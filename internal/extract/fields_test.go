package extract_test

import (
	"testing"

	"leadsprinter/internal/extract"
)

const samplePage = `<html><body>
	<main>
		<h1 class="text-heading-xlarge">Jane  Doe</h1>
		<div class="text-body-medium break-words">Marketing Manager at Acme</div>
		<span class="text-body-small inline t-black--light break-words">Dublin, Ireland</span>
		<div class="experience-item__subtitle">Acme Corp</div>
		<script>{"contact":"jane.doe@acme.example"}</script>
	</main>
</body></html>`

func TestParseProfile_AllFields(t *testing.T) {
	p := extract.ParseProfile(samplePage, "https://www.linkedin.com/in/jane-doe")

	if p.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", p.Name, "Jane Doe")
	}
	if p.Title != "Marketing Manager at Acme" {
		t.Errorf("Title = %q, want %q", p.Title, "Marketing Manager at Acme")
	}
	if p.Company != "Acme Corp" {
		t.Errorf("Company = %q, want %q", p.Company, "Acme Corp")
	}
	if p.Location != "Dublin, Ireland" {
		t.Errorf("Location = %q, want %q", p.Location, "Dublin, Ireland")
	}
	if p.Email != "jane.doe@acme.example" {
		t.Errorf("Email = %q, want %q", p.Email, "jane.doe@acme.example")
	}
	if p.LinkedInURL != "https://www.linkedin.com/in/jane-doe" {
		t.Errorf("LinkedInURL = %q", p.LinkedInURL)
	}
}

func TestParseProfile_EmptyPageYieldsSentinels(t *testing.T) {
	p := extract.ParseProfile("<html><body></body></html>", "https://www.linkedin.com/in/ghost")

	for field, got := range map[string]string{
		"Name":     p.Name,
		"Title":    p.Title,
		"Company":  p.Company,
		"Location": p.Location,
	} {
		if got != extract.NotAvailable {
			t.Errorf("%s = %q, want %q", field, got, extract.NotAvailable)
		}
	}
	if p.Email != "" {
		t.Errorf("Email = %q, want empty for a page without one", p.Email)
	}
}

func TestParseProfile_LocatorFallback(t *testing.T) {
	// Only the older class names are present.
	page := `<html><body>
		<div class="pv-text-details__left-panel">
			<h1>John Smith</h1>
			<div class="text-body-medium">Engineer</div>
		</div>
	</body></html>`

	p := extract.ParseProfile(page, "https://www.linkedin.com/in/john-smith")
	if p.Name != "John Smith" {
		t.Errorf("Name = %q, want fallback locator to match", p.Name)
	}
	if p.Title != "Engineer" {
		t.Errorf("Title = %q, want fallback locator to match", p.Title)
	}
	if p.Company != extract.NotAvailable {
		t.Errorf("Company = %q, want sentinel", p.Company)
	}
}

func TestParseProfile_WhitespaceOnlyIsMissing(t *testing.T) {
	page := `<html><body><main><h1 class="text-heading-xlarge">   </h1></main></body></html>`
	p := extract.ParseProfile(page, "https://www.linkedin.com/in/blank")
	if p.Name != extract.NotAvailable {
		t.Errorf("Name = %q, want sentinel for whitespace-only text", p.Name)
	}
}

func TestExtractEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"reach me at jane_doe+leads@sub.example.co.uk today", "jane_doe+leads@sub.example.co.uk"},
		{"first a@b.io then c@d.io", "a@b.io"},
		{"no address here", ""},
		{"malformed @example.com", ""},
		{"trailing dot user@example.", ""},
	}
	for _, c := range cases {
		if got := extract.ExtractEmail(c.in); got != c.want {
			t.Errorf("ExtractEmail(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
