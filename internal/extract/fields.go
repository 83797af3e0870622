package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Locator chains per field, tried in order until one yields non-empty
// text. LinkedIn reshuffles its markup often, so each chain mixes the
// current class names with older ones and a generic last resort.
var (
	nameLocators = []string{
		"h1.text-heading-xlarge",
		".pv-text-details__left-panel h1",
		".top-card-layout__title",
		"main h1",
	}
	titleLocators = []string{
		".text-body-medium.break-words",
		".pv-text-details__left-panel .text-body-medium",
		".top-card-layout__headline",
	}
	companyLocators = []string{
		".pv-text-details__right-panel .inline-show-more-text",
		".experience-item__subtitle",
		"[data-field=\"experience_company\"]",
		".top-card-link__description",
	}
	locationLocators = []string{
		".text-body-small.inline.t-black--light.break-words",
		".pv-text-details__left-panel .text-body-small",
		".top-card__subline-item",
		"[data-field=\"location\"]",
	}
)

var emailPattern = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)

// ParseProfile extracts the lead fields from a rendered profile page.
// Missing fields come back as the NotAvailable sentinel; a missing email
// comes back empty.
func ParseProfile(content, profileURL string) *Profile {
	p := &Profile{
		Name:        NotAvailable,
		Title:       NotAvailable,
		Company:     NotAvailable,
		Location:    NotAvailable,
		LinkedInURL: profileURL,
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		if v, ok := firstText(doc, nameLocators); ok {
			p.Name = v
		}
		if v, ok := firstText(doc, titleLocators); ok {
			p.Title = v
		}
		if v, ok := firstText(doc, companyLocators); ok {
			p.Company = v
		}
		if v, ok := firstText(doc, locationLocators); ok {
			p.Location = v
		}
	}

	// Emails hide in contact overlays and script blobs as often as in
	// visible text, so scan the raw HTML rather than the DOM.
	p.Email = ExtractEmail(content)
	return p
}

// firstText walks the locator chain and returns the first non-empty
// trimmed text, with ok reporting whether any locator matched.
func firstText(doc *goquery.Document, locators []string) (string, bool) {
	for _, loc := range locators {
		text := strings.TrimSpace(doc.Find(loc).First().Text())
		if text != "" {
			return collapseSpace(text), true
		}
	}
	return "", false
}

// ExtractEmail returns the first email-shaped string in the content, or
// "" when none is present.
func ExtractEmail(content string) string {
	return emailPattern.FindString(content)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
