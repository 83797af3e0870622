package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gingfrederik/docx"

	"leadsprinter/internal/extract"
)

// WriteReport writes the human-readable leads report: one block per
// profile with the link and contact details, headed by the search
// parameters and run statistics.
func WriteReport(path string, profiles []extract.Profile, meta Metadata) error {
	if len(profiles) == 0 {
		return errors.New("no profiles to report")
	}

	f := docx.NewFile()

	titleP := f.AddParagraph()
	titleRun := titleP.AddText("Lead Generation Report")
	titleRun.Size(20)
	f.AddParagraph() // Spacer

	p := f.AddParagraph()
	run := p.AddText(fmt.Sprintf("Job titles: %s | Locations: %s",
		strings.Join(meta.JobTitles, ", "), strings.Join(meta.Locations, ", ")))
	run.Size(10)
	run.Color("808080")

	stats := Summarize(profiles)
	p = f.AddParagraph()
	run = p.AddText(fmt.Sprintf("Profiles: %d | With email: %d (%s) | Companies: %d",
		stats.TotalProfiles, stats.WithEmail, stats.EmailRate(), stats.UniqueCompanies))
	run.Size(10)
	run.Color("808080")

	f.AddParagraph() // Spacer
	f.AddParagraph().AddText("--------------------------------------------------")
	f.AddParagraph() // Spacer

	for _, lead := range profiles {
		p = f.AddParagraph()
		run = p.AddText(lead.Name)
		run.Size(16)

		p = f.AddParagraph()
		run = p.AddText(fmt.Sprintf("%s | %s | %s", lead.Title, lead.Company, lead.Location))
		run.Size(10)
		run.Color("808080")

		p = f.AddParagraph()
		run = p.AddText(lead.LinkedInURL)
		run.Size(10)
		run.Color("0000FF")

		if lead.Email != "" {
			p = f.AddParagraph()
			run = p.AddText("Email: " + lead.Email)
			run.Size(10)
		}

		f.AddParagraph().AddText("--------------------------------------------------")
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}
