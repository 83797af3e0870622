package export_test

import (
	"testing"

	"leadsprinter/internal/export"
	"leadsprinter/internal/extract"
)

func sampleProfiles() []extract.Profile {
	return []extract.Profile{
		{Name: "A", Company: "Acme", Location: "Dublin", Email: "a@acme.ie"},
		{Name: "B", Company: "Acme", Location: "Dublin"},
		{Name: "C", Company: "Globex", Location: "Cork", Email: "c@globex.ie"},
		{Name: "D", Company: "N/A", Location: "Dublin"},
	}
}

func TestSummarize(t *testing.T) {
	s := export.Summarize(sampleProfiles())

	if s.TotalProfiles != 4 {
		t.Errorf("TotalProfiles = %d, want 4", s.TotalProfiles)
	}
	if s.WithEmail != 2 {
		t.Errorf("WithEmail = %d, want 2", s.WithEmail)
	}
	if s.UniqueCompanies != 3 {
		t.Errorf("UniqueCompanies = %d, want 3", s.UniqueCompanies)
	}
	if s.UniqueLocations != 2 {
		t.Errorf("UniqueLocations = %d, want 2", s.UniqueLocations)
	}
	if s.EmailRate() != "50.0%" {
		t.Errorf("EmailRate = %q, want %q", s.EmailRate(), "50.0%")
	}
}

func TestSummarize_TopCompaniesOrdered(t *testing.T) {
	s := export.Summarize(sampleProfiles())

	if len(s.TopCompanies) != 3 {
		t.Fatalf("len(TopCompanies) = %d, want 3", len(s.TopCompanies))
	}
	if s.TopCompanies[0].Value != "Acme" || s.TopCompanies[0].Count != 2 {
		t.Errorf("TopCompanies[0] = %+v, want Acme (2)", s.TopCompanies[0])
	}
	// Ties break alphabetically so output is stable.
	if s.TopCompanies[1].Value != "Globex" || s.TopCompanies[2].Value != "N/A" {
		t.Errorf("tie order = %q, %q, want Globex then N/A", s.TopCompanies[1].Value, s.TopCompanies[2].Value)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := export.Summarize(nil)
	if s.TotalProfiles != 0 || s.WithEmail != 0 {
		t.Errorf("empty summary = %+v, want zeros", s)
	}
	if s.EmailRate() != "0.0%" {
		t.Errorf("EmailRate on empty = %q, want 0.0%%", s.EmailRate())
	}
}
