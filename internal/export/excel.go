package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"leadsprinter/internal/extract"
)

const (
	resultsSheet = "Lead Results"
	summarySheet = "Search Summary"

	headerFill  = "366092"
	maxColWidth = 50
)

// Metadata describes the run that produced a result set, for the
// summary sheet.
type Metadata struct {
	SearchDate  time.Time
	JobTitles   []string
	Locations   []string
	Requested   int
	Industry    string
	CompanySize string
}

var resultColumns = []string{
	"Full Name",
	"Job Title",
	"Company",
	"Location",
	"LinkedIn Profile",
	"Email Address",
	"Date Scraped",
	"Search Query",
	"Job Title Searched",
	"Location Searched",
}

// WriteExcel writes the formatted workbook: a styled results sheet with
// a hyperlinked profile column, plus a summary sheet with the search
// parameters and run statistics. Refuses an empty result set so a
// failed run never overwrites anything with a blank file.
func WriteExcel(path string, profiles []extract.Profile, meta Metadata) error {
	if len(profiles) == 0 {
		return errors.New("no profiles to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("preparing workbook: %w", err)
	}
	if err := writeResults(f, profiles); err != nil {
		return fmt.Errorf("writing results sheet: %w", err)
	}
	if err := writeSummary(f, profiles, meta); err != nil {
		return fmt.Errorf("writing summary sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeResults(f *excelize.File, profiles []extract.Profile) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return err
	}
	linkStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "0000FF", Underline: "single"},
	})
	if err != nil {
		return err
	}

	widths := make([]int, len(resultColumns))
	for i, h := range resultColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(resultsSheet, cell, h); err != nil {
			return err
		}
		widths[i] = len(h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(resultColumns), 1)
	if err := f.SetCellStyle(resultsSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for row, p := range profiles {
		values := []string{
			p.Name,
			p.Title,
			p.Company,
			p.Location,
			p.LinkedInURL,
			p.Email,
			p.ScrapedAt.Format("2006-01-02 15:04:05"),
			p.SearchQuery,
			p.JobTitleSearched,
			p.LocationSearched,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(resultsSheet, cell, v); err != nil {
				return err
			}
			if len(v) > widths[col] {
				widths[col] = len(v)
			}
		}

		linkCell, _ := excelize.CoordinatesToCellName(5, row+2)
		if err := f.SetCellHyperLink(resultsSheet, linkCell, p.LinkedInURL, "External"); err != nil {
			return err
		}
		if err := f.SetCellStyle(resultsSheet, linkCell, linkCell, linkStyle); err != nil {
			return err
		}
	}

	for i, w := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(w + 2)
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(resultsSheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, profiles []extract.Profile, meta Metadata) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	stats := Summarize(profiles)
	searchDate := meta.SearchDate
	if searchDate.IsZero() {
		searchDate = time.Now()
	}

	rows := [][2]string{
		{"Search Date", searchDate.Format("2006-01-02 15:04:05")},
		{"Job Titles", strings.Join(meta.JobTitles, ", ")},
		{"Locations", strings.Join(meta.Locations, ", ")},
		{"Industry", orDefault(meta.Industry, "All Industries")},
		{"Company Size", orDefault(meta.CompanySize, "Any")},
		{"Profiles Requested", fmt.Sprintf("%d", meta.Requested)},
		{"", ""},
		{"Total Profiles Found", fmt.Sprintf("%d", stats.TotalProfiles)},
		{"Profiles with Email", fmt.Sprintf("%d", stats.WithEmail)},
		{"Email Discovery Rate", stats.EmailRate()},
		{"Unique Companies", fmt.Sprintf("%d", stats.UniqueCompanies)},
		{"Unique Locations", fmt.Sprintf("%d", stats.UniqueLocations)},
		{"", ""},
		{"Top Companies", joinCounts(stats.TopCompanies)},
		{"Top Locations", joinCounts(stats.TopLocations)},
	}

	for i, row := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(summarySheet, labelCell, row[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, valueCell, row[1]); err != nil {
			return err
		}
		if row[0] != "" {
			if err := f.SetCellStyle(summarySheet, labelCell, labelCell, labelStyle); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 25); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 60)
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	out := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		out = append(out, excelize.Border{Type: s, Style: 1, Color: "000000"})
	}
	return out
}

func joinCounts(values []CountedValue) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%s (%d)", v.Value, v.Count))
	}
	return strings.Join(parts, ", ")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
