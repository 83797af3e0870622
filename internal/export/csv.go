package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"leadsprinter/internal/extract"
)

// WriteCSV writes the plain-table export: same columns as the results
// sheet, UTF-8 BOM so spreadsheet apps read accents correctly.
func WriteCSV(path string, profiles []extract.Profile) error {
	if len(profiles) == 0 {
		return errors.New("no profiles to export")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString("\xEF\xBB\xBF"); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(resultColumns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range profiles {
		record := []string{
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
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
