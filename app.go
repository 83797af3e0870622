package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"leadsprinter/internal/app"
	"leadsprinter/internal/export"
	"leadsprinter/internal/extract"
)

// App struct
type App struct {
	ctx context.Context

	mu      sync.Mutex
	runner  *app.Runner
	running bool
	results []extract.Profile
	lastReq app.SearchRequest
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Progress is the payload emitted on the "scrape:progress" event.
type Progress struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
	Done    bool   `json:"done"`
}

// Industries returns the filter choices for the form.
func (a *App) Industries() []string {
	return app.Industries
}

// StartScrape launches a run on a background goroutine. Progress arrives
// through "scrape:progress" events; the final event has Done set and the
// results are held until the next run or export.
func (a *App) StartScrape(req app.SearchRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return fmt.Errorf("a scrape is already running")
	}

	runner, err := app.NewRunner()
	if err != nil {
		return fmt.Errorf("starting scrape: %w", err)
	}
	a.runner = runner
	a.running = true
	a.results = nil
	a.lastReq = req

	go func() {
		defer runner.Close()

		progress := func(current, total int, status string) {
			runtime.EventsEmit(a.ctx, "scrape:progress", Progress{
				Current: current, Total: total, Status: status,
			})
		}

		profiles, err := runner.Run(a.ctx, req, progress)

		a.mu.Lock()
		a.results = profiles
		a.running = false
		a.runner = nil
		a.mu.Unlock()

		final := Progress{Current: len(profiles), Total: req.MaxResults, Done: true}
		if err != nil {
			final.Status = "Error: " + err.Error()
		} else {
			final.Status = fmt.Sprintf("Done: %d profiles", len(profiles))
		}
		runtime.EventsEmit(a.ctx, "scrape:progress", final)
	}()

	return nil
}

// StopScrape raises the stop flag; the run drains at its next checkpoint
// and keeps what it collected.
func (a *App) StopScrape() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.runner != nil {
		a.runner.Stop()
	}
}

// IsRunning reports whether a scrape is in flight.
func (a *App) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// GetResults returns the last finished run's profiles.
func (a *App) GetResults() []extract.Profile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.results
}

// GetSummary returns the statistics footer for the last run.
func (a *App) GetSummary() export.Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return export.Summarize(a.results)
}

// SaveExcelExport prompts for a path and writes the formatted workbook.
// Returns "" when the user cancels the dialog.
func (a *App) SaveExcelExport() (string, error) {
	profiles, meta := a.snapshot()
	if len(profiles) == 0 {
		return "", fmt.Errorf("no results to export")
	}

	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		DefaultFilename: export.ResultsFilename(meta.JobTitles[0], "xlsx"),
		Title:           "Save Lead Results",
		Filters: []runtime.FileFilter{
			{DisplayName: "Excel Workbooks (*.xlsx)", Pattern: "*.xlsx"},
		},
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil // User cancelled
	}

	if err := export.WriteExcel(path, profiles, meta); err != nil {
		return "", err
	}
	return path, nil
}

// SaveCSVExport writes the plain-table export.
func (a *App) SaveCSVExport() (string, error) {
	profiles, meta := a.snapshot()
	if len(profiles) == 0 {
		return "", fmt.Errorf("no results to export")
	}

	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		DefaultFilename: export.ResultsFilename(meta.JobTitles[0], "csv"),
		Title:           "Save Lead Results (CSV)",
		Filters: []runtime.FileFilter{
			{DisplayName: "CSV Files (*.csv)", Pattern: "*.csv"},
		},
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil // User cancelled
	}

	if err := export.WriteCSV(path, profiles); err != nil {
		return "", err
	}
	return path, nil
}

// SaveLeadsReport writes the human-readable docx report.
func (a *App) SaveLeadsReport() (string, error) {
	profiles, meta := a.snapshot()
	if len(profiles) == 0 {
		return "", fmt.Errorf("no results to export")
	}

	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		DefaultFilename: export.ResultsFilename(meta.JobTitles[0], "docx"),
		Title:           "Save Leads Report",
		Filters: []runtime.FileFilter{
			{DisplayName: "Word Documents (*.docx)", Pattern: "*.docx"},
		},
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil // User cancelled
	}

	if err := export.WriteReport(path, profiles, meta); err != nil {
		return "", err
	}
	return path, nil
}

func (a *App) snapshot() ([]extract.Profile, export.Metadata) {
	a.mu.Lock()
	defer a.mu.Unlock()

	meta := export.Metadata{
		JobTitles:   a.lastReq.JobTitles,
		Locations:   a.lastReq.Locations,
		Requested:   a.lastReq.MaxResults,
		Industry:    a.lastReq.Industry,
		CompanySize: a.lastReq.CompanySize,
	}
	if len(meta.JobTitles) == 0 {
		meta.JobTitles = []string{"leads"}
	}
	return a.results, meta
}
