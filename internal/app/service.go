package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"leadsprinter/internal/discovery"
	"leadsprinter/internal/extract"
)

// ProgressFunc receives pipeline progress: profiles collected so far,
// the requested total, and a short status line. Consumers must tolerate
// total == 0.
type ProgressFunc func(current, total int, status string)

// ProfileScraper fetches one profile page and turns it into a record.
// A nil record with an error means the candidate is skipped.
type ProfileScraper interface {
	ScrapeProfile(ctx context.Context, profileURL string) (*extract.Profile, error)
}

// SearchRequest is one scraping run as the user described it. Industry
// and CompanySize are accepted and recorded in the export metadata but
// never influence the queries; LinkedIn exposes no public search
// surface for them.
type SearchRequest struct {
	JobTitles   []string `json:"job_titles"`
	Locations   []string `json:"locations"`
	MaxResults  int      `json:"max_results"`
	Industry    string   `json:"industry"`
	CompanySize string   `json:"company_size"`
}

// Runner drives one scraping run: engines in fallback order, one profile
// scraper, one stop flag. Build a fresh Runner per run; nothing in it is
// reusable after Run returns.
type Runner struct {
	Engines       []discovery.Searcher
	Scraper       ProfileScraper
	PerQueryLimit int

	worker *extract.Worker
	stop   atomic.Bool
}

// NewRunner wires the real engines and a freshly started browser.
// Browser startup failure is fatal for the run and surfaces here.
func NewRunner() (*Runner, error) {
	r := &Runner{PerQueryLimit: DefaultPerQueryLimit}

	th := &discovery.Throttle{
		Min:     discovery.DefaultDelayMin,
		Max:     discovery.DefaultDelayMax,
		Stopped: r.Stopped,
	}
	r.Engines = []discovery.Searcher{
		discovery.NewGoogle(th),
		discovery.NewDuckDuckGo(th),
		discovery.NewBing(th),
	}

	worker, err := extract.NewWorker()
	if err != nil {
		return nil, fmt.Errorf("browser setup: %w", err)
	}
	worker.Stopped = r.Stopped
	r.worker = worker
	r.Scraper = worker

	return r, nil
}

// Close releases the browser. Safe to call whether or not Run finished.
func (r *Runner) Close() {
	if r.worker != nil {
		r.worker.Close()
	}
}

// Stop raises the stop flag. The pipeline drains at the next checkpoint
// and keeps everything collected so far. Safe from any goroutine.
func (r *Runner) Stop() { r.stop.Store(true) }

// Stopped reports whether a stop has been requested.
func (r *Runner) Stopped() bool { return r.stop.Load() }

// Run executes the pipeline: job titles crossed with locations, query
// variants per pair in order, engines per variant in fallback order,
// then one profile visit per new candidate until the target is met or
// inputs run out. Zero results is a successful run, not an error.
func (r *Runner) Run(ctx context.Context, req SearchRequest, progress ProgressFunc) ([]extract.Profile, error) {
	if len(req.JobTitles) == 0 {
		return nil, errors.New("at least one job title is required")
	}
	if len(req.Locations) == 0 {
		return nil, errors.New("at least one location is required")
	}
	if progress == nil {
		progress = func(int, int, string) {}
	}

	target := clampMaxResults(req.MaxResults)
	log.Info("run started",
		"titles", len(req.JobTitles), "locations", len(req.Locations), "target", target)

	var results []extract.Profile
	seen := make(map[string]struct{})

pairs:
	for _, jobTitle := range req.JobTitles {
		for _, location := range req.Locations {
			if r.Stopped() || len(results) >= target {
				break pairs
			}
			r.runPair(ctx, jobTitle, location, target, seen, &results, progress)
		}
	}

	results = finalize(results)

	switch {
	case r.Stopped():
		progress(len(results), target, fmt.Sprintf("Stopped. Kept %d profiles", len(results)))
	case len(results) == 0:
		progress(0, target, "No profiles found")
	default:
		progress(len(results), target, fmt.Sprintf("Completed! Found %d unique profiles", len(results)))
	}
	log.Info("run finished", "profiles", len(results), "stopped", r.Stopped())
	return results, nil
}

// runPair works through the query variants for one (title, location)
// pair. The first variant that yields candidates wins; the rest are
// skipped even when the batch is small.
func (r *Runner) runPair(ctx context.Context, jobTitle, location string, target int, seen map[string]struct{}, results *[]extract.Profile, progress ProgressFunc) {
	for _, query := range discovery.BuildQueryVariants(jobTitle, location) {
		if r.Stopped() || len(*results) >= target {
			return
		}
		progress(len(*results), target, "Searching: "+query)

		limit := r.PerQueryLimit
		if remaining := target - len(*results); remaining < limit {
			limit = remaining
		}
		candidates := r.search(ctx, query, limit)
		if len(candidates) == 0 {
			continue
		}

		for i, cand := range candidates {
			if r.Stopped() || len(*results) >= target {
				return
			}
			if _, dup := seen[cand.URL]; dup {
				continue
			}
			progress(len(*results), target,
				fmt.Sprintf("Extracting profile %d/%d", i+1, len(candidates)))

			profile, err := r.Scraper.ScrapeProfile(ctx, cand.URL)
			if err != nil || profile == nil {
				log.Warn("profile fetch failed", "url", cand.URL, "err", err)
				continue
			}
			profile.SearchQuery = cand.Query
			profile.JobTitleSearched = jobTitle
			profile.LocationSearched = location

			seen[cand.URL] = struct{}{}
			*results = append(*results, *profile)
			progress(len(*results), target, "Found: "+profile.Name)
		}
		return
	}
}

// search walks the engine chain and returns the first non-empty batch.
// Engine errors are logged and treated exactly like an empty result.
func (r *Runner) search(ctx context.Context, query string, limit int) []discovery.Candidate {
	for _, engine := range r.Engines {
		if r.Stopped() {
			return nil
		}
		candidates, err := engine.Search(ctx, query, limit)
		if err != nil {
			log.Warn("search failed", "engine", engine.Name(), "query", query, "err", err)
			continue
		}
		if len(candidates) > 0 {
			return candidates
		}
	}
	return nil
}

// finalize is the last pass before export: drop anything without a URL,
// dedupe again on LinkedInURL, stamp ScrapedAt where the scraper left it
// zero.
func finalize(in []extract.Profile) []extract.Profile {
	now := time.Now()
	seen := make(map[string]struct{}, len(in))
	out := make([]extract.Profile, 0, len(in))
	for _, p := range in {
		if p.LinkedInURL == "" {
			continue
		}
		if _, dup := seen[p.LinkedInURL]; dup {
			continue
		}
		seen[p.LinkedInURL] = struct{}{}
		if p.ScrapedAt.IsZero() {
			p.ScrapedAt = now
		}
		out = append(out, p)
	}
	return out
}

func clampMaxResults(n int) int {
	if n <= 0 {
		return DefaultMaxResults
	}
	if n > MaxResultsCap {
		return MaxResultsCap
	}
	return n
}
