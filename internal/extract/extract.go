package extract

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/chromedp"
)

const (
	// profileTimeout bounds a single profile visit: navigation, render
	// and HTML capture together.
	profileTimeout = 10 * time.Second

	// Delay bounds between consecutive profile visits. Wider than the
	// search delay: profile pages are the part LinkedIn watches.
	delayMin = 2 * time.Second
	delayMax = 5 * time.Second
)

// Profile is one scraped lead. Text fields carry the NotAvailable
// sentinel when the page did not yield them; Email is the exception and
// stays empty when absent.
type Profile struct {
	Name             string    `json:"name"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	LinkedInURL      string    `json:"linkedin_url"`
	Email            string    `json:"email,omitempty"`
	SearchQuery      string    `json:"search_query"`
	JobTitleSearched string    `json:"job_title_searched"`
	LocationSearched string    `json:"location_searched"`
	ScrapedAt        time.Time `json:"scraped_at"`
}

// NotAvailable marks a field the profile page did not yield.
const NotAvailable = "N/A"

// Worker owns one headless Chrome for the lifetime of a run and opens a
// short-lived tab per profile. Not safe for concurrent use; the pipeline
// visits profiles one at a time.
type Worker struct {
	browserCtx context.Context
	cancels    []context.CancelFunc

	// Stopped, when set, lets a raised stop flag skip the pause between
	// visits.
	Stopped func() bool
}

// NewWorker starts the browser. Failure here is fatal for the run, so it
// surfaces immediately instead of on the first profile.
func NewWorker() (*Worker, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("starting headless browser: %w", err)
	}

	return &Worker{
		browserCtx: browserCtx,
		cancels:    []context.CancelFunc{browserCancel, allocCancel},
	}, nil
}

// Close tears the browser down. Safe on every exit path, including after
// a failed run.
func (w *Worker) Close() {
	for _, cancel := range w.cancels {
		cancel()
	}
}

// ScrapeProfile visits one profile URL in a fresh tab, captures the
// rendered HTML and parses the lead fields out of it. A navigation or
// timeout failure returns an error and no record; the caller skips the
// candidate.
func (w *Worker) ScrapeProfile(ctx context.Context, profileURL string) (*Profile, error) {
	defer w.pause()

	tabCtx, cancelTab := chromedp.NewContext(w.browserCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, profileTimeout)
	defer cancelTimeout()

	// Honor caller cancellation on top of the per-visit timeout.
	go func() {
		select {
		case <-ctx.Done():
			cancelTimeout()
		case <-tabCtx.Done():
		}
	}()

	var pageHTML string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(profileURL),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &pageHTML),
	)
	if err != nil {
		return nil, fmt.Errorf("visiting %s: %w", profileURL, err)
	}

	p := ParseProfile(pageHTML, profileURL)
	log.Debug("profile scraped", "url", profileURL, "name", p.Name, "email", p.Email != "")
	return p, nil
}

func (w *Worker) pause() {
	if w.Stopped != nil && w.Stopped() {
		return
	}
	d := delayMin + time.Duration(rand.Int63n(int64(delayMax-delayMin)))
	time.Sleep(d)
}
