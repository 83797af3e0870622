package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
)

// Google is the primary search backend, scraping the regular HTML
// results page.
type Google struct {
	Client   *http.Client
	Throttle *Throttle

	// Locale hints. Irish defaults match the app's home market; both are
	// just ranking hints, not filters.
	HL string
	GL string
}

func NewGoogle(th *Throttle) *Google {
	return &Google{
		Client:   &http.Client{Timeout: requestTimeout},
		Throttle: th,
		HL:       "en",
		GL:       "ie",
	}
}

func (g *Google) Name() Engine { return EngineGoogle }

func (g *Google) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	defer g.Throttle.Wait()

	searchURL := fmt.Sprintf("https://www.google.com/search?q=%s&num=20&hl=%s&gl=%s",
		url.QueryEscape(query), url.QueryEscape(g.HL), url.QueryEscape(g.GL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building google request: %w", err)
	}
	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching google results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading google results: %w", err)
	}

	content := string(body)
	if IsBlocked(content, resp.Request.URL.String()) {
		log.Warn("google results page looks blocked", "query", query)
		return nil, nil
	}

	links := ExtractProfileLinks(content, limit)
	log.Debug("google search done", "query", query, "links", len(links))
	return asCandidates(links, EngineGoogle, query), nil
}
