package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
)

// DuckDuckGo is the fallback backend. The html.duckduckgo.com endpoint
// serves plain server-rendered results and tolerates automation far
// better than the JS frontend.
type DuckDuckGo struct {
	Client   *http.Client
	Throttle *Throttle

	// Region code for the kl form field, e.g. "ie-en".
	Region string
}

func NewDuckDuckGo(th *Throttle) *DuckDuckGo {
	return &DuckDuckGo{
		Client:   &http.Client{Timeout: requestTimeout},
		Throttle: th,
		Region:   "ie-en",
	}
}

func (d *DuckDuckGo) Name() Engine { return EngineDuckDuckGo }

func (d *DuckDuckGo) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	defer d.Throttle.Wait()

	form := url.Values{
		"q":  {query},
		"kl": {d.Region},
		"s":  {"0"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://html.duckduckgo.com/html/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building duckduckgo request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Referer", "https://duckduckgo.com/")

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching duckduckgo results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading duckduckgo results: %w", err)
	}

	content := string(body)
	if IsBlocked(content, resp.Request.URL.String()) {
		log.Warn("duckduckgo results page looks blocked", "query", query)
		return nil, nil
	}

	links := ExtractProfileLinks(content, limit)
	log.Debug("duckduckgo search done", "query", query, "links", len(links))
	return asCandidates(links, EngineDuckDuckGo, query), nil
}
