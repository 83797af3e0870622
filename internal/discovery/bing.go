package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/mmcdole/gofeed"
)

// Bing is the tertiary backend. Bing still serves classic web results as
// RSS, which sidesteps HTML scraping entirely: each feed item link is a
// result URL we can push straight through the normalizer.
type Bing struct {
	Client   *http.Client
	Parser   *gofeed.Parser
	Throttle *Throttle

	// Market code for the mkt parameter, e.g. "en-IE".
	Market string
}

func NewBing(th *Throttle) *Bing {
	return &Bing{
		Client:   &http.Client{Timeout: requestTimeout},
		Parser:   gofeed.NewParser(),
		Throttle: th,
		Market:   "en-IE",
	}
}

func (b *Bing) Name() Engine { return EngineBing }

func (b *Bing) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	defer b.Throttle.Wait()

	feedURL := fmt.Sprintf("https://www.bing.com/search?q=%s&format=rss&count=20&mkt=%s",
		url.QueryEscape(query), url.QueryEscape(b.Market))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building bing request: %w", err)
	}
	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := b.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching bing results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bing returned status %d", resp.StatusCode)
	}

	feed, err := b.Parser.Parse(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing bing feed: %w", err)
	}

	var raw []string
	for _, item := range feed.Items {
		raw = append(raw, item.Link)
	}
	links := normalizeLinks(raw, limit)
	log.Debug("bing search done", "query", query, "items", len(feed.Items), "links", len(links))
	return asCandidates(links, EngineBing, query), nil
}
