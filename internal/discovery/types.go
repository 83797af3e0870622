package discovery

import "context"

// Engine identifies which search backend produced a candidate.
type Engine string

const (
	EngineGoogle     Engine = "google"
	EngineDuckDuckGo Engine = "duckduckgo"
	EngineBing       Engine = "bing"
)

// Candidate is one normalized LinkedIn profile URL lifted from a search
// results page, with enough provenance to trace it back.
type Candidate struct {
	URL    string `json:"url"`
	Engine Engine `json:"engine"`
	Query  string `json:"query"`
}

// Searcher is a single search backend. Implementations return at most
// limit candidates, already normalized and deduplicated. Callers treat
// an error and an empty slice the same way: move on to the next engine.
type Searcher interface {
	Name() Engine
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)
}

func asCandidates(urls []string, engine Engine, query string) []Candidate {
	if len(urls) == 0 {
		return nil
	}
	out := make([]Candidate, 0, len(urls))
	for _, u := range urls {
		out = append(out, Candidate{URL: u, Engine: engine, Query: query})
	}
	return out
}
