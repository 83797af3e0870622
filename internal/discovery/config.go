package discovery

import "time"

const (
	// requestTimeout bounds each search-engine request end to end.
	requestTimeout = 10 * time.Second

	// maxPageBytes caps how much of a results page is read. Real result
	// pages are well under this; challenge interstitials can be huge.
	maxPageBytes = 4 << 20

	// DefaultDelayMin and DefaultDelayMax bound the pause between
	// consecutive search requests.
	DefaultDelayMin = 2 * time.Second
	DefaultDelayMax = 4 * time.Second
)
