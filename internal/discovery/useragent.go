package discovery

import (
	"math/rand"
	"time"
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// randomUserAgent picks a browser identity per request so consecutive
// queries do not share an obvious fingerprint.
func randomUserAgent() string {
	return userAgents[rand.Intn(len(userAgents))]
}

// Throttle inserts a bounded random pause after every outbound request.
// It is shared across the engines of a run so a raised stop flag skips
// all pending sleeps at once.
type Throttle struct {
	Min, Max time.Duration
	Stopped  func() bool
}

func (t *Throttle) Wait() {
	if t == nil || t.Min <= 0 {
		return
	}
	if t.Stopped != nil && t.Stopped() {
		return
	}
	d := t.Min
	if t.Max > t.Min {
		d += time.Duration(rand.Int63n(int64(t.Max - t.Min)))
	}
	time.Sleep(d)
}
