package export

import (
	"fmt"
	"sort"

	"leadsprinter/internal/extract"
)

const topN = 5

// CountedValue is one value with its occurrence count, for top-N lists.
type CountedValue struct {
	Value string
	Count int
}

// Summary aggregates a finished result set for the summary sheet and
// the GUI footer.
type Summary struct {
	TotalProfiles   int
	WithEmail       int
	UniqueCompanies int
	UniqueLocations int
	TopCompanies    []CountedValue
	TopLocations    []CountedValue
}

// EmailRate renders the share of profiles that carry an email, e.g.
// "40.0%".
func (s Summary) EmailRate() string {
	if s.TotalProfiles == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(s.WithEmail)/float64(s.TotalProfiles)*100)
}

// Summarize computes the run statistics over a finalized result set.
func Summarize(profiles []extract.Profile) Summary {
	s := Summary{TotalProfiles: len(profiles)}

	companies := make(map[string]int)
	locations := make(map[string]int)
	for _, p := range profiles {
		if p.Email != "" {
			s.WithEmail++
		}
		companies[p.Company]++
		locations[p.Location]++
	}

	s.UniqueCompanies = len(companies)
	s.UniqueLocations = len(locations)
	s.TopCompanies = topCounts(companies)
	s.TopLocations = topCounts(locations)
	return s
}

// topCounts orders by count descending, value ascending for stable
// output, and keeps the top five.
func topCounts(counts map[string]int) []CountedValue {
	out := make([]CountedValue, 0, len(counts))
	for v, n := range counts {
		out = append(out, CountedValue{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
