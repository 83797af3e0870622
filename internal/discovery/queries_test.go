package discovery_test

import (
	"strings"
	"testing"

	"leadsprinter/internal/discovery"
)

func TestBuildQueryVariants_CountAndContent(t *testing.T) {
	variants := discovery.BuildQueryVariants("Marketing Manager", "Dublin")
	if len(variants) < 4 || len(variants) > 6 {
		t.Fatalf("got %d variants, want between 4 and 6", len(variants))
	}
	for _, v := range variants {
		if !strings.Contains(v, "Marketing Manager") {
			t.Errorf("variant %q does not mention the job title", v)
		}
		if !strings.Contains(v, "Dublin") {
			t.Errorf("variant %q does not mention the location", v)
		}
		if !strings.Contains(strings.ToLower(v), "linkedin") {
			t.Errorf("variant %q does not target linkedin", v)
		}
	}
}

func TestBuildQueryVariants_MostSelectiveFirst(t *testing.T) {
	variants := discovery.BuildQueryVariants("Engineer", "Cork")
	first := variants[0]
	if !strings.HasPrefix(first, "site:linkedin.com/in/") {
		t.Errorf("first variant %q should carry the site filter", first)
	}
	if !strings.Contains(first, `"Engineer Cork"`) {
		t.Errorf("first variant %q should quote the full phrase", first)
	}
	last := variants[len(variants)-1]
	if strings.Contains(last, "site:") {
		t.Errorf("last variant %q should be the broadest, without a site filter", last)
	}
}

func TestBuildQueryVariants_Deterministic(t *testing.T) {
	a := discovery.BuildQueryVariants("CTO", "Galway")
	b := discovery.BuildQueryVariants("CTO", "Galway")
	if len(a) != len(b) {
		t.Fatalf("variant counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("variant %d differs across calls: %q vs %q", i, a[i], b[i])
		}
	}
}
