package domain

import "testing"

func TestRegionDenylistMatches(t *testing.T) {
	d := DefaultAggregateRegions

	for _, loc := range []string{"EU27_2020", "EU28", "G20", "G7M", "EA19", "OECD_G20"} {
		if !d.Matches(loc) {
			t.Errorf("Matches(%q) = false, want true", loc)
		}
	}

	for _, loc := range []string{"USA", "FRA", "DEU", "G7", ""} {
		if d.Matches(loc) {
			t.Errorf("Matches(%q) = true, want false", loc)
		}
	}
}

func TestParseRegionDenylist(t *testing.T) {
	d := ParseRegionDenylist(" EU28, ,G20 ,")
	if len(d) != 2 || d[0] != "EU28" || d[1] != "G20" {
		t.Fatalf("ParseRegionDenylist = %v, want [EU28 G20]", d)
	}
}
