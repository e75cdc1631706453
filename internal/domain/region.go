package domain

import "strings"

// Location codes that sum several countries already present as individual rows.
// Keep in sync with the emissions source's region taxonomy.
var DefaultAggregateRegions = RegionDenylist{"EU27_2020", "EU28", "G20", "G7M", "EA19"}

// Fixed set of aggregate-region codes excluded before summing emissions.
type RegionDenylist []string

// Matches reports whether location equals or contains any denylisted code.
func (d RegionDenylist) Matches(location string) bool {
	for _, code := range d {
		if code != "" && strings.Contains(location, code) {
			return true
		}
	}
	return false
}

// ParseRegionDenylist splits a comma-separated list, dropping blanks.
func ParseRegionDenylist(s string) RegionDenylist {
	out := RegionDenylist{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
