package domain

// Total passengers (billions) for a single year.
type PassengerPoint struct {
	Year            int
	TotalPassengers float64
}

// Ordered passenger totals, one entry per year, in source order.
type PassengerSeries []PassengerPoint

// Years returns the years of the series in order.
func (s PassengerSeries) Years() []int {
	out := make([]int, 0, len(s))
	for _, p := range s {
		out = append(out, p.Year)
	}
	return out
}

// Global emissions (millions of tonnes) summed across locations for a single year.
type EmissionPoint struct {
	Year                    int
	TotalEmissionsMlnTonnes float64
}

// Ordered emission totals, one entry per year, years ascending.
type EmissionSeries []EmissionPoint

func (s EmissionSeries) Years() []int {
	out := make([]int, 0, len(s))
	for _, p := range s {
		out = append(out, p.Year)
	}
	return out
}

// A single aligned year of the comparison.
// Year is a categorical label of digits only; CO2 is in gigatonnes and PAX in billions,
// both rounded to 3 decimal places.
type ComparisonRow struct {
	Year string
	CO2  float64
	PAX  float64
}

// The aligned two-series table consumed by a renderer.
// Rows are ascending by year and are never mutated after construction.
type ComparisonTable []ComparisonRow

func (t ComparisonTable) Labels() []string {
	out := make([]string, 0, len(t))
	for _, r := range t {
		out = append(out, r.Year)
	}
	return out
}

func (t ComparisonTable) CO2() []float64 {
	out := make([]float64, 0, len(t))
	for _, r := range t {
		out = append(out, r.CO2)
	}
	return out
}

func (t ComparisonTable) PAX() []float64 {
	out := make([]float64, 0, len(t))
	for _, r := range t {
		out = append(out, r.PAX)
	}
	return out
}
