package dto

type ComparisonRowResponse struct {
	Year string  `json:"year"`
	CO2  float64 `json:"co2_gt"`
	PAX  float64 `json:"pax_bn"`
}

type ComparisonResponse struct {
	RunID string                  `json:"run_id,omitempty"`
	Rows  []ComparisonRowResponse `json:"rows"`
}
