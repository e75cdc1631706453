package domain

// One row of the local passenger file, kept as raw text.
// Only Year and Total survive normalization.
type RawPassengerRecord struct {
	Year          string
	Total         string
	Domestic      string
	International string
}

// One row of the remote emissions resource, kept as raw text.
// Rows are keyed by (Location, Measure, Time).
type RawEmissionRecord struct {
	Location  string
	Indicator string
	Subject   string
	Measure   string
	Frequency string
	Time      string
	Value     string
	FlagCodes string
}
