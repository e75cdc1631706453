package services

import (
	"co2-pax-compare/internal/domain"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Default measure: millions of metric tonnes.
const DefaultMeasureCode = "MLN_TONNE"

const (
	colLocation = "LOCATION"
	colMeasure  = "MEASURE"
	colTime     = "TIME"
	colValue    = "Value"

	// 1-based index into the raw records, carried through filtering for error reporting.
	colRow = "_row"
)

var emissionColumns = []string{
	colLocation, "INDICATOR", "SUBJECT", colMeasure, "FREQUENCY", colTime, colValue, "Flag Codes", colRow,
}

type EmissionOptions struct {
	Measure        string
	ExcludeRegions domain.RegionDenylist
}

func DefaultEmissionOptions() EmissionOptions {
	return EmissionOptions{
		Measure:        DefaultMeasureCode,
		ExcludeRegions: domain.DefaultAggregateRegions,
	}
}

// NormalizeEmissions reduces raw emission rows to one global total per year.
//
// Steps, in order: drop aggregate-region locations, narrow to MEASURE/TIME/Value,
// keep only the configured measure, then sum Value across locations grouped by year.
// A measure code absent from the source fails with *domain.SchemaError instead of
// yielding an empty series. Zero-value options fall back to DefaultEmissionOptions.
func NormalizeEmissions(records []domain.RawEmissionRecord, opts EmissionOptions) (domain.EmissionSeries, error) {
	if opts.Measure == "" {
		opts.Measure = DefaultMeasureCode
	}
	if len(opts.ExcludeRegions) == 0 {
		opts.ExcludeRegions = domain.DefaultAggregateRegions
	}

	if !hasMeasure(records, opts.Measure) {
		return nil, &domain.SchemaError{
			Source:  "emissions",
			Missing: []string{colMeasure + "=" + opts.Measure},
		}
	}

	df := emissionFrame(records)
	if df.Err != nil {
		return nil, fmt.Errorf("normalize emissions: load frame: %w", df.Err)
	}

	df = df.Filter(dataframe.F{
		Colname:    colLocation,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool { return !opts.ExcludeRegions.Matches(el.String()) },
	})
	if err := ensureRows(df, "after excluding aggregate regions"); err != nil {
		return nil, err
	}

	df = df.Select([]string{colMeasure, colTime, colValue, colRow})
	df = df.Filter(dataframe.F{Colname: colMeasure, Comparator: series.Eq, Comparando: opts.Measure})
	if err := ensureRows(df, "after selecting measure "+opts.Measure); err != nil {
		return nil, err
	}

	df, err := typeEmissionColumns(df)
	if err != nil {
		return nil, err
	}

	sumCol := fmt.Sprintf("%s_%v", colValue, dataframe.Aggregation_SUM)
	totals := df.GroupBy(colTime).
		Aggregation([]dataframe.AggregationType{dataframe.Aggregation_SUM}, []string{colValue}).
		Arrange(dataframe.Sort(colTime))
	if totals.Err != nil {
		return nil, fmt.Errorf("normalize emissions: aggregate by %s: %w", colTime, totals.Err)
	}

	years, err := totals.Col(colTime).Int()
	if err != nil {
		return nil, fmt.Errorf("normalize emissions: read grouped years: %w", err)
	}
	sums := totals.Col(sumCol).Float()
	if len(sums) != len(years) {
		return nil, fmt.Errorf("normalize emissions: grouped column %q has %d rows, want %d", sumCol, len(sums), len(years))
	}

	out := make(domain.EmissionSeries, 0, len(years))
	for i, y := range years {
		out = append(out, domain.EmissionPoint{Year: y, TotalEmissionsMlnTonnes: sums[i]})
	}

	return out, nil
}

func hasMeasure(records []domain.RawEmissionRecord, measure string) bool {
	for _, r := range records {
		if r.Measure == measure {
			return true
		}
	}
	return false
}

// emissionFrame loads raw rows as an all-string frame; typing happens after filtering
// so that values in discarded rows never fail the run.
func emissionFrame(records []domain.RawEmissionRecord) dataframe.DataFrame {
	rows := make([][]string, 0, 1+len(records))
	rows = append(rows, emissionColumns)
	for i, r := range records {
		rows = append(rows, []string{
			r.Location, r.Indicator, r.Subject, r.Measure, r.Frequency, r.Time, r.Value, r.FlagCodes,
			strconv.Itoa(i + 1),
		})
	}

	return dataframe.LoadRecords(
		rows,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}

// typeEmissionColumns converts TIME to int years and Value to float64, failing on the first bad cell.
func typeEmissionColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	times := df.Col(colTime).Records()
	values := df.Col(colValue).Records()
	rows := df.Col(colRow).Records()

	row := func(i int) int {
		n, _ := strconv.Atoi(rows[i])
		return n
	}

	years := make([]int, len(times))
	for i, t := range times {
		y, err := domain.ParseYear(t)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				pe.Row = row(i)
			}
			return df, fmt.Errorf("normalize emissions: %w", err)
		}
		years[i] = y
	}

	amounts := make([]float64, len(values))
	for i, v := range values {
		f, err := parseDecimal(v)
		if err != nil {
			return df, &domain.ParseError{Field: colValue, Value: v, Row: row(i), Err: err}
		}
		amounts[i] = f
	}

	df = df.Mutate(series.New(years, series.Int, colTime)).
		Mutate(series.New(amounts, series.Float, colValue))
	if df.Err != nil {
		return df, fmt.Errorf("normalize emissions: type columns: %w", df.Err)
	}
	return df, nil
}

func ensureRows(df dataframe.DataFrame, stage string) error {
	if df.Err != nil {
		return fmt.Errorf("normalize emissions: %s: %w", stage, df.Err)
	}
	if df.Nrow() == 0 {
		return &domain.SchemaError{Source: "emissions", Detail: "no rows left " + stage}
	}
	return nil
}
