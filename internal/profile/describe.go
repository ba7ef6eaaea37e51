package profile

import (
	"github.com/scourdata/scour/internal/dataset"
	"github.com/scourdata/scour/internal/stats"
)

// NumericSummary holds descriptive statistics for one numeric column,
// computed over the present (non-missing) values only.
type NumericSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"25%"`
	Median float64 `json:"50%"`
	Q75    float64 `json:"75%"`
	Max    float64 `json:"max"`
}

// Describe computes summary statistics for every numeric column. The
// result is empty when the dataset has no numeric columns; a numeric
// column with no present values yields a zero summary with Count 0.
func Describe(ds *dataset.Dataset) map[string]NumericSummary {
	summaries := make(map[string]NumericSummary)
	for _, name := range ds.NumericColumns() {
		col, _ := ds.Column(name)
		values := col.NonNullNumbers()
		if len(values) == 0 {
			summaries[name] = NumericSummary{}
			continue
		}
		summaries[name] = NumericSummary{
			Count:  len(values),
			Mean:   stats.Mean(values),
			Std:    stats.StdDev(values),
			Min:    stats.Quantile(values, 0),
			Q25:    stats.Quantile(values, 0.25),
			Median: stats.Median(values),
			Q75:    stats.Quantile(values, 0.75),
			Max:    stats.Quantile(values, 1),
		}
	}
	return summaries
}
