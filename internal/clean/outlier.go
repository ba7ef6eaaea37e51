package clean

import (
	"math"

	"github.com/scourdata/scour/internal/dataset"
	"github.com/scourdata/scour/internal/errors"
	"github.com/scourdata/scour/internal/stats"
)

// OutlierMethod selects how numeric extremes are handled. The set is
// closed: an unrecognized value is a configuration error.
type OutlierMethod string

const (
	// MethodIQR removes rows outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR].
	MethodIQR OutlierMethod = "iqr"
	// MethodZScore removes rows more than three standard deviations
	// from the column mean.
	MethodZScore OutlierMethod = "zscore"
	// MethodCap clamps values to the 1st-99th percentile range without
	// removing any rows.
	MethodCap OutlierMethod = "cap"
)

// Validate reports whether the method is a known one.
func (m OutlierMethod) Validate() error {
	switch m {
	case MethodIQR, MethodZScore, MethodCap:
		return nil
	default:
		return errors.NewUnknownStrategyError("HandleOutliers", string(m))
	}
}

const (
	iqrFence     = 1.5
	zScoreCutoff = 3.0
	capLowerPct  = 0.01
	capUpperPct  = 0.99
)

// HandleOutliers treats numeric extremes in the given columns with the
// given method. A nil columns slice means all numeric columns, in
// dataset order. Because iqr and zscore remove rows from the whole
// dataset, later columns in the same call operate on the already
// shrunk data; the given column order is preserved.
//
// A named column that no longer exists is skipped (an earlier stage
// may have dropped it); a named column that exists but is not numeric
// is an error. Missing values are never treated as outliers.
func (c *Cleaner) HandleOutliers(columns []string, method OutlierMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if columns == nil {
		columns = c.ds.NumericColumns()
	}

	initialRows := c.ds.Len()

	for _, name := range columns {
		col, ok := c.ds.Column(name)
		if !ok {
			continue
		}
		if !col.Type().IsNumeric() {
			return errors.NewUnsupportedTypeError("HandleOutliers", name, col.Type().String())
		}

		switch method {
		case MethodIQR:
			c.removeOutliersIQR(col)
		case MethodZScore:
			c.removeOutliersZScore(col)
		case MethodCap:
			c.capOutliers(col)
		}
	}

	c.report.RowsRemoved += initialRows - c.ds.Len()
	return nil
}

// removeOutliersIQR removes the rows whose value in col falls outside
// the 1.5*IQR fences around the quartiles.
func (c *Cleaner) removeOutliersIQR(col *dataset.Column) {
	values := col.NonNullNumbers()
	if len(values) == 0 {
		return
	}
	q1 := stats.Quantile(values, 0.25)
	q3 := stats.Quantile(values, 0.75)
	iqr := q3 - q1
	lower := q1 - iqrFence*iqr
	upper := q3 + iqrFence*iqr

	removed := c.removeOutside(col, func(v float64) bool {
		return v >= lower && v <= upper
	})
	if removed > 0 {
		c.report.logf("Removed %d outliers from '%s' (IQR method)", removed, col.Name())
	}
}

// removeOutliersZScore removes the rows whose value in col lies more
// than zScoreCutoff sample standard deviations from the mean. A
// zero-variance column has no outliers: every value is the mean, so
// all rows are kept.
func (c *Cleaner) removeOutliersZScore(col *dataset.Column) {
	values := col.NonNullNumbers()
	if len(values) == 0 {
		return
	}
	mean := stats.Mean(values)
	std := stats.StdDev(values)
	if std == 0 {
		return
	}

	removed := c.removeOutside(col, func(v float64) bool {
		return math.Abs(v-mean)/std <= zScoreCutoff
	})
	if removed > 0 {
		c.report.logf("Removed %d outliers from '%s' (Z-score method)", removed, col.Name())
	}
}

// removeOutside drops from the whole dataset every row whose value in
// col fails the within predicate. Rows where col is missing are kept.
func (c *Cleaner) removeOutside(col *dataset.Column, within func(float64) bool) int {
	rows := c.ds.Len()
	keep := make([]bool, rows)
	removed := 0
	for i := 0; i < rows; i++ {
		if col.IsNull(i) || within(col.Number(i)) {
			keep[i] = true
		} else {
			removed++
		}
	}
	if removed > 0 {
		c.ds.FilterRows(keep)
	}
	return removed
}

// capOutliers clamps the values of col to its 1st and 99th
// percentiles. Rows are never removed; only out-of-range values in
// this column change. An Integer column is promoted to Float when a
// bound is fractional, so clamped values are exact.
func (c *Cleaner) capOutliers(col *dataset.Column) {
	values := col.NonNullNumbers()
	if len(values) == 0 {
		return
	}
	lower := stats.Quantile(values, capLowerPct)
	upper := stats.Quantile(values, capUpperPct)

	capped := 0
	for _, v := range values {
		if v < lower || v > upper {
			capped++
		}
	}
	if capped == 0 {
		return
	}

	clamped := clampColumn(col, lower, upper)
	c.ds.SetColumn(clamped)
	c.report.logf("Capped %d values in '%s' to 1st-99th percentile", capped, col.Name())
}

func clampColumn(col *dataset.Column, lower, upper float64) *dataset.Column {
	integral := col.Type() == dataset.Integer &&
		lower == math.Trunc(lower) && upper == math.Trunc(upper)

	if integral {
		values := make([]int64, col.Len())
		valid := make([]bool, col.Len())
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				continue
			}
			values[i] = int64(math.Min(math.Max(float64(col.Int(i)), lower), upper))
			valid[i] = true
		}
		return dataset.NewInt(col.Name(), values, valid, nil)
	}

	values := make([]float64, col.Len())
	valid := make([]bool, col.Len())
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		values[i] = math.Min(math.Max(col.Number(i), lower), upper)
		valid[i] = true
	}
	return dataset.NewFloat(col.Name(), values, valid, nil)
}
