package clean

import (
	"strconv"
	"time"

	"github.com/scourdata/scour/internal/dataset"
	"github.com/scourdata/scour/internal/errors"
	"github.com/scourdata/scour/internal/stats"
)

// MissingStrategy selects how missing cells are resolved. The set is
// closed: an unrecognized value is a configuration error.
type MissingStrategy string

const (
	// StrategyAuto drops columns over the drop threshold and imputes
	// the rest: median for numeric columns, mode for the others.
	StrategyAuto MissingStrategy = "auto"
	// StrategyDropRows removes every row containing a missing cell.
	StrategyDropRows MissingStrategy = "drop_rows"
	// StrategyDropCols drops every column with more than half of its
	// values missing.
	StrategyDropCols MissingStrategy = "drop_cols"
	// StrategyFillMean fills numeric columns with the column mean.
	StrategyFillMean MissingStrategy = "fill_mean"
	// StrategyFillMedian fills numeric columns with the column median.
	StrategyFillMedian MissingStrategy = "fill_median"
	// StrategyFillMode fills non-numeric columns with the column mode.
	StrategyFillMode MissingStrategy = "fill_mode"
)

// Validate reports whether the strategy is a known one.
func (s MissingStrategy) Validate() error {
	switch s {
	case StrategyAuto, StrategyDropRows, StrategyDropCols,
		StrategyFillMean, StrategyFillMedian, StrategyFillMode:
		return nil
	default:
		return errors.NewUnknownStrategyError("HandleMissing", string(s))
	}
}

const (
	// autoDropPct is the missingness percentage above which the auto
	// strategy drops a column instead of imputing it. A column at
	// exactly this percentage is imputed.
	autoDropPct = 70.0
	// dropColsPct is the distinct threshold used by the drop_cols
	// strategy. The two thresholds are both load-bearing; do not unify.
	dropColsPct = 50.0
	// modeFallback fills a column that has no present value at all.
	modeFallback = "Unknown"
)

// HandleMissing resolves missing cells with the given strategy.
// Whatever the strategy did, the report's missing-cell counter grows
// by the true before/after delta over the whole dataset, so dropped
// columns count toward cells resolved just like fills do.
func (c *Cleaner) HandleMissing(strategy MissingStrategy) error {
	if err := strategy.Validate(); err != nil {
		return err
	}

	before := c.ds.MissingCells()

	switch strategy {
	case StrategyAuto:
		c.missingAuto()
	case StrategyDropRows:
		c.missingDropRows()
	case StrategyDropCols:
		c.missingDropCols()
	case StrategyFillMean:
		c.fillNumeric(stats.Mean, "mean")
	case StrategyFillMedian:
		c.fillNumeric(stats.Median, "median")
	case StrategyFillMode:
		c.fillModeAll()
	}

	c.report.MissingHandled += before - c.ds.MissingCells()
	return nil
}

// missingAuto decides per column: drop when missingness exceeds
// autoDropPct, impute when any cells are missing, leave untouched
// otherwise. Percentages are computed against the row count at the
// start of the pass, and columns are processed independently.
func (c *Cleaner) missingAuto() {
	rows := c.ds.Len()
	if rows == 0 {
		return
	}
	for _, name := range c.ds.Columns() {
		col, _ := c.ds.Column(name)
		pct := float64(col.NullCount()) / float64(rows) * 100

		if pct > autoDropPct {
			c.ds.DropColumn(name)
			c.report.ColumnsDropped++
			c.report.logf("Dropped column '%s' (%.1f%% missing)", name, pct)
			continue
		}
		if pct == 0 {
			continue
		}
		if col.Type().IsNumeric() {
			c.fillColumnNumeric(col, stats.Median, "median")
		} else {
			c.fillColumnMode(col)
		}
	}
}

func (c *Cleaner) missingDropRows() {
	rows := c.ds.Len()
	keep := make([]bool, rows)
	removed := 0
	for i := 0; i < rows; i++ {
		keep[i] = true
		for j := 0; j < c.ds.Width(); j++ {
			if c.ds.ColumnAt(j).IsNull(i) {
				keep[i] = false
				removed++
				break
			}
		}
	}
	c.ds.FilterRows(keep)
	c.report.RowsRemoved += removed
	c.report.logf("Removed %d rows with missing values", removed)
}

func (c *Cleaner) missingDropCols() {
	rows := c.ds.Len()
	if rows == 0 {
		return
	}
	for _, name := range c.ds.Columns() {
		col, _ := c.ds.Column(name)
		pct := float64(col.NullCount()) / float64(rows) * 100
		if pct > dropColsPct {
			c.ds.DropColumn(name)
			c.report.ColumnsDropped++
			c.report.logf("Dropped column '%s' (%.1f%% missing)", name, pct)
		}
	}
}

// fillNumeric fills every numeric column that has missing cells with
// the given statistic of its present values.
func (c *Cleaner) fillNumeric(stat func([]float64) float64, statName string) {
	for _, name := range c.ds.NumericColumns() {
		col, _ := c.ds.Column(name)
		if col.NullCount() == 0 || col.NullCount() == col.Len() {
			continue
		}
		c.fillColumnNumeric(col, stat, statName)
	}
}

// fillColumnNumeric fills one numeric column. An Integer column is
// promoted to Float when the fill value is fractional, so the fill is
// always exact.
func (c *Cleaner) fillColumnNumeric(col *dataset.Column, stat func([]float64) float64, statName string) {
	value := stat(col.NonNullNumbers())
	filled := col
	if col.Type() == dataset.Integer {
		if value == float64(int64(value)) {
			filled = col.FillNullInt(int64(value))
		} else {
			filled = col.AsFloat().FillNullFloat(value)
		}
	} else {
		filled = col.FillNullFloat(value)
	}
	c.ds.SetColumn(filled)
	c.report.logf("Filled %s with %s (%s)", col.Name(), statName,
		strconv.FormatFloat(value, 'g', -1, 64))
}

// fillModeAll fills every non-numeric column that has missing cells
// with its mode.
func (c *Cleaner) fillModeAll() {
	for _, name := range c.ds.Columns() {
		col, _ := c.ds.Column(name)
		if col.Type().IsNumeric() || col.NullCount() == 0 {
			continue
		}
		c.fillColumnMode(col)
	}
}

// fillColumnMode fills one non-numeric column with its most frequent
// present value, falling back to the literal placeholder when the
// column has no present values at all. Ties break toward the smaller
// value, so repeated runs pick the same fill.
func (c *Cleaner) fillColumnMode(col *dataset.Column) {
	var filled *dataset.Column
	var rendered string

	switch col.Type() {
	case dataset.Boolean:
		trues, falses := 0, 0
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				continue
			}
			if col.Bool(i) {
				trues++
			} else {
				falses++
			}
		}
		if trues == 0 && falses == 0 {
			filled = col.FillNullText(modeFallback)
			rendered = modeFallback
		} else {
			mode := trues > falses
			filled = col.FillNullBool(mode)
			rendered = strconv.FormatBool(mode)
		}
	case dataset.DateTime:
		var nanos []int64
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				nanos = append(nanos, col.Time(i).UnixNano())
			}
		}
		if mode, ok := stats.Mode(nanos); ok {
			t := time.Unix(0, mode).UTC()
			filled = col.FillNullTime(t)
			rendered = t.Format(time.RFC3339)
		} else {
			filled = col.FillNullText(modeFallback)
			rendered = modeFallback
		}
	default:
		var values []string
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				values = append(values, col.Str(i))
			}
		}
		mode, ok := stats.Mode(values)
		if !ok {
			mode = modeFallback
		}
		filled = col.FillNullText(mode)
		rendered = mode
	}

	c.ds.SetColumn(filled)
	c.report.logf("Filled %s with mode ('%s')", col.Name(), rendered)
}
