// Package profile computes data quality reports and numeric summaries
// for datasets. Profiling is read-only: it never mutates the dataset
// and can run before or after cleaning.
package profile

import (
	"fmt"
	"math"

	"github.com/scourdata/scour/internal/dataset"
)

// Category is the semantic classification of a column, derived from
// its current type tag. A Text column coerced to numeric by the
// cleaning pipeline profiles as Numeric afterwards.
type Category int

const (
	Numeric Category = iota
	Categorical
	Temporal
)

// String returns the report name of the category.
func (c Category) String() string {
	switch c {
	case Numeric:
		return "numeric"
	case Temporal:
		return "temporal"
	default:
		return "categorical"
	}
}

// ColumnProfile is the per-column slice of a quality report.
type ColumnProfile struct {
	MissingCount int      `json:"count"`
	MissingPct   float64  `json:"percentage"`
	Category     Category `json:"-"`
}

// QualityReport describes the quality of a dataset: shape, missing
// values, duplicates, type distribution, and flagged issues.
type QualityReport struct {
	Rows               int                      `json:"rows"`
	Cols               int                      `json:"columns"`
	TotalCells         int                      `json:"total_cells"`
	Missing            map[string]ColumnProfile `json:"missing_values"`
	DuplicateRows      int                      `json:"duplicate_rows"`
	DataTypes          map[string]string        `json:"data_types"`
	NumericColumns     []string                 `json:"numeric_columns"`
	CategoricalColumns []string                 `json:"categorical_columns"`
	DateColumns        []string                 `json:"date_columns"`
	Issues             []string                 `json:"issues"`
}

// highMissingPct is the flagging threshold for the quality report. It
// is deliberately distinct from the cleaning thresholds in the clean
// package.
const highMissingPct = 50.0

// Categorize maps a column type to its semantic category.
func Categorize(t dataset.Type) Category {
	switch {
	case t.IsNumeric():
		return Numeric
	case t == dataset.DateTime:
		return Temporal
	default:
		return Categorical
	}
}

// Profile generates a quality report for the dataset. It is pure: the
// dataset is not modified and repeated calls return equal reports.
func Profile(ds *dataset.Dataset) *QualityReport {
	rows := ds.Len()
	report := &QualityReport{
		Rows:               rows,
		Cols:               ds.Width(),
		TotalCells:         rows * ds.Width(),
		Missing:            make(map[string]ColumnProfile, ds.Width()),
		DataTypes:          make(map[string]string, ds.Width()),
		NumericColumns:     []string{},
		CategoricalColumns: []string{},
		DateColumns:        []string{},
		Issues:             []string{},
	}

	for i := 0; i < ds.Width(); i++ {
		col := ds.ColumnAt(i)
		missing := col.NullCount()
		pct := 0.0
		if rows > 0 {
			pct = float64(missing) / float64(rows) * 100
		}
		category := Categorize(col.Type())
		report.Missing[col.Name()] = ColumnProfile{
			MissingCount: missing,
			MissingPct:   round2(pct),
			Category:     category,
		}
		if pct > highMissingPct {
			report.Issues = append(report.Issues, fmt.Sprintf("%s: %.1f%% missing (High!)", col.Name(), pct))
		}

		report.DataTypes[col.Name()] = col.Type().String()
		switch category {
		case Numeric:
			report.NumericColumns = append(report.NumericColumns, col.Name())
		case Temporal:
			report.DateColumns = append(report.DateColumns, col.Name())
		case Categorical:
			report.CategoricalColumns = append(report.CategoricalColumns, col.Name())
		}
	}

	report.DuplicateRows = countDuplicates(ds)
	if report.DuplicateRows > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf("Found %d duplicate rows", report.DuplicateRows))
	}

	return report
}

// countDuplicates counts rows that structurally duplicate an earlier
// row. Hash buckets narrow the candidates; exact comparison confirms.
func countDuplicates(ds *dataset.Dataset) int {
	if ds.Len() == 0 || ds.Width() == 0 {
		return 0
	}
	seen := make(map[uint64][]int, ds.Len())
	duplicates := 0
	for i := 0; i < ds.Len(); i++ {
		key := ds.RowKey(i)
		dup := false
		for _, j := range seen[key] {
			if ds.RowEquals(i, j) {
				dup = true
				break
			}
		}
		if dup {
			duplicates++
			continue
		}
		seen[key] = append(seen[key], i)
	}
	return duplicates
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
