// Package scour provides automated quality assessment and cleaning for
// tabular datasets. This package is the sole public API of the engine.
//
// A Dataset is profiled with Profile and cleaned with AutoClean, which
// runs a fixed, auditable sequence of corrective transforms and returns
// both the cleaned data and a replayable report of every action taken.
package scour

import (
	"io"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/scourdata/scour/internal/clean"
	"github.com/scourdata/scour/internal/config"
	"github.com/scourdata/scour/internal/dataset"
	"github.com/scourdata/scour/internal/ingest"
	scourio "github.com/scourdata/scour/internal/io"
	"github.com/scourdata/scour/internal/profile"
	"github.com/scourdata/scour/internal/validation"
)

// ColumnType identifies the logical type of a column.
type ColumnType = dataset.Type

// Column type tags.
const (
	Integer  = dataset.Integer
	Float    = dataset.Float
	Text     = dataset.Text
	DateTime = dataset.DateTime
	Boolean  = dataset.Boolean
)

// Column is the public type for a typed, nullable column.
// It wraps the internal dataset.Column to hide implementation details.
type Column struct {
	col *dataset.Column
}

// Dataset is the public type for an ordered collection of equally
// sized columns.
type Dataset struct {
	ds *dataset.Dataset
}

// QualityReport describes the quality of a dataset (see Profile).
type QualityReport = profile.QualityReport

// ColumnProfile is the per-column slice of a QualityReport.
type ColumnProfile = profile.ColumnProfile

// NumericSummary holds descriptive statistics for one numeric column.
type NumericSummary = profile.NumericSummary

// CleaningReport is the ordered, auditable record of a cleaning run.
type CleaningReport = clean.Report

// Options holds the per-stage toggles for AutoClean.
type Options = config.Options

// MissingStrategy selects how CleanMissing resolves missing cells.
type MissingStrategy = clean.MissingStrategy

// Missing-value strategies.
const (
	StrategyAuto       = clean.StrategyAuto
	StrategyDropRows   = clean.StrategyDropRows
	StrategyDropCols   = clean.StrategyDropCols
	StrategyFillMean   = clean.StrategyFillMean
	StrategyFillMedian = clean.StrategyFillMedian
	StrategyFillMode   = clean.StrategyFillMode
)

// OutlierMethod selects how CleanOutliers treats numeric extremes.
type OutlierMethod = clean.OutlierMethod

// Outlier methods.
const (
	MethodIQR    = clean.MethodIQR
	MethodZScore = clean.MethodZScore
	MethodCap    = clean.MethodCap
)

// Passage is one row-group rendered for the ingestion collaborator.
type Passage = ingest.Passage

// Column constructors. A nil valid slice means every value is present;
// a nil allocator selects the default Go allocator.

// NewIntColumn creates an Integer column.
func NewIntColumn(name string, values []int64, valid []bool, mem memory.Allocator) Column {
	return Column{col: dataset.NewInt(name, values, valid, mem)}
}

// NewFloatColumn creates a Float column.
func NewFloatColumn(name string, values []float64, valid []bool, mem memory.Allocator) Column {
	return Column{col: dataset.NewFloat(name, values, valid, mem)}
}

// NewTextColumn creates a Text column.
func NewTextColumn(name string, values []string, valid []bool, mem memory.Allocator) Column {
	return Column{col: dataset.NewText(name, values, valid, mem)}
}

// NewTimeColumn creates a DateTime column.
func NewTimeColumn(name string, values []time.Time, valid []bool, mem memory.Allocator) Column {
	return Column{col: dataset.NewTime(name, values, valid, mem)}
}

// NewBoolColumn creates a Boolean column.
func NewBoolColumn(name string, values []bool, valid []bool, mem memory.Allocator) Column {
	return Column{col: dataset.NewBool(name, values, valid, mem)}
}

// Column methods

// Name returns the column name.
func (c Column) Name() string { return c.col.Name() }

// Type returns the column's logical type.
func (c Column) Type() ColumnType { return c.col.Type() }

// Len returns the number of rows, including missing values.
func (c Column) Len() int { return c.col.Len() }

// IsNull reports whether the value at index is missing.
func (c Column) IsNull(index int) bool { return c.col.IsNull(index) }

// NullCount returns the number of missing values.
func (c Column) NullCount() int { return c.col.NullCount() }

// Value renders the value at index as a string; the second return is
// false when the value is missing.
func (c Column) Value(index int) (string, bool) { return c.col.ValueString(index) }

// NewDataset creates a Dataset from columns. All columns must have the
// same length and unique names.
func NewDataset(columns ...Column) (*Dataset, error) {
	cols := make([]*dataset.Column, len(columns))
	names := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = c.col
		names[i] = c.col.Name()
	}

	if err := validation.ValidateUniqueNames("NewDataset", names); err != nil {
		return nil, err
	}
	if len(cols) > 0 {
		expected := cols[0].Len()
		for _, col := range cols[1:] {
			if err := validation.ValidateLength(expected, col.Len(), "NewDataset", col.Name()); err != nil {
				return nil, err
			}
		}
	}

	return &Dataset{ds: dataset.New(cols...)}, nil
}

// Dataset methods

// Columns returns the column names in order.
func (d *Dataset) Columns() []string { return d.ds.Columns() }

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.ds.Len() }

// Width returns the number of columns.
func (d *Dataset) Width() int { return d.ds.Width() }

// HasColumn reports whether the dataset has the given column.
func (d *Dataset) HasColumn(name string) bool { return d.ds.HasColumn(name) }

// Column returns the column with the given name.
func (d *Dataset) Column(name string) (Column, bool) {
	col, ok := d.ds.Column(name)
	if !ok {
		return Column{}, false
	}
	return Column{col: col}, true
}

// NumericColumns returns the names of Integer and Float columns.
func (d *Dataset) NumericColumns() []string { return d.ds.NumericColumns() }

// Clone returns an independent deep copy of the dataset.
func (d *Dataset) Clone() *Dataset { return &Dataset{ds: d.ds.Clone()} }

// String returns a string representation of the dataset schema.
func (d *Dataset) String() string { return d.ds.String() }

// Release frees the memory used by the dataset.
func (d *Dataset) Release() { d.ds.Release() }

// Profiling and cleaning operations

// Profile generates a quality report for the dataset. Profiling is
// read-only and does not require cleaning to have run.
func Profile(d *Dataset) *QualityReport {
	return profile.Profile(d.ds)
}

// Describe computes summary statistics for every numeric column.
func Describe(d *Dataset) map[string]NumericSummary {
	return profile.Describe(d.ds)
}

// DefaultOptions returns the default AutoClean configuration: every
// stage enabled except outlier handling.
func DefaultOptions() Options {
	return config.NewOptions()
}

// LoadOptions reads AutoClean options from a YAML or JSON file.
func LoadOptions(path string) (Options, error) {
	return config.LoadFromFile(path)
}

// AutoClean runs the full cleaning pipeline over a working copy of the
// dataset: name standardization, type coercion, deduplication,
// missing-value resolution, and optional outlier capping. The input
// dataset is never modified.
func AutoClean(d *Dataset, opts Options) (*Dataset, *CleaningReport, error) {
	cleaned, report, err := clean.AutoClean(d.ds, opts)
	if err != nil {
		return nil, nil, err
	}
	return &Dataset{ds: cleaned}, report, nil
}

// CleanMissing resolves missing cells with the given strategy over a
// working copy of the dataset.
func CleanMissing(d *Dataset, strategy MissingStrategy) (*Dataset, *CleaningReport, error) {
	c := clean.NewCleaner(d.ds)
	if err := c.HandleMissing(strategy); err != nil {
		return nil, nil, err
	}
	c.Finalize()
	return &Dataset{ds: c.Dataset()}, c.Report(), nil
}

// CleanOutliers treats numeric extremes with the given method over a
// working copy of the dataset. A nil columns slice means all numeric
// columns.
func CleanOutliers(d *Dataset, columns []string, method OutlierMethod) (*Dataset, *CleaningReport, error) {
	c := clean.NewCleaner(d.ds)
	if err := c.HandleOutliers(columns, method); err != nil {
		return nil, nil, err
	}
	c.Finalize()
	return &Dataset{ds: c.Dataset()}, c.Report(), nil
}

// RenderSummary renders a cleaning report as human-readable text.
func RenderSummary(report *CleaningReport) string {
	return report.Summary()
}

// Passages renders the dataset as row-group passages for the
// downstream ingestion collaborator. maxRows <= 0 selects the default
// group size.
func Passages(d *Dataset, maxRows int) []Passage {
	return ingest.Passages(d.ds, maxRows)
}

// ReadCSV reads a dataset from CSV data with raw type inference.
func ReadCSV(r io.Reader) (*Dataset, error) {
	ds, err := scourio.NewCSVReader(r, scourio.DefaultCSVOptions()).Read()
	if err != nil {
		return nil, err
	}
	return &Dataset{ds: ds}, nil
}

// ReadCSVFile reads a dataset from a CSV file path.
func ReadCSVFile(path string) (*Dataset, error) {
	ds, err := scourio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Dataset{ds: ds}, nil
}

// WriteCSV writes the dataset as CSV.
func WriteCSV(w io.Writer, d *Dataset) error {
	return scourio.NewCSVWriter(w, scourio.DefaultCSVOptions()).Write(d.ds)
}

// WriteCSVFile writes the dataset to a CSV file path.
func WriteCSVFile(path string, d *Dataset) error {
	return scourio.WriteFile(path, d.ds)
}
