package clean

import (
	"github.com/scourdata/scour/internal/dataset"
)

// Cleaner owns a working copy of a dataset for the duration of a
// cleaning run. The input dataset is cloned at construction and never
// mutated, so original-versus-final deltas stay computable. A Cleaner
// is single-use and not safe for concurrent use; independent Cleaners
// on independent datasets are.
type Cleaner struct {
	ds     *dataset.Dataset
	report *Report
}

// NewCleaner creates a cleaner over a defensive copy of ds.
func NewCleaner(ds *dataset.Dataset) *Cleaner {
	return &Cleaner{
		ds: ds.Clone(),
		report: &Report{
			OriginalRows: ds.Len(),
			OriginalCols: ds.Width(),
			Actions:      []string{},
		},
	}
}

// Dataset returns the working dataset.
func (c *Cleaner) Dataset() *dataset.Dataset { return c.ds }

// Report returns the report accumulated so far.
func (c *Cleaner) Report() *Report { return c.report }

// Finalize records the final shape and the total removal deltas
// against the original shape. Called once by the pipeline when all
// enabled stages have run.
func (c *Cleaner) Finalize() {
	c.report.FinalRows = c.ds.Len()
	c.report.FinalCols = c.ds.Width()
	c.report.TotalRowsRemoved = c.report.OriginalRows - c.report.FinalRows
	c.report.TotalColumnsRemoved = c.report.OriginalCols - c.report.FinalCols
}
