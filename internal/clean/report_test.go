package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scourdata/scour/internal/dataset"
)

func newFinalizeFixture() *dataset.Dataset {
	return dataset.New(
		dataset.NewInt("n", []int64{1, 1, 2}, nil, nil),
	)
}

func TestReportLogf(t *testing.T) {
	r := &Report{}
	r.logf("Removed %d duplicate rows", 3)
	r.logf("Filled %s with mode ('%s')", "dept", "Sales")

	assert.Equal(t, []string{
		"Removed 3 duplicate rows",
		"Filled dept with mode ('Sales')",
	}, r.Actions)
}

func TestReportSummary(t *testing.T) {
	r := &Report{
		OriginalRows:        100,
		OriginalCols:        5,
		Actions:             []string{"Removed 2 duplicate rows", "Filled age with median (31)"},
		RowsRemoved:         2,
		MissingHandled:      4,
		FinalRows:           98,
		FinalCols:           5,
		TotalRowsRemoved:    2,
		TotalColumnsRemoved: 0,
	}

	summary := r.Summary()

	assert.Contains(t, summary, "📊 Original Data: 100 rows × 5 columns")
	assert.Contains(t, summary, "📊 Cleaned Data: 98 rows × 5 columns")
	assert.Contains(t, summary, "✅ Actions Performed: 2")
	assert.Contains(t, summary, "  • Removed 2 duplicate rows")
	assert.Contains(t, summary, "  • Filled age with median (31)")
	assert.Contains(t, summary, "🗑️ Total Rows Removed: 2")
	assert.Contains(t, summary, "🗑️ Total Columns Removed: 0")
	assert.Contains(t, summary, "✨ Missing Values Handled: 4")

	// Actions appear in run order.
	first := strings.Index(summary, "Removed 2 duplicate rows")
	second := strings.Index(summary, "Filled age with median (31)")
	assert.Less(t, first, second)
}

func TestCleanerFinalize(t *testing.T) {
	ds := newFinalizeFixture()
	defer ds.Release()

	c := NewCleaner(ds)
	c.RemoveDuplicates()
	c.Finalize()

	r := c.Report()
	assert.Equal(t, 3, r.OriginalRows)
	assert.Equal(t, 2, r.FinalRows)
	assert.Equal(t, 1, r.TotalRowsRemoved)
	assert.Equal(t, 0, r.TotalColumnsRemoved)
}
