package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourdata/scour/internal/testutil"
)

func TestNewCleanerDefensiveCopy(t *testing.T) {
	ds := testutil.CreateTestDataset(testutil.WithNulls())
	defer ds.Release()

	c := NewCleaner(ds)
	require.NoError(t, c.HandleMissing(StrategyDropRows))

	assert.Less(t, c.Dataset().Len(), ds.Len())
	testutil.AssertDatasetShape(t, ds, 4, 4)

	r := c.Report()
	assert.Equal(t, 4, r.OriginalRows)
	assert.Equal(t, 4, r.OriginalCols)
}

func TestCleanerEmployeeData(t *testing.T) {
	ds := testutil.CreateTestDataset(testutil.WithNulls(), testutil.WithRowCount(8))
	defer ds.Release()

	c := NewCleaner(ds)
	c.StandardizeNames()
	c.ConvertTypes()
	c.RemoveDuplicates()
	require.NoError(t, c.HandleMissing(StrategyAuto))
	c.Finalize()

	got := c.Dataset()
	testutil.AssertDatasetShape(t, got, 8, 4)
	testutil.AssertDatasetHasColumns(t, got, []string{"name", "age", "department", "salary"})

	// Median of the six present salaries is 97500; missing names take
	// the mode, which ties and resolves to the smallest.
	testutil.AssertColumnValues(t, got, "salary", []string{
		"100000", "80000", "120000", "97500", "90000", "110000", "95000", "97500",
	})
	name, _ := got.Column("name")
	assert.Equal(t, 0, name.NullCount())
	assert.Equal(t, "Alice", name.Str(2))

	assert.Equal(t, 4, c.Report().MissingHandled)
	assert.Equal(t, 0, c.Report().TotalRowsRemoved)
}
