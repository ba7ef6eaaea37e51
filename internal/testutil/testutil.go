// Package testutil provides common testing utilities shared across the
// engine's test files: standard test datasets and dataset assertions.
package testutil

import (
	"testing"

	"github.com/scourdata/scour/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultRowCount = 4

// TestDatasetOption configures test dataset creation.
type TestDatasetOption func(*testDatasetConfig)

type testDatasetConfig struct {
	includeNulls bool
	rowCount     int
}

// WithNulls punches missing values into the name and salary columns.
func WithNulls() TestDatasetOption {
	return func(cfg *testDatasetConfig) {
		cfg.includeNulls = true
	}
}

// WithRowCount sets the number of rows in the test data.
func WithRowCount(count int) TestDatasetOption {
	return func(cfg *testDatasetConfig) {
		cfg.rowCount = count
	}
}

// CreateTestDataset creates a standard employee dataset:
//
//   - name (text): ["Alice", "Bob", "Charlie", "David", ...]
//   - age (integer): [25, 30, 35, 28, ...]
//   - department (text): ["Engineering", "Sales", ...]
//   - salary (integer): [100000, 80000, ...]
//
// With WithNulls, every third name and every fourth salary is missing.
func CreateTestDataset(opts ...TestDatasetOption) *dataset.Dataset {
	cfg := &testDatasetConfig{rowCount: defaultRowCount}
	for _, opt := range opts {
		opt(cfg)
	}

	baseNames := []string{"Alice", "Bob", "Charlie", "David", "Eve", "Frank", "Grace", "Henry"}
	baseAges := []int64{25, 30, 35, 28, 32, 45, 29, 38}
	baseDepts := []string{"Engineering", "Sales", "Engineering", "Marketing", "HR", "Finance", "Engineering", "Sales"}
	baseSalaries := []int64{100000, 80000, 120000, 75000, 90000, 110000, 95000, 85000}

	names := make([]string, cfg.rowCount)
	namesValid := make([]bool, cfg.rowCount)
	ages := make([]int64, cfg.rowCount)
	depts := make([]string, cfg.rowCount)
	salaries := make([]int64, cfg.rowCount)
	salariesValid := make([]bool, cfg.rowCount)

	for i := range names {
		names[i] = baseNames[i%len(baseNames)]
		namesValid[i] = !(cfg.includeNulls && i%3 == 2)
		ages[i] = baseAges[i%len(baseAges)]
		depts[i] = baseDepts[i%len(baseDepts)]
		salaries[i] = baseSalaries[i%len(baseSalaries)]
		salariesValid[i] = !(cfg.includeNulls && i%4 == 3)
	}

	return dataset.New(
		dataset.NewText("name", names, namesValid, nil),
		dataset.NewInt("age", ages, nil, nil),
		dataset.NewText("department", depts, nil, nil),
		dataset.NewInt("salary", salaries, salariesValid, nil),
	)
}

// AssertDatasetShape verifies row and column counts.
func AssertDatasetShape(t *testing.T, ds *dataset.Dataset, rows, cols int) {
	t.Helper()
	require.NotNil(t, ds, "dataset should not be nil")
	assert.Equal(t, rows, ds.Len(), "row count should match")
	assert.Equal(t, cols, ds.Width(), "column count should match")
}

// AssertDatasetHasColumns verifies that a dataset has exactly the
// expected columns, in order.
func AssertDatasetHasColumns(t *testing.T, ds *dataset.Dataset, expected []string) {
	t.Helper()
	require.NotNil(t, ds, "dataset should not be nil")
	assert.Equal(t, expected, ds.Columns())
}

// AssertColumnValues verifies the rendered values of a column, using
// "<null>" for missing cells.
func AssertColumnValues(t *testing.T, ds *dataset.Dataset, name string, expected []string) {
	t.Helper()
	col, ok := ds.Column(name)
	require.True(t, ok, "column %s should exist", name)
	require.Equal(t, len(expected), col.Len(), "column %s length", name)

	actual := make([]string, col.Len())
	for i := 0; i < col.Len(); i++ {
		v, present := col.ValueString(i)
		if !present {
			v = "<null>"
		}
		actual[i] = v
	}
	assert.Equal(t, expected, actual, "column %s values", name)
}
