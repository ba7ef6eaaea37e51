package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourdata/scour/internal/dataset"
)

func TestProfileShape(t *testing.T) {
	ds := dataset.New(
		dataset.NewText("name", []string{"Alice", "Bob", "", "Dana"}, []bool{true, true, false, true}, nil),
		dataset.NewInt("age", []int64{30, 25, 41, 29}, nil, nil),
		dataset.NewTime("joined", []time.Time{
			time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC),
		}, nil, nil),
	)
	defer ds.Release()

	report := Profile(ds)

	assert.Equal(t, 4, report.Rows)
	assert.Equal(t, 3, report.Cols)
	assert.Equal(t, 12, report.TotalCells)
	assert.Equal(t, 0, report.DuplicateRows)

	assert.Equal(t, []string{"age"}, report.NumericColumns)
	assert.Equal(t, []string{"name"}, report.CategoricalColumns)
	assert.Equal(t, []string{"joined"}, report.DateColumns)

	assert.Equal(t, "text", report.DataTypes["name"])
	assert.Equal(t, "integer", report.DataTypes["age"])
	assert.Equal(t, "datetime", report.DataTypes["joined"])

	name := report.Missing["name"]
	assert.Equal(t, 1, name.MissingCount)
	assert.Equal(t, 25.0, name.MissingPct)
	assert.Equal(t, Categorical, name.Category)
	assert.Equal(t, 0, report.Missing["age"].MissingCount)
}

func TestProfileMissingPctRounding(t *testing.T) {
	// 1 of 3 missing is 33.333...%, stored rounded to two decimals.
	ds := dataset.New(
		dataset.NewInt("v", []int64{1, 0, 3}, []bool{true, false, true}, nil),
	)
	defer ds.Release()

	report := Profile(ds)
	assert.Equal(t, 33.33, report.Missing["v"].MissingPct)
}

func TestProfileHighMissingIssue(t *testing.T) {
	t.Run("above threshold is flagged", func(t *testing.T) {
		ds := dataset.New(
			dataset.NewFloat("sparse", []float64{1, 0, 0, 0}, []bool{true, false, false, false}, nil),
		)
		defer ds.Release()

		report := Profile(ds)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, "sparse: 75.0% missing (High!)", report.Issues[0])
	})

	t.Run("exactly 50 percent is not flagged", func(t *testing.T) {
		ds := dataset.New(
			dataset.NewFloat("half", []float64{1, 0, 3, 0}, []bool{true, false, true, false}, nil),
		)
		defer ds.Release()

		report := Profile(ds)
		assert.Empty(t, report.Issues)
	})
}

func TestProfileDuplicates(t *testing.T) {
	ds := dataset.New(
		dataset.NewText("name", []string{"A", "B", "A", "A"}, nil, nil),
		dataset.NewInt("n", []int64{1, 2, 1, 1}, nil, nil),
	)
	defer ds.Release()

	report := Profile(ds)
	assert.Equal(t, 2, report.DuplicateRows)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, "Found 2 duplicate rows", report.Issues[0])
}

func TestProfileIsPure(t *testing.T) {
	ds := dataset.New(
		dataset.NewInt("n", []int64{1, 1, 2}, nil, nil),
	)
	defer ds.Release()

	first := Profile(ds)
	second := Profile(ds)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, ds.Len())
}

func TestProfileEmptyDataset(t *testing.T) {
	ds := dataset.New()

	report := Profile(ds)
	assert.Equal(t, 0, report.Rows)
	assert.Equal(t, 0, report.Cols)
	assert.Equal(t, 0, report.TotalCells)
	assert.Equal(t, 0, report.DuplicateRows)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Missing)
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, Numeric, Categorize(dataset.Integer))
	assert.Equal(t, Numeric, Categorize(dataset.Float))
	assert.Equal(t, Temporal, Categorize(dataset.DateTime))
	assert.Equal(t, Categorical, Categorize(dataset.Text))
	assert.Equal(t, Categorical, Categorize(dataset.Boolean))
}
