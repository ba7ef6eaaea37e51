package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourdata/scour/internal/dataset"
)

func TestDescribe(t *testing.T) {
	ds := dataset.New(
		dataset.NewText("name", []string{"a", "b", "c", "d", "e", "f"}, nil, nil),
		dataset.NewFloat("value", []float64{1, 2, 3, 4, 5, 100}, nil, nil),
	)
	defer ds.Release()

	summaries := Describe(ds)
	require.Len(t, summaries, 1)

	s, ok := summaries["value"]
	require.True(t, ok)
	assert.Equal(t, 6, s.Count)
	assert.InDelta(t, 19.1666666, s.Mean, 1e-6)
	assert.Equal(t, 1.0, s.Min)
	assert.InDelta(t, 2.25, s.Q25, 1e-9)
	assert.InDelta(t, 3.5, s.Median, 1e-9)
	assert.InDelta(t, 4.75, s.Q75, 1e-9)
	assert.Equal(t, 100.0, s.Max)
	assert.Greater(t, s.Std, 0.0)
}

func TestDescribeSkipsNulls(t *testing.T) {
	ds := dataset.New(
		dataset.NewInt("n", []int64{10, 0, 20}, []bool{true, false, true}, nil),
	)
	defer ds.Release()

	s := Describe(ds)["n"]
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 15.0, s.Mean)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 20.0, s.Max)
}

func TestDescribeAllNullColumn(t *testing.T) {
	ds := dataset.New(
		dataset.NewFloat("empty", []float64{0, 0}, []bool{false, false}, nil),
	)
	defer ds.Release()

	s, ok := Describe(ds)["empty"]
	require.True(t, ok)
	assert.Equal(t, NumericSummary{}, s)
}

func TestDescribeNoNumericColumns(t *testing.T) {
	ds := dataset.New(
		dataset.NewText("name", []string{"a"}, nil, nil),
	)
	defer ds.Release()

	assert.Empty(t, Describe(ds))
}
