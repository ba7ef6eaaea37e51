package clean

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourdata/scour/internal/dataset"
)

func TestConvertTypesDateTime(t *testing.T) {
	ds := dataset.New(
		dataset.NewText("join_date", []string{"2021-05-01", "2021-06-15", ""}, []bool{true, true, false}, nil),
	)
	defer ds.Release()

	c := NewCleaner(ds)
	c.ConvertTypes()

	col, _ := c.Dataset().Column("join_date")
	require.Equal(t, dataset.DateTime, col.Type())
	assert.Equal(t, time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), col.Time(0))
	assert.True(t, col.IsNull(2), "missing values survive coercion as missing")

	require.Len(t, c.Report().Actions, 1)
	assert.Equal(t, "Converted 'join_date' to datetime", c.Report().Actions[0])
}

func TestConvertTypesDateTimeLayouts(t *testing.T) {
	ds := dataset.New(
		dataset.NewText("d", []string{"2021/03/04", "01/02/2021", "Jan 2, 2021"}, nil, nil),
	)
	defer ds.Release()

	c := NewCleaner(ds)
	c.ConvertTypes()

	col, _ := c.Dataset().Column("d")
	assert.Equal(t, dataset.DateTime, col.Type())
}

func TestConvertTypesDateTimeRejectsMixed(t *testing.T) {
	// One value no layout accepts fails the whole temporal attempt, and
	// the values do not parse as numbers either.
	ds := dataset.New(
		dataset.NewText("d", []string{"2021-05-01", "not a date"}, nil, nil),
	)
	defer ds.Release()

	c := NewCleaner(ds)
	c.ConvertTypes()

	col, _ := c.Dataset().Column("d")
	assert.Equal(t, dataset.Text, col.Type())
	assert.Empty(t, c.Report().Actions)
}

func TestConvertTypesNumericInteger(t *testing.T) {
	ds := dataset.New(
		dataset.NewText("revenue", []string{"100", "250", "90"}, nil, nil),
	)
	defer ds.Release()

	c := NewCleaner(ds)
	c.ConvertTypes()

	col, _ := c.Dataset().Column("revenue")
	require.Equal(t, dataset.Integer, col.Type())
	assert.Equal(t, int64(250), col.Int(1))
	require.Len(t, c.Report().Actions, 1)
	assert.Equal(t, "Converted 'revenue' to numeric", c.Report().Actions[0])
}

func TestConvertTypesNumericFloat(t *testing.T) {
	t.Run("unparseable entries become missing", func(t *testing.T) {
		ds := dataset.New(
			dataset.NewText("v", []string{"1.5", "2.5", "n/a", "3.5"}, nil, nil),
		)
		defer ds.Release()

		c := NewCleaner(ds)
		c.ConvertTypes()

		col, _ := c.Dataset().Column("v")
		require.Equal(t, dataset.Float, col.Type())
		assert.Equal(t, 1.5, col.Float(0))
		assert.True(t, col.IsNull(2))
		assert.Equal(t, 1, col.NullCount())
	})

	t.Run("integers with an original missing cell stay float", func(t *testing.T) {
		ds := dataset.New(
			dataset.NewText("v", []string{"1", "2", ""}, []bool{true, true, false}, nil),
		)
		defer ds.Release()

		c := NewCleaner(ds)
		c.ConvertTypes()

		col, _ := c.Dataset().Column("v")
		assert.Equal(t, dataset.Float, col.Type())
		assert.True(t, col.IsNull(2))
	})
}

func TestConvertTypesNumericThreshold(t *testing.T) {
	// Exactly half of the present values parsing is not enough; the bar
	// is strictly more than half.
	ds := dataset.New(
		dataset.NewText("v", []string{"1", "x", "2", "y"}, nil, nil),
	)
	defer ds.Release()

	c := NewCleaner(ds)
	c.ConvertTypes()

	col, _ := c.Dataset().Column("v")
	assert.Equal(t, dataset.Text, col.Type())
	assert.Empty(t, c.Report().Actions)
}

func TestConvertTypesSkipsNonText(t *testing.T) {
	ds := dataset.New(
		dataset.NewInt("n", []int64{1, 2}, nil, nil),
		dataset.NewFloat("f", []float64{1.5, 2.5}, nil, nil),
	)
	defer ds.Release()

	c := NewCleaner(ds)
	c.ConvertTypes()

	n, _ := c.Dataset().Column("n")
	f, _ := c.Dataset().Column("f")
	assert.Equal(t, dataset.Integer, n.Type())
	assert.Equal(t, dataset.Float, f.Type())
	assert.Empty(t, c.Report().Actions)
}

func TestConvertTypesAllNullColumn(t *testing.T) {
	ds := dataset.New(
		dataset.NewText("empty", []string{"", ""}, []bool{false, false}, nil),
	)
	defer ds.Release()

	c := NewCleaner(ds)
	c.ConvertTypes()

	col, _ := c.Dataset().Column("empty")
	assert.Equal(t, dataset.Text, col.Type())
}
