package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 3.0, Mean([]float64{1, 2, 3, 4, 5}), 1e-9)
	assert.Equal(t, 0.0, Mean(nil))
}

func TestStdDev(t *testing.T) {
	t.Run("sample standard deviation", func(t *testing.T) {
		// Sample variance of [2,4,4,4,5,5,7,9] is 32/7.
		got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
		assert.InDelta(t, 2.13808993, got, 1e-6)
	})

	t.Run("constant values", func(t *testing.T) {
		assert.Equal(t, 0.0, StdDev([]float64{5, 5, 5, 5}))
	})

	t.Run("fewer than two values", func(t *testing.T) {
		assert.Equal(t, 0.0, StdDev([]float64{42}))
		assert.Equal(t, 0.0, StdDev(nil))
	})
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 100}

	assert.InDelta(t, 2.25, Quantile(values, 0.25), 1e-9)
	assert.InDelta(t, 4.75, Quantile(values, 0.75), 1e-9)
	assert.InDelta(t, 1.0, Quantile(values, 0), 1e-9)
	assert.InDelta(t, 100.0, Quantile(values, 1), 1e-9)

	t.Run("does not mutate input", func(t *testing.T) {
		input := []float64{3, 1, 2}
		Quantile(input, 0.5)
		assert.Equal(t, []float64{3, 1, 2}, input)
	})

	t.Run("single value", func(t *testing.T) {
		assert.Equal(t, 7.0, Quantile([]float64{7}, 0.99))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Quantile(nil, 0.5))
	})
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 3.0, Median([]float64{5, 1, 3, 2, 4}), 1e-9)
	assert.InDelta(t, 2.5, Median([]float64{1, 2, 3, 4}), 1e-9)
}

func TestMode(t *testing.T) {
	t.Run("most frequent wins", func(t *testing.T) {
		mode, ok := Mode([]string{"a", "b", "b", "c"})
		assert.True(t, ok)
		assert.Equal(t, "b", mode)
	})

	t.Run("ties break toward the smallest value", func(t *testing.T) {
		mode, ok := Mode([]string{"b", "a", "b", "a"})
		assert.True(t, ok)
		assert.Equal(t, "a", mode)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := Mode([]int64{})
		assert.False(t, ok)
	})
}
