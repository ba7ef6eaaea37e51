package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scourdata/scour/internal/dataset"
	"github.com/scourdata/scour/internal/errors"
)

func TestColumnValidator(t *testing.T) {
	ds := dataset.New(
		dataset.NewInt("a", []int64{1}, nil, nil),
		dataset.NewInt("b", []int64{2}, nil, nil),
	)
	defer ds.Release()

	assert.NoError(t, ValidateColumns(ds, "test", "a", "b"))

	err := ValidateColumns(ds, "test", "a", "missing")
	require.Error(t, err)

	var ce *errors.CleaningError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "missing", ce.Column)
	assert.Equal(t, "test", ce.Op)
}

func TestLengthValidator(t *testing.T) {
	assert.NoError(t, ValidateLength(3, 3, "op", "column b"))

	err := ValidateLength(3, 5, "op", "column b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected length 3, got 5")
}

func TestUniqueNamesValidator(t *testing.T) {
	assert.NoError(t, ValidateUniqueNames("op", []string{"a", "b", "c"}))

	err := ValidateUniqueNames("op", []string{"a", "b", "a"})
	require.Error(t, err)

	var ce *errors.CleaningError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "a", ce.Column)
}

func TestCompoundValidator(t *testing.T) {
	ok := NewUniqueNamesValidator("op", []string{"a"})
	bad := NewLengthValidator(1, 2, "op", "ctx")

	assert.NoError(t, NewCompoundValidator(ok).Validate())

	err := NewCompoundValidator(ok, bad).Validate()
	assert.Error(t, err, "first failing validator wins")
}
