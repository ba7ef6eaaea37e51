package clean

import (
	"strconv"
	"strings"
	"time"

	"github.com/scourdata/scour/internal/dataset"
)

// Outcome reports what a coercion attempt did to a column. Failures
// are not errors: an unconvertible column simply stays Unchanged.
type Outcome int

const (
	Unchanged Outcome = iota
	ConvertedDateTime
	ConvertedNumeric
)

// numericCommitFraction is the confidence bar for the numeric
// heuristic: the fraction of originally present values that must parse
// before the coercion is committed.
const numericCommitFraction = 0.5

// dateTimeLayouts are tried in order for every value. The first layout
// that parses a value wins; a value no layout accepts fails the whole
// column's temporal attempt.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"15:04:05",
}

// ConvertTypes reclassifies Text columns as DateTime or numeric where
// the data supports it, in column order. Each column is attempted at
// most once per run and a failed attempt never affects later columns.
// The temporal heuristic runs first; the numeric heuristic then
// considers only the columns still Text.
func (c *Cleaner) ConvertTypes() {
	for _, name := range c.ds.Columns() {
		col, _ := c.ds.Column(name)
		if col.Type() != dataset.Text {
			continue
		}
		converted, outcome := coerceColumn(col)
		switch outcome {
		case ConvertedDateTime:
			c.ds.SetColumn(converted)
			c.report.logf("Converted '%s' to datetime", name)
		case ConvertedNumeric:
			c.ds.SetColumn(converted)
			c.report.logf("Converted '%s' to numeric", name)
		case Unchanged:
		}
	}
}

// coerceColumn attempts the temporal then the numeric heuristic on a
// Text column, returning the replacement column and what happened.
func coerceColumn(col *dataset.Column) (*dataset.Column, Outcome) {
	if converted, ok := coerceDateTime(col); ok {
		return converted, ConvertedDateTime
	}
	if converted, ok := coerceNumeric(col); ok {
		return converted, ConvertedNumeric
	}
	return nil, Unchanged
}

// coerceDateTime converts a Text column to DateTime when the first
// present value looks date-like (contains '/', '-' or ':') and every
// present value parses. Missing values survive as missing.
func coerceDateTime(col *dataset.Column) (*dataset.Column, bool) {
	sample, ok := firstPresent(col)
	if !ok || !strings.ContainsAny(sample, "/-:") {
		return nil, false
	}

	values := make([]time.Time, col.Len())
	valid := make([]bool, col.Len())
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		t, ok := parseDateTime(col.Str(i))
		if !ok {
			return nil, false
		}
		values[i] = t
		valid[i] = true
	}
	return dataset.NewTime(col.Name(), values, valid, nil), true
}

// coerceNumeric converts a Text column to Integer or Float when more
// than half of the originally present values parse as numbers.
// Unparseable entries become missing. The column becomes Integer only
// when every value parses as an integer and no cell is missing;
// otherwise Float.
func coerceNumeric(col *dataset.Column) (*dataset.Column, bool) {
	present := col.Len() - col.NullCount()
	if present == 0 {
		return nil, false
	}

	values := make([]float64, col.Len())
	valid := make([]bool, col.Len())
	parsed := 0
	allInts := true
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		raw := strings.TrimSpace(col.Str(i))
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			allInts = false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			allInts = false
			continue
		}
		values[i] = v
		valid[i] = true
		parsed++
	}

	if float64(parsed)/float64(present) <= numericCommitFraction {
		return nil, false
	}

	if allInts && parsed == col.Len() {
		ints := make([]int64, col.Len())
		for i, v := range values {
			ints[i] = int64(v)
		}
		return dataset.NewInt(col.Name(), ints, nil, nil), true
	}
	return dataset.NewFloat(col.Name(), values, valid, nil), true
}

func firstPresent(col *dataset.Column) (string, bool) {
	for i := 0; i < col.Len(); i++ {
		if !col.IsNull(i) {
			return col.Str(i), true
		}
	}
	return "", false
}

func parseDateTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
