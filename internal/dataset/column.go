package dataset

import (
	"fmt"
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Column is a named, typed sequence of nullable scalar values backed by
// an Apache Arrow array. Values are immutable; transforms rebuild the
// backing array through a builder and return a new Column.
type Column struct {
	name  string
	dtype Type
	data  arrow.Array
}

// NewInt creates an Integer column. valid marks present values; a nil
// valid slice means every value is present.
func NewInt(name string, values []int64, valid []bool, mem memory.Allocator) *Column {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	builder := array.NewInt64Builder(mem)
	defer builder.Release()
	for i, v := range values {
		if valid != nil && !valid[i] {
			builder.AppendNull()
			continue
		}
		builder.Append(v)
	}
	return &Column{name: name, dtype: Integer, data: builder.NewArray()}
}

// NewFloat creates a Float column.
func NewFloat(name string, values []float64, valid []bool, mem memory.Allocator) *Column {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	builder := array.NewFloat64Builder(mem)
	defer builder.Release()
	for i, v := range values {
		if valid != nil && !valid[i] {
			builder.AppendNull()
			continue
		}
		builder.Append(v)
	}
	return &Column{name: name, dtype: Float, data: builder.NewArray()}
}

// NewText creates a Text column.
func NewText(name string, values []string, valid []bool, mem memory.Allocator) *Column {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	builder := array.NewStringBuilder(mem)
	defer builder.Release()
	for i, v := range values {
		if valid != nil && !valid[i] {
			builder.AppendNull()
			continue
		}
		builder.Append(v)
	}
	return &Column{name: name, dtype: Text, data: builder.NewArray()}
}

// NewTime creates a DateTime column. Times are stored as nanosecond
// timestamps in UTC.
func NewTime(name string, values []time.Time, valid []bool, mem memory.Allocator) *Column {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	builder := array.NewTimestampBuilder(mem, &arrow.TimestampType{Unit: arrow.Nanosecond})
	defer builder.Release()
	for i, v := range values {
		if valid != nil && !valid[i] {
			builder.AppendNull()
			continue
		}
		builder.Append(arrow.Timestamp(v.UnixNano()))
	}
	return &Column{name: name, dtype: DateTime, data: builder.NewArray()}
}

// NewBool creates a Boolean column.
func NewBool(name string, values []bool, valid []bool, mem memory.Allocator) *Column {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	builder := array.NewBooleanBuilder(mem)
	defer builder.Release()
	for i, v := range values {
		if valid != nil && !valid[i] {
			builder.AppendNull()
			continue
		}
		builder.Append(v)
	}
	return &Column{name: name, dtype: Boolean, data: builder.NewArray()}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the logical column type.
func (c *Column) Type() Type { return c.dtype }

// Len returns the number of rows, including nulls.
func (c *Column) Len() int { return c.data.Len() }

// IsNull reports whether the value at index is missing.
func (c *Column) IsNull(index int) bool { return c.data.IsNull(index) }

// NullCount returns the number of missing values.
func (c *Column) NullCount() int { return c.data.NullN() }

// Rename changes the column name in place.
func (c *Column) Rename(name string) { c.name = name }

// Int returns the value at index for Integer columns. The result is
// undefined for nulls or non-Integer columns; callers check IsNull first.
func (c *Column) Int(index int) int64 {
	return c.data.(*array.Int64).Value(index)
}

// Float returns the value at index for Float columns.
func (c *Column) Float(index int) float64 {
	return c.data.(*array.Float64).Value(index)
}

// Str returns the value at index for Text columns.
func (c *Column) Str(index int) string {
	return c.data.(*array.String).Value(index)
}

// Time returns the value at index for DateTime columns, in UTC.
func (c *Column) Time(index int) time.Time {
	ts := c.data.(*array.Timestamp).Value(index)
	return time.Unix(0, int64(ts)).UTC()
}

// Bool returns the value at index for Boolean columns.
func (c *Column) Bool(index int) bool {
	return c.data.(*array.Boolean).Value(index)
}

// Number returns the value at index of an Integer or Float column as a
// float64. It panics for non-numeric column types.
func (c *Column) Number(index int) float64 {
	switch c.dtype {
	case Integer:
		return float64(c.Int(index))
	case Float:
		return c.Float(index)
	default:
		panic(fmt.Sprintf("Number called on %s column %q", c.dtype, c.name))
	}
}

// NonNullNumbers returns the present values of a numeric column as a
// float64 slice, in row order.
func (c *Column) NonNullNumbers() []float64 {
	values := make([]float64, 0, c.Len()-c.NullCount())
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			continue
		}
		values = append(values, c.Number(i))
	}
	return values
}

// ValueString renders the value at index as a string. The second
// return is false when the value is missing.
func (c *Column) ValueString(index int) (string, bool) {
	if c.IsNull(index) {
		return "", false
	}
	switch c.dtype {
	case Integer:
		return strconv.FormatInt(c.Int(index), 10), true
	case Float:
		return strconv.FormatFloat(c.Float(index), 'g', -1, 64), true
	case Text:
		return c.Str(index), true
	case DateTime:
		return c.Time(index).Format(time.RFC3339), true
	case Boolean:
		return strconv.FormatBool(c.Bool(index)), true
	default:
		return "", false
	}
}

// Filter returns a new column containing only the rows where keep is
// true. keep must have exactly Len entries.
func (c *Column) Filter(keep []bool) *Column {
	mem := memory.NewGoAllocator()
	switch c.dtype {
	case Integer:
		return filterTyped(c, keep, func(i int) int64 { return c.Int(i) },
			func(name string, v []int64, valid []bool) *Column { return NewInt(name, v, valid, mem) })
	case Float:
		return filterTyped(c, keep, func(i int) float64 { return c.Float(i) },
			func(name string, v []float64, valid []bool) *Column { return NewFloat(name, v, valid, mem) })
	case Text:
		return filterTyped(c, keep, func(i int) string { return c.Str(i) },
			func(name string, v []string, valid []bool) *Column { return NewText(name, v, valid, mem) })
	case DateTime:
		return filterTyped(c, keep, func(i int) time.Time { return c.Time(i) },
			func(name string, v []time.Time, valid []bool) *Column { return NewTime(name, v, valid, mem) })
	case Boolean:
		return filterTyped(c, keep, func(i int) bool { return c.Bool(i) },
			func(name string, v []bool, valid []bool) *Column { return NewBool(name, v, valid, mem) })
	default:
		panic(fmt.Sprintf("Filter on unsupported column type %s", c.dtype))
	}
}

// filterTyped is a generic helper for rebuilding a column from the kept rows.
func filterTyped[T any](
	c *Column, keep []bool,
	value func(int) T,
	build func(string, []T, []bool) *Column,
) *Column {
	values := make([]T, 0, c.Len())
	valid := make([]bool, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if !keep[i] {
			continue
		}
		if c.IsNull(i) {
			var zero T
			values = append(values, zero)
			valid = append(valid, false)
			continue
		}
		values = append(values, value(i))
		valid = append(valid, true)
	}
	return build(c.name, values, valid)
}

// Clone returns an independent deep copy of the column.
func (c *Column) Clone() *Column {
	keep := make([]bool, c.Len())
	for i := range keep {
		keep[i] = true
	}
	return c.Filter(keep)
}

// FillNullInt returns a copy with nulls replaced by v. Integer columns only.
func (c *Column) FillNullInt(v int64) *Column {
	values := make([]int64, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			values[i] = v
		} else {
			values[i] = c.Int(i)
		}
	}
	return NewInt(c.name, values, nil, nil)
}

// FillNullFloat returns a copy with nulls replaced by v. Float columns only.
func (c *Column) FillNullFloat(v float64) *Column {
	values := make([]float64, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			values[i] = v
		} else {
			values[i] = c.Float(i)
		}
	}
	return NewFloat(c.name, values, nil, nil)
}

// FillNullText returns a copy with nulls replaced by v. Works for Text
// columns; fills of other non-numeric types go through their textual form.
func (c *Column) FillNullText(v string) *Column {
	values := make([]string, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			values[i] = v
		} else {
			values[i], _ = c.ValueString(i)
		}
	}
	return NewText(c.name, values, nil, nil)
}

// FillNullBool returns a copy with nulls replaced by v. Boolean columns only.
func (c *Column) FillNullBool(v bool) *Column {
	values := make([]bool, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			values[i] = v
		} else {
			values[i] = c.Bool(i)
		}
	}
	return NewBool(c.name, values, nil, nil)
}

// FillNullTime returns a copy with nulls replaced by v. DateTime columns only.
func (c *Column) FillNullTime(v time.Time) *Column {
	values := make([]time.Time, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			values[i] = v
		} else {
			values[i] = c.Time(i)
		}
	}
	return NewTime(c.name, values, nil, nil)
}

// AsFloat converts an Integer column to Float, preserving nulls. Float
// columns are cloned unchanged. Other types panic.
func (c *Column) AsFloat() *Column {
	switch c.dtype {
	case Float:
		return c.Clone()
	case Integer:
		values := make([]float64, c.Len())
		valid := make([]bool, c.Len())
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			values[i] = float64(c.Int(i))
			valid[i] = true
		}
		return NewFloat(c.name, values, valid, nil)
	default:
		panic(fmt.Sprintf("AsFloat on %s column %q", c.dtype, c.name))
	}
}

// String returns a short description of the column.
func (c *Column) String() string {
	return fmt.Sprintf("Column[%s]: %s (len=%d, nulls=%d)", c.dtype, c.name, c.Len(), c.NullCount())
}

// Release releases the underlying Arrow memory.
func (c *Column) Release() {
	if c.data != nil {
		c.data.Release()
	}
}
