package dataset

import (
	"fmt"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
)

// rowKeySeparator keeps adjacent cell values from running together in
// the hashed row signature. nullMarker is distinguishable from any
// rendered value because rendered cells never start with a NUL byte.
const (
	rowKeySeparator = "\x1f"
	nullMarker      = "\x00"
)

// Dataset is an ordered collection of equally sized named columns.
// Column names are unique. The zero value is not usable; construct
// with New.
type Dataset struct {
	columns []*Column
	index   map[string]int
}

// New creates a Dataset from the given columns. Callers are expected
// to pass columns of equal length with unique names; the public API
// validates both before reaching this constructor.
func New(columns ...*Column) *Dataset {
	ds := &Dataset{
		columns: append([]*Column(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range ds.columns {
		ds.index[c.Name()] = i
	}
	return ds
}

// Columns returns the column names in order.
func (ds *Dataset) Columns() []string {
	names := make([]string, len(ds.columns))
	for i, c := range ds.columns {
		names[i] = c.Name()
	}
	return names
}

// Len returns the number of rows.
func (ds *Dataset) Len() int {
	if len(ds.columns) == 0 {
		return 0
	}
	return ds.columns[0].Len()
}

// Width returns the number of columns.
func (ds *Dataset) Width() int { return len(ds.columns) }

// Column returns the named column.
func (ds *Dataset) Column(name string) (*Column, bool) {
	i, ok := ds.index[name]
	if !ok {
		return nil, false
	}
	return ds.columns[i], true
}

// ColumnAt returns the column at position i.
func (ds *Dataset) ColumnAt(i int) *Column { return ds.columns[i] }

// HasColumn reports whether a column with the given name exists.
func (ds *Dataset) HasColumn(name string) bool {
	_, ok := ds.index[name]
	return ok
}

// SetColumn replaces the column with the same name, preserving its
// position. It reports whether a column was replaced.
func (ds *Dataset) SetColumn(col *Column) bool {
	i, ok := ds.index[col.Name()]
	if !ok {
		return false
	}
	ds.columns[i] = col
	return true
}

// DropColumn removes the named column in place and reports whether it
// existed.
func (ds *Dataset) DropColumn(name string) bool {
	i, ok := ds.index[name]
	if !ok {
		return false
	}
	ds.columns = append(ds.columns[:i], ds.columns[i+1:]...)
	ds.reindex()
	return true
}

// RenameColumn renames a column in place. Renaming to an existing name
// is the caller's responsibility to avoid; the engine's normalizer
// deliberately does not resolve collisions.
func (ds *Dataset) RenameColumn(old, name string) bool {
	i, ok := ds.index[old]
	if !ok {
		return false
	}
	ds.columns[i].Rename(name)
	ds.reindex()
	return true
}

func (ds *Dataset) reindex() {
	ds.index = make(map[string]int, len(ds.columns))
	for i, c := range ds.columns {
		ds.index[c.Name()] = i
	}
}

// FilterRows keeps only the rows where keep is true, removing the same
// row indices from every column atomically.
func (ds *Dataset) FilterRows(keep []bool) {
	for i, c := range ds.columns {
		ds.columns[i] = c.Filter(keep)
	}
}

// Clone returns an independent deep copy of the dataset.
func (ds *Dataset) Clone() *Dataset {
	copies := make([]*Column, len(ds.columns))
	for i, c := range ds.columns {
		copies[i] = c.Clone()
	}
	return New(copies...)
}

// MissingCells returns the total number of missing values across all
// columns.
func (ds *Dataset) MissingCells() int {
	total := 0
	for _, c := range ds.columns {
		total += c.NullCount()
	}
	return total
}

// NumericColumns returns the names of Integer and Float columns in
// dataset order.
func (ds *Dataset) NumericColumns() []string {
	var names []string
	for _, c := range ds.columns {
		if c.Type().IsNumeric() {
			names = append(names, c.Name())
		}
	}
	return names
}

// RowKey returns a hash signature of row i covering every column.
// Nulls hash equal to nulls. Rows with equal keys are candidate
// structural duplicates; RowEquals confirms.
func (ds *Dataset) RowKey(i int) uint64 {
	var sb strings.Builder
	for _, c := range ds.columns {
		v, ok := c.ValueString(i)
		if !ok {
			sb.WriteString(nullMarker)
		} else {
			sb.WriteString(v)
		}
		sb.WriteString(rowKeySeparator)
	}
	return xxhash.Sum64String(sb.String())
}

// RowEquals reports whether rows i and j are structural duplicates:
// every column value compares equal, with nulls equal to nulls.
func (ds *Dataset) RowEquals(i, j int) bool {
	for _, c := range ds.columns {
		vi, oki := c.ValueString(i)
		vj, okj := c.ValueString(j)
		if oki != okj || vi != vj {
			return false
		}
	}
	return true
}

// String returns a string representation of the dataset schema.
func (ds *Dataset) String() string {
	if len(ds.columns) == 0 {
		return "Dataset[empty]"
	}
	parts := []string{fmt.Sprintf("Dataset[%dx%d]", ds.Len(), ds.Width())}
	for _, c := range ds.columns {
		parts = append(parts, fmt.Sprintf("  %s: %s", c.Name(), c.Type()))
	}
	return strings.Join(parts, "\n")
}

// Release releases the Arrow memory of every column.
func (ds *Dataset) Release() {
	for _, c := range ds.columns {
		c.Release()
	}
}
