// Package dataset provides the typed, Arrow-backed columnar data model
// used by the profiling and cleaning engine.
package dataset

// Type identifies the logical type of a column. It is a closed set:
// every operation in the engine dispatches on this tag rather than
// probing the underlying storage.
type Type int

const (
	Integer Type = iota
	Float
	Text
	DateTime
	Boolean
)

// String returns the lowercase name used in reports and rendered output.
func (t Type) String() string {
	switch t {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Text:
		return "text"
	case DateTime:
		return "datetime"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether columns of this type participate in
// numeric operations (imputation by median, outlier handling, Describe).
func (t Type) IsNumeric() bool {
	return t == Integer || t == Float
}
