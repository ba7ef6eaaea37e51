// Package io provides dataset input/output. The CSV reader is the
// file-to-dataset boundary: it infers raw column types (boolean,
// integer, float, text) and turns empty cells into missing values,
// leaving all further reclassification to the cleaning engine.
package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/scourdata/scour/internal/dataset"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// CSVOptions configures CSV reading and writing.
type CSVOptions struct {
	Delimiter rune
	Header    bool
	Comment   rune
}

// DefaultCSVOptions returns comma-separated, header-row options.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter: ',',
		Header:    true,
	}
}

// CSVReader reads CSV data into a Dataset.
type CSVReader struct {
	reader  io.Reader
	options CSVOptions
	mem     memory.Allocator
}

// NewCSVReader creates a CSV reader over r.
func NewCSVReader(r io.Reader, options CSVOptions) *CSVReader {
	return &CSVReader{
		reader:  r,
		options: options,
		mem:     memory.NewGoAllocator(),
	}
}

// Read reads all CSV data and returns a Dataset.
func (r *CSVReader) Read() (*dataset.Dataset, error) {
	csvReader := csv.NewReader(r.reader)
	csvReader.Comma = r.options.Delimiter
	csvReader.Comment = r.options.Comment

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return dataset.New(), nil
	}

	var headers []string
	var dataRows [][]string
	if r.options.Header {
		headers = records[0]
		dataRows = records[1:]
	} else {
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i)
		}
		dataRows = records
	}

	// Transpose to work column-wise.
	columns := make([][]string, len(headers))
	for i := range headers {
		columns[i] = make([]string, len(dataRows))
		for j, row := range dataRows {
			if i < len(row) {
				columns[i][j] = row[i]
			}
		}
	}

	cols := make([]*dataset.Column, len(headers))
	for i, header := range headers {
		cols[i] = r.columnFromStrings(header, columns[i])
	}
	return dataset.New(cols...), nil
}

// columnFromStrings builds a typed column from raw cell text. Empty
// cells become nulls regardless of the inferred type.
func (r *CSVReader) columnFromStrings(name string, data []string) *dataset.Column {
	switch inferRawType(data) {
	case dataset.Boolean:
		values := make([]bool, len(data))
		valid := make([]bool, len(data))
		for i, v := range data {
			if v == "" {
				continue
			}
			values[i] = strings.EqualFold(v, trueStr)
			valid[i] = true
		}
		return dataset.NewBool(name, values, valid, r.mem)
	case dataset.Integer:
		values := make([]int64, len(data))
		valid := make([]bool, len(data))
		for i, v := range data {
			if v == "" {
				continue
			}
			values[i], _ = strconv.ParseInt(v, 10, 64)
			valid[i] = true
		}
		return dataset.NewInt(name, values, valid, r.mem)
	case dataset.Float:
		values := make([]float64, len(data))
		valid := make([]bool, len(data))
		for i, v := range data {
			if v == "" {
				continue
			}
			values[i], _ = strconv.ParseFloat(v, 64)
			valid[i] = true
		}
		return dataset.NewFloat(name, values, valid, r.mem)
	default:
		values := make([]string, len(data))
		valid := make([]bool, len(data))
		for i, v := range data {
			if v == "" {
				continue
			}
			values[i] = v
			valid[i] = true
		}
		return dataset.NewText(name, values, valid, r.mem)
	}
}

// inferRawType determines the most specific raw type that fits every
// non-empty value. Date detection is deliberately not attempted here;
// that is the cleaning engine's job.
func inferRawType(data []string) dataset.Type {
	canBeInt := true
	canBeFloat := true
	canBeBool := true
	hasValue := false

	for _, value := range data {
		if value == "" {
			continue
		}
		hasValue = true

		if canBeBool {
			lower := strings.ToLower(value)
			if lower != trueStr && lower != falseStr {
				canBeBool = false
			}
		}
		if canBeInt {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				canBeInt = false
			}
		}
		if canBeFloat {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				canBeFloat = false
			}
		}
	}

	if !hasValue {
		return dataset.Text
	}
	if canBeBool {
		return dataset.Boolean
	}
	if canBeInt {
		return dataset.Integer
	}
	if canBeFloat {
		return dataset.Float
	}
	return dataset.Text
}

// CSVWriter writes a Dataset as CSV.
type CSVWriter struct {
	writer  io.Writer
	options CSVOptions
}

// NewCSVWriter creates a CSV writer over w.
func NewCSVWriter(w io.Writer, options CSVOptions) *CSVWriter {
	return &CSVWriter{writer: w, options: options}
}

// Write writes the dataset. Missing cells render as empty fields, so a
// round trip preserves nullness.
func (w *CSVWriter) Write(ds *dataset.Dataset) error {
	csvWriter := csv.NewWriter(w.writer)
	csvWriter.Comma = w.options.Delimiter
	defer csvWriter.Flush()

	if w.options.Header {
		if err := csvWriter.Write(ds.Columns()); err != nil {
			return fmt.Errorf("writing headers: %w", err)
		}
	}

	for i := 0; i < ds.Len(); i++ {
		row := make([]string, ds.Width())
		for j := 0; j < ds.Width(); j++ {
			row[j], _ = ds.ColumnAt(j).ValueString(i)
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	return csvWriter.Error()
}

// ReadFile reads a dataset from a file path. Only CSV files are
// supported; anything else is the caller's hard error.
func ReadFile(path string) (*dataset.Dataset, error) {
	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		return nil, fmt.Errorf("unsupported file format: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return NewCSVReader(f, DefaultCSVOptions()).Read()
}

// WriteFile writes a dataset to a CSV file path.
func WriteFile(path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return NewCSVWriter(f, DefaultCSVOptions()).Write(ds)
}
