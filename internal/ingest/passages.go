// Package ingest renders a dataset into fixed-size row-group passages
// for the downstream document/embedding collaborator. The collaborator
// owns indexing and retrieval; this package only defines the hand-off
// shape.
package ingest

import (
	"fmt"
	"strings"

	"github.com/scourdata/scour/internal/dataset"
)

// DefaultRowsPerPassage groups enough rows per passage to keep the
// downstream document count low without losing row-level context.
const DefaultRowsPerPassage = 50

// Passage is one row-group rendered as text, with the row-range
// metadata the ingestion collaborator attaches to each document.
type Passage struct {
	Text     string `json:"text"`
	StartRow int    `json:"start_row"`
	EndRow   int    `json:"end_row"`
	NumRows  int    `json:"num_rows"`
}

// Passages renders the dataset as a sequence of row-group passages of
// at most maxRows rows each; maxRows <= 0 selects the default. Missing
// cells render as NULL. An empty dataset yields no passages.
func Passages(ds *dataset.Dataset, maxRows int) []Passage {
	if maxRows <= 0 {
		maxRows = DefaultRowsPerPassage
	}

	var passages []Passage
	total := ds.Len()
	for start := 0; start < total; start += maxRows {
		end := start + maxRows
		if end > total {
			end = total
		}
		passages = append(passages, Passage{
			Text:     renderRows(ds, start, end),
			StartRow: start,
			EndRow:   end - 1,
			NumRows:  end - start,
		})
	}
	return passages
}

func renderRows(ds *dataset.Dataset, start, end int) string {
	parts := []string{fmt.Sprintf("Data rows %d to %d:\n", start, end-1)}
	for i := start; i < end; i++ {
		items := make([]string, 0, ds.Width())
		for j := 0; j < ds.Width(); j++ {
			col := ds.ColumnAt(j)
			value, ok := col.ValueString(i)
			if !ok {
				value = "NULL"
			}
			items = append(items, fmt.Sprintf("%s=%s", col.Name(), value))
		}
		parts = append(parts, fmt.Sprintf("Row %d: %s", i, strings.Join(items, ", ")))
	}
	return strings.Join(parts, "\n")
}
