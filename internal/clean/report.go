// Package clean implements the deterministic cleaning stages and the
// orchestrating pipeline: name standardization, type coercion,
// deduplication, missing-value resolution, and outlier handling. Every
// stage appends to a shared Report so the full run is auditable and
// replayable.
package clean

import (
	"fmt"
	"strings"
)

// Report is the running record of a cleaning run: the ordered action
// log plus exact row/column/missing-cell accounting. Counters only
// ever grow; the final shape and totals are populated when the
// pipeline completes.
type Report struct {
	OriginalRows        int      `json:"original_rows"`
	OriginalCols        int      `json:"original_columns"`
	Actions             []string `json:"actions_taken"`
	ColumnsDropped      int      `json:"columns_dropped"`
	RowsRemoved         int      `json:"rows_removed"`
	MissingHandled      int      `json:"missing_handled"`
	FinalRows           int      `json:"final_rows"`
	FinalCols           int      `json:"final_columns"`
	TotalRowsRemoved    int      `json:"total_rows_removed"`
	TotalColumnsRemoved int      `json:"total_columns_removed"`
}

func (r *Report) logf(format string, args ...any) {
	r.Actions = append(r.Actions, fmt.Sprintf(format, args...))
}

// Summary renders the report as human-readable text: original and
// final shape, the ordered action log, and the removal totals.
func (r *Report) Summary() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("📊 Original Data: %d rows × %d columns", r.OriginalRows, r.OriginalCols))
	lines = append(lines, fmt.Sprintf("📊 Cleaned Data: %d rows × %d columns", r.FinalRows, r.FinalCols))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("✅ Actions Performed: %d", len(r.Actions)))
	lines = append(lines, "")
	for _, action := range r.Actions {
		lines = append(lines, fmt.Sprintf("  • %s", action))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("🗑️ Total Rows Removed: %d", r.TotalRowsRemoved))
	lines = append(lines, fmt.Sprintf("🗑️ Total Columns Removed: %d", r.TotalColumnsRemoved))
	lines = append(lines, fmt.Sprintf("✨ Missing Values Handled: %d", r.MissingHandled))
	return strings.Join(lines, "\n")
}
