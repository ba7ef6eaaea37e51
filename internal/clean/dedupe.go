package clean

// RemoveDuplicates removes every row that structurally duplicates an
// earlier row: first occurrence kept, survivor order preserved. Two
// rows are duplicates when every column value compares equal, with
// nulls equal to nulls. Logs an action only when rows were removed.
func (c *Cleaner) RemoveDuplicates() {
	rows := c.ds.Len()
	if rows == 0 || c.ds.Width() == 0 {
		return
	}

	keep := make([]bool, rows)
	seen := make(map[uint64][]int, rows)
	removed := 0
	for i := 0; i < rows; i++ {
		key := c.ds.RowKey(i)
		dup := false
		for _, j := range seen[key] {
			if c.ds.RowEquals(i, j) {
				dup = true
				break
			}
		}
		if dup {
			removed++
			continue
		}
		keep[i] = true
		seen[key] = append(seen[key], i)
	}

	if removed == 0 {
		return
	}
	c.ds.FilterRows(keep)
	c.report.RowsRemoved += removed
	c.report.logf("Removed %d duplicate rows", removed)
}
