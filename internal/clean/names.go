package clean

import "strings"

// StandardizeNames canonicalizes every column name: lowercase, leading
// and trailing whitespace stripped, interior spaces and hyphens
// replaced with underscores. One action is logged only when at least
// one name actually changed, which also makes the stage idempotent.
//
// Names that collide after normalization are left colliding; resolving
// them is out of scope for this stage.
func (c *Cleaner) StandardizeNames() {
	changed := false
	for _, old := range c.ds.Columns() {
		name := normalizeName(old)
		if name != old {
			c.ds.RenameColumn(old, name)
			changed = true
		}
	}
	if changed {
		c.report.logf("Standardized column names (lowercase, underscores)")
	}
}

func normalizeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}
