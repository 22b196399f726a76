package fleet

import "slices"

// ToolFilters is an allow/deny policy restricting which of a server's tools
// are surfaced to the host.
//
// A nil slice means "no opinion": a nil Allowed admits every tool, a nil
// Rejected rejects none. The deny list is applied after the allow list, so a
// tool present in both is excluded.
type ToolFilters struct {
	// Allowed, when non-nil, is the complete set of admissible tool names.
	Allowed []string

	// Rejected, when non-nil, names tools to exclude.
	Rejected []string
}

// Allows reports whether the named tool passes the filter policy. A nil
// receiver admits every tool.
func (f *ToolFilters) Allows(name string) bool {
	if f == nil {
		return true
	}
	if f.Allowed != nil && !slices.Contains(f.Allowed, name) {
		return false
	}
	return !slices.Contains(f.Rejected, name)
}
