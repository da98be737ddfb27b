// Package entities contains core business entities.
package entities

// Group is a GitLab group namespace. ParentID is zero for top-level groups.
type Group struct {
	ID       int
	Name     string
	FullPath string
	ParentID int
}

// Nested reports whether the group has a parent group.
func (g Group) Nested() bool {
	return g.ParentID != 0
}
