// Package entities contains core business entities.
package entities

// FillOptions control which groups the fill loop touches and what level
// it grants.
type FillOptions struct {
	// ExcludeGroups lists group IDs or full paths that are never touched.
	ExcludeGroups []string
	// SkipBlank skips groups without projects.
	SkipBlank bool
	// SkipNested skips groups that have a parent group.
	SkipNested bool
	// AccessLevel is granted to every created membership.
	AccessLevel AccessLevel
}

// Report aggregates counters of a single fill run.
type Report struct {
	TotalGroups    int
	MatchingGroups int
	UsersAdded     int
}
