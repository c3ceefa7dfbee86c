package yang

// Module is a parsed YANG module. After resolution, Imports and Body also
// carry the statements merged in from included submodules, in load order.
type Module struct {
	Name         string
	YangVersion  *string
	Namespace    string
	Prefix       string
	Organization *string
	Contact      *string
	Description  *string
	Reference    *string
	Revisions    []*Revision
	Imports      []*Import
	Includes     []*Include
	Body         []BodyStatement

	Meta    Metadata
	Unknown []*Statement
}

// LatestRevision returns the lexicographically maximal revision date
// declared by m, or "" when m declares no revisions.
func (m *Module) LatestRevision() string { return latestRevision(m.Revisions) }

// Submodule is a parsed YANG submodule. It belongs to exactly one module and
// is merged into it during resolution.
type Submodule struct {
	Name            string
	YangVersion     *string
	BelongsTo       string
	BelongsToPrefix string
	Organization    *string
	Contact         *string
	Description     *string
	Reference       *string
	Revisions       []*Revision
	Imports         []*Import
	Includes        []*Include
	Body            []BodyStatement

	Meta    Metadata
	Unknown []*Statement
}

// LatestRevision returns the lexicographically maximal revision date
// declared by s, or "" when s declares no revisions.
func (s *Submodule) LatestRevision() string { return latestRevision(s.Revisions) }

func latestRevision(revs []*Revision) string {
	latest := ""
	for _, r := range revs {
		if r.Date > latest {
			latest = r.Date
		}
	}
	return latest
}

// Revision is a date-stamped version tag on a module or submodule.
type Revision struct {
	Date        string
	Description *string
	Reference   *string

	Meta    Metadata
	Unknown []*Statement
}

// Import declares a dependency on another module.
type Import struct {
	Module       string
	Prefix       string
	RevisionDate *string
	Description  *string
	Reference    *string

	Meta    Metadata
	Unknown []*Statement
}

// Include pulls a submodule into its owning module.
type Include struct {
	Submodule    string
	RevisionDate *string
	Description  *string
	Reference    *string

	Meta    Metadata
	Unknown []*Statement
}
