// Package yang defines the typed model for YANG (RFC 7950) modules.
//
// The model is produced by the goyang root package: source text is scanned
// and parsed into a generic Statement tree, which is then mapped into the
// node kinds defined here. Nodes are immutable once built. Statements whose
// keyword is not recognized by a node (or which carry a foreign prefix) are
// preserved on the node's Unknown list rather than dropped, so extension
// statements survive a round trip.
package yang

// Position is a location in source text. Line and Column are 1-based,
// Offset is a 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Metadata records where a node or statement was defined.
type Metadata struct {
	Source string   // source reference, e.g. a file name
	Pos    Position // position of the defining keyword
	Len    int      // byte length of the defining statement's span
}

// Status is the value of a YANG status statement.
type Status int

const (
	StatusCurrent Status = iota
	StatusDeprecated
	StatusObsolete
)

// String returns the YANG literal for s.
func (s Status) String() string {
	switch s {
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return "unknown"
	}
}

// PatternModifier is the value of a pattern's modifier statement.
type PatternModifier int

// ModifierInvertMatch is the only modifier defined by RFC 7950.
const ModifierInvertMatch PatternModifier = iota

// String returns the YANG literal for m.
func (m PatternModifier) String() string {
	if m == ModifierInvertMatch {
		return "invert-match"
	}
	return "unknown"
}

// BodyStatement is implemented by every node kind that may appear in the
// body of a module or submodule.
type BodyStatement interface {
	bodyStatement()
}

// DataDefinition is implemented by the node kinds that define data tree
// content: Container, Leaf, LeafList, List, Choice, Case, and Uses.
type DataDefinition interface {
	BodyStatement
	dataDefinition()
}
