package yang

import (
	"testing"

	"github.com/golangsnmp/goyang/internal/testutil"
)

func TestStatementWrite(t *testing.T) {
	s := &Statement{
		Prefix:      "acme",
		Keyword:     "annotation",
		Argument:    "note",
		HasArgument: true,
		Substatements: []*Statement{
			{Keyword: "description", Argument: "a note", HasArgument: true},
			{Keyword: "flag"},
		},
	}
	want := "acme:annotation \"note\" {\n\tdescription \"a note\";\n\tflag;\n}\n"
	testutil.Equal(t, want, s.String())
}

func TestStatementWriteLeaf(t *testing.T) {
	s := &Statement{Keyword: "presence", Argument: "", HasArgument: true}
	testutil.Equal(t, "presence \"\";\n", s.String())

	s = &Statement{Keyword: "input"}
	testutil.Equal(t, "input;\n", s.String())
}

func TestFullKeyword(t *testing.T) {
	testutil.Equal(t, "leaf", (&Statement{Keyword: "leaf"}).FullKeyword())
	testutil.Equal(t, "md:annotation",
		(&Statement{Prefix: "md", Keyword: "annotation"}).FullKeyword())
}

func TestLatestRevision(t *testing.T) {
	m := &Module{}
	testutil.Equal(t, "", m.LatestRevision())

	m.Revisions = []*Revision{
		{Date: "2024-01-15"},
		{Date: "2026-03-01"},
		{Date: "2025-12-31"},
	}
	testutil.Equal(t, "2026-03-01", m.LatestRevision())
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Pos:      Position{Line: 3, Column: 14},
		Message:  "Required statement 'namespace' not found in '/module=m'.",
	}
	testutil.Equal(t, "3:14:Required statement 'namespace' not found in '/module=m'.", d.String())
	testutil.Equal(t, "error", SeverityError.String())
	testutil.Equal(t, "warning", SeverityWarning.String())
}

func TestBoundPredicates(t *testing.T) {
	testutil.True(t, Bound{Keyword: "min"}.IsMin())
	testutil.True(t, Bound{Keyword: "max"}.IsMax())
	testutil.False(t, Bound{Value: 5}.IsMin())
	testutil.False(t, Bound{Value: 5}.IsMax())
}
