// Package build maps the generic statement tree produced by the parser
// onto the typed model in the yang package. Mapping never stops at the
// first problem: every node that can be represented is, diagnostics pile
// up in a shared report, and substatements that match no rule are kept
// verbatim as unknown statements.
package build

import (
	"log/slog"

	"github.com/golangsnmp/goyang/internal/types"
	"github.com/golangsnmp/goyang/yang"
)

// Document is the outcome of mapping one source file. Exactly one of
// Module and Submodule is set unless the top level was malformed, in which
// case both are nil and the report carries the reason.
type Document struct {
	Module    *yang.Module
	Submodule *yang.Submodule
}

// Build maps the top-level statements of one parsed source onto the typed
// model, recording diagnostics in rep.
func Build(stmts []*yang.Statement, rep *Report, logger *slog.Logger) *Document {
	log := types.Logger{L: logger}
	doc := &Document{}
	if len(stmts) != 1 {
		pos := yang.Position{Line: 1, Column: 1}
		if len(stmts) > 1 {
			pos = stmts[1].Meta.Pos
		}
		rep.Error(pos,
			"Expected a single 'module' or 'submodule' statement, but found %d top-level statements.",
			len(stmts))
		return doc
	}
	s := stmts[0]
	c := &context{stmt: s, report: rep}
	switch {
	case s.Prefix == "" && s.Keyword == "module":
		doc.Module = buildModule(c, s)
		log.Log(slog.LevelDebug, "module mapped",
			slog.String("name", doc.Module.Name),
			slog.Int("errors", len(rep.Errors)), slog.Int("warnings", len(rep.Warnings)))
	case s.Prefix == "" && s.Keyword == "submodule":
		doc.Submodule = buildSubmodule(c, s)
		log.Log(slog.LevelDebug, "submodule mapped",
			slog.String("name", doc.Submodule.Name),
			slog.Int("errors", len(rep.Errors)), slog.Int("warnings", len(rep.Warnings)))
	default:
		rep.Error(s.Meta.Pos,
			"Expected a 'module' or 'submodule' statement, but found '%s'.", s.FullKeyword())
	}
	return doc
}

func buildModule(c *context, s *yang.Statement) *yang.Module {
	m := &yang.Module{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarDefault("yang-version", "1", stringValue(&m.YangVersion)),
		scalarRule("namespace", one, requiredString(&m.Namespace)),
		scalarRule("prefix", one, requiredString(&m.Prefix)),
		nodeRule("import", zeroOrMore, func(c *context, s *yang.Statement) {
			m.Imports = append(m.Imports, buildImport(c, s))
		}),
		nodeRule("include", zeroOrMore, func(c *context, s *yang.Statement) {
			m.Includes = append(m.Includes, buildInclude(c, s))
		}),
		scalarRule("organization", zeroOrOne, stringValue(&m.Organization)),
		scalarRule("contact", zeroOrOne, stringValue(&m.Contact)),
		scalarRule("description", zeroOrOne, stringValue(&m.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&m.Reference)),
		nodeRule("revision", zeroOrMore, func(c *context, s *yang.Statement) {
			m.Revisions = append(m.Revisions, buildRevision(c, s))
		}),
	}
	tbl = append(tbl, bodyRules(&m.Body)...)
	m.Unknown = apply(c, tbl)
	return m
}

func buildSubmodule(c *context, s *yang.Statement) *yang.Submodule {
	sm := &yang.Submodule{Name: identifier(c, s), Meta: s.Meta}
	var carried []*yang.Statement
	tbl := []rule{
		scalarDefault("yang-version", "1", stringValue(&sm.YangVersion)),
		nodeRule("belongs-to", one, func(c *context, s *yang.Statement) {
			sm.BelongsTo = identifier(c, s)
			inner := []rule{
				scalarRule("prefix", one, requiredString(&sm.BelongsToPrefix)),
			}
			if rest := apply(c, inner); len(rest) > 0 {
				// Keep the extras nested under a belongs-to statement so
				// serialization reproduces their original position.
				carried = append(carried, &yang.Statement{
					Keyword:       s.Keyword,
					Argument:      s.Argument,
					HasArgument:   s.HasArgument,
					Substatements: rest,
					Meta:          s.Meta,
				})
			}
		}),
		nodeRule("import", zeroOrMore, func(c *context, s *yang.Statement) {
			sm.Imports = append(sm.Imports, buildImport(c, s))
		}),
		nodeRule("include", zeroOrMore, func(c *context, s *yang.Statement) {
			sm.Includes = append(sm.Includes, buildInclude(c, s))
		}),
		scalarRule("organization", zeroOrOne, stringValue(&sm.Organization)),
		scalarRule("contact", zeroOrOne, stringValue(&sm.Contact)),
		scalarRule("description", zeroOrOne, stringValue(&sm.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&sm.Reference)),
		nodeRule("revision", zeroOrMore, func(c *context, s *yang.Statement) {
			sm.Revisions = append(sm.Revisions, buildRevision(c, s))
		}),
	}
	tbl = append(tbl, bodyRules(&sm.Body)...)
	sm.Unknown = append(apply(c, tbl), carried...)
	return sm
}

func buildRevision(c *context, s *yang.Statement) *yang.Revision {
	r := &yang.Revision{Date: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("description", zeroOrOne, stringValue(&r.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&r.Reference)),
	}
	r.Unknown = apply(c, tbl)
	return r
}

func buildImport(c *context, s *yang.Statement) *yang.Import {
	imp := &yang.Import{Module: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("prefix", one, requiredString(&imp.Prefix)),
		scalarRule("revision-date", zeroOrOne, stringValue(&imp.RevisionDate)),
		scalarRule("description", zeroOrOne, stringValue(&imp.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&imp.Reference)),
	}
	imp.Unknown = apply(c, tbl)
	return imp
}

func buildInclude(c *context, s *yang.Statement) *yang.Include {
	inc := &yang.Include{Submodule: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("revision-date", zeroOrOne, stringValue(&inc.RevisionDate)),
		scalarRule("description", zeroOrOne, stringValue(&inc.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&inc.Reference)),
	}
	inc.Unknown = apply(c, tbl)
	return inc
}

// bodyRules covers every statement that may appear in a module or
// submodule body. Appending through a single slice keeps the original
// source order across all body statement kinds.
func bodyRules(dst *[]yang.BodyStatement) []rule {
	return []rule{
		nodeRule("extension", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildExtension(c, s))
		}),
		nodeRule("feature", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildFeature(c, s))
		}),
		nodeRule("identity", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildIdentity(c, s))
		}),
		nodeRule("typedef", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildTypedef(c, s))
		}),
		nodeRule("grouping", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildGrouping(c, s))
		}),
		nodeRule("container", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildContainer(c, s))
		}),
		nodeRule("leaf", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildLeaf(c, s))
		}),
		nodeRule("leaf-list", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildLeafList(c, s))
		}),
		nodeRule("list", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildList(c, s))
		}),
		nodeRule("choice", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildChoice(c, s))
		}),
		nodeRule("uses", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildUses(c, s))
		}),
		nodeRule("augment", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildAugmentation(c, s))
		}),
		nodeRule("rpc", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildRpc(c, s))
		}),
		nodeRule("notification", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildNotification(c, s))
		}),
		nodeRule("deviation", zeroOrMore, func(c *context, s *yang.Statement) {
			*dst = append(*dst, buildDeviation(c, s))
		}),
	}
}
