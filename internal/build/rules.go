package build

import (
	"strconv"
	"strings"

	"github.com/golangsnmp/goyang/yang"
)

type cardinality int

const (
	one cardinality = iota
	zeroOrOne
	zeroOrMore
)

// scalarFn converts the argument of a substatement into a model field.
// nodeFn maps a substatement that is itself a node. Both receive a context
// already pushed onto the chain for that substatement, so diagnostics
// carry the full path including the statement itself.
type scalarFn func(c *context, s *yang.Statement)

type nodeFn func(c *context, s *yang.Statement)

// rule binds one substatement keyword to either a scalar converter or a
// node handler. Rule tables are ordered slices so that cardinality
// diagnostics come out deterministically.
type rule struct {
	keyword string
	card    cardinality
	def     string
	hasDef  bool
	scalar  scalarFn
	node    nodeFn
}

func scalarRule(kw string, card cardinality, fn scalarFn) rule {
	return rule{keyword: kw, card: card, scalar: fn}
}

func scalarDefault(kw, def string, fn scalarFn) rule {
	return rule{keyword: kw, card: one, def: def, hasDef: true, scalar: fn}
}

func nodeRule(kw string, card cardinality, fn nodeFn) rule {
	return rule{keyword: kw, card: card, node: fn}
}

// apply dispatches the substatements of the current node against the rule
// table in source order, then enforces each rule's cardinality. Statements
// that match no rule, including every prefixed extension statement, are
// returned so the caller can preserve them verbatim.
func apply(c *context, tbl []rule) []*yang.Statement {
	s := c.stmt
	counts := make(map[string]int, len(tbl))
	var unknown []*yang.Statement
	for _, child := range s.Substatements {
		r := findRule(tbl, child)
		if r == nil {
			unknown = append(unknown, child)
			continue
		}
		counts[r.keyword]++
		sub := c.push(child)
		if r.scalar != nil {
			r.scalar(sub, child)
		} else {
			r.node(sub, child)
		}
	}
	for i := range tbl {
		r := &tbl[i]
		n := counts[r.keyword]
		switch {
		case n == 0 && r.card == one:
			if r.hasDef {
				c.report.Warn(s.Meta.Pos,
					"Required statement '%s' not found in '%s'. Assuming the default value '%s'.",
					r.keyword, c.path(), r.def)
				synth := &yang.Statement{
					Keyword:     r.keyword,
					Argument:    r.def,
					HasArgument: true,
					Meta:        s.Meta,
				}
				sub := c.push(synth)
				if r.scalar != nil {
					r.scalar(sub, synth)
				} else {
					r.node(sub, synth)
				}
			} else {
				c.report.Error(s.Meta.Pos,
					"Required statement '%s' not found in '%s'.", r.keyword, c.path())
			}
		case n > 1 && r.card != zeroOrMore:
			c.report.Error(s.Meta.Pos,
				"Statement '%s' repeated %d times in '%s'.", r.keyword, n, c.path())
		}
	}
	return unknown
}

func findRule(tbl []rule, s *yang.Statement) *rule {
	if s.Prefix != "" {
		return nil
	}
	for i := range tbl {
		if tbl[i].keyword == s.Keyword {
			return &tbl[i]
		}
	}
	return nil
}

// stringArg returns the statement's argument, reporting an error when the
// statement carries none.
func stringArg(c *context, s *yang.Statement) (string, bool) {
	if !s.HasArgument {
		c.report.Error(s.Meta.Pos,
			"Expected a non-empty string argument for statement '%s' in '%s'.",
			s.FullKeyword(), c.path())
		return "", false
	}
	return s.Argument, true
}

// identifier returns the node's own trimmed argument, substituting the
// "<unnamed keyword>" sentinel when the argument is absent or blank so the
// node still lands in the model.
func identifier(c *context, s *yang.Statement) string {
	name := ""
	if s.HasArgument {
		name = strings.TrimSpace(s.Argument)
	}
	if name == "" {
		c.report.Error(s.Meta.Pos,
			"Expected a non-empty string argument for statement '%s' in '%s'.",
			s.FullKeyword(), c.path())
		return "<unnamed " + s.Keyword + ">"
	}
	return name
}

func stringValue(dst **string) scalarFn {
	var acc optional[string]
	return func(c *context, s *yang.Statement) {
		v, ok := stringArg(c, s)
		if !ok {
			return
		}
		acc.set(v)
		*dst = nil
		if acc.ok() {
			*dst = &acc.val
		}
	}
}

func requiredString(dst *string) scalarFn {
	var acc required[string]
	return func(c *context, s *yang.Statement) {
		v, ok := stringArg(c, s)
		if !ok {
			return
		}
		acc.set(v)
		*dst = acc.value("")
	}
}

func stringList(dst *[]string) scalarFn {
	var acc multi[string]
	return func(c *context, s *yang.Statement) {
		v, ok := stringArg(c, s)
		if !ok {
			return
		}
		acc.add(v)
		*dst = acc.vals
	}
}

func booleanValue(dst **bool) scalarFn {
	var acc optional[bool]
	return func(c *context, s *yang.Statement) {
		lit, ok := stringArg(c, s)
		if !ok {
			return
		}
		var v bool
		switch strings.ToLower(lit) {
		case "true":
			v = true
		case "false":
			v = false
		default:
			c.report.Error(s.Meta.Pos,
				"Expected 'true' or 'false' as argument of statement '%s' in '%s', but got '%s'.",
				s.FullKeyword(), c.path(), lit)
			return
		}
		acc.set(v)
		*dst = nil
		if acc.ok() {
			*dst = &acc.val
		}
	}
}

func numberValue(dst **float64) scalarFn {
	var acc optional[float64]
	return func(c *context, s *yang.Statement) {
		lit, ok := stringArg(c, s)
		if !ok {
			return
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(lit), 64)
		if err != nil {
			c.report.Error(s.Meta.Pos,
				"Expected a number as argument of statement '%s' in '%s', but got '%s'.",
				s.FullKeyword(), c.path(), lit)
			return
		}
		acc.set(v)
		*dst = nil
		if acc.ok() {
			*dst = &acc.val
		}
	}
}

func statusValue(dst **yang.Status) scalarFn {
	var acc optional[yang.Status]
	return func(c *context, s *yang.Statement) {
		lit, ok := stringArg(c, s)
		if !ok {
			return
		}
		var v yang.Status
		switch lit {
		case "current":
			v = yang.StatusCurrent
		case "deprecated":
			v = yang.StatusDeprecated
		case "obsolete":
			v = yang.StatusObsolete
		default:
			c.report.Error(s.Meta.Pos,
				"Expected one of 'current', 'deprecated' or 'obsolete' as argument of statement '%s' in '%s', but got '%s'.",
				s.FullKeyword(), c.path(), lit)
			return
		}
		acc.set(v)
		*dst = nil
		if acc.ok() {
			*dst = &acc.val
		}
	}
}

func modifierValue(dst **yang.PatternModifier) scalarFn {
	var acc optional[yang.PatternModifier]
	return func(c *context, s *yang.Statement) {
		lit, ok := stringArg(c, s)
		if !ok {
			return
		}
		if lit != "invert-match" {
			c.report.Error(s.Meta.Pos,
				"Expected 'invert-match' as argument of statement '%s' in '%s', but got '%s'.",
				s.FullKeyword(), c.path(), lit)
			return
		}
		acc.set(yang.ModifierInvertMatch)
		*dst = nil
		if acc.ok() {
			*dst = &acc.val
		}
	}
}

// noArgument warns when a statement that never takes an argument carries
// one anyway; the argument is then ignored.
func noArgument(c *context, s *yang.Statement) {
	if s.HasArgument {
		c.report.Warn(s.Meta.Pos,
			"Statement '%s' in '%s' does not take an argument.",
			s.FullKeyword(), c.parent.path())
	}
}
