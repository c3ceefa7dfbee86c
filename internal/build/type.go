package build

import (
	"strconv"
	"strings"

	"github.com/golangsnmp/goyang/yang"
)

func buildTypedef(c *context, s *yang.Statement) *yang.Typedef {
	n := &yang.Typedef{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("type", one, typeNode(&n.Type)),
		scalarRule("units", zeroOrOne, stringValue(&n.Units)),
		scalarRule("default", zeroOrOne, stringValue(&n.Default)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func typeNode(dst **yang.Type) nodeFn {
	var acc optional[*yang.Type]
	return func(c *context, s *yang.Statement) {
		acc.set(buildType(c, s))
		*dst = nil
		if acc.ok() {
			*dst = acc.val
		}
	}
}

func buildType(c *context, s *yang.Statement) *yang.Type {
	t := &yang.Type{Name: identifier(c, s), Meta: s.Meta}
	bitPos := &counter{}
	enumVal := &counter{}
	tbl := []rule{
		nodeRule("range", zeroOrOne, func(c *context, s *yang.Statement) {
			t.Range = buildRange(c, s)
		}),
		nodeRule("length", zeroOrOne, func(c *context, s *yang.Statement) {
			t.Length = buildLength(c, s)
		}),
		nodeRule("pattern", zeroOrMore, func(c *context, s *yang.Statement) {
			t.Patterns = append(t.Patterns, buildPattern(c, s))
		}),
		scalarRule("fraction-digits", zeroOrOne, numberValue(&t.FractionDigits)),
		scalarRule("path", zeroOrOne, stringValue(&t.Path)),
		scalarRule("require-instance", zeroOrOne, booleanValue(&t.RequireInstance)),
		scalarRule("base", zeroOrMore, stringList(&t.Bases)),
		nodeRule("bit", zeroOrMore, func(c *context, s *yang.Statement) {
			t.Bits = append(t.Bits, buildBit(c, s, bitPos))
		}),
		nodeRule("enum", zeroOrMore, func(c *context, s *yang.Statement) {
			t.Enums = append(t.Enums, buildEnum(c, s, enumVal))
		}),
		nodeRule("type", zeroOrMore, func(c *context, s *yang.Statement) {
			t.UnionTypes = append(t.UnionTypes, buildType(c, s))
		}),
	}
	t.Unknown = apply(c, tbl)
	return t
}

func buildRange(c *context, s *yang.Statement) *yang.Range {
	r := &yang.Range{Meta: s.Meta}
	if arg, ok := stringArg(c, s); ok {
		r.Parts = parseParts(c, s, "range", arg)
	}
	tbl := restrictionRules(&r.ErrorMessage, &r.ErrorAppTag, &r.Description, &r.Reference)
	r.Unknown = apply(c, tbl)
	return r
}

func buildLength(c *context, s *yang.Statement) *yang.Length {
	l := &yang.Length{Meta: s.Meta}
	if arg, ok := stringArg(c, s); ok {
		l.Parts = parseParts(c, s, "length", arg)
	}
	tbl := restrictionRules(&l.ErrorMessage, &l.ErrorAppTag, &l.Description, &l.Reference)
	l.Unknown = apply(c, tbl)
	return l
}

func buildPattern(c *context, s *yang.Statement) *yang.Pattern {
	p := &yang.Pattern{Meta: s.Meta}
	if arg, ok := stringArg(c, s); ok {
		p.Value = arg
	}
	tbl := append([]rule{
		scalarRule("modifier", zeroOrOne, modifierValue(&p.Modifier)),
	}, restrictionRules(&p.ErrorMessage, &p.ErrorAppTag, &p.Description, &p.Reference)...)
	p.Unknown = apply(c, tbl)
	return p
}

func restrictionRules(errMsg, appTag, desc, ref **string) []rule {
	return []rule{
		scalarRule("error-message", zeroOrOne, stringValue(errMsg)),
		scalarRule("error-app-tag", zeroOrOne, stringValue(appTag)),
		scalarRule("description", zeroOrOne, stringValue(desc)),
		scalarRule("reference", zeroOrOne, stringValue(ref)),
	}
}

func buildBit(c *context, s *yang.Statement, pos *counter) *yang.Bit {
	b := &yang.Bit{Name: identifier(c, s), Meta: s.Meta}
	var declared *float64
	tbl := []rule{
		scalarRule("position", zeroOrOne, numberValue(&declared)),
		scalarRule("if-feature", zeroOrMore, stringList(&b.IfFeatures)),
		scalarRule("status", zeroOrOne, statusValue(&b.Status)),
		scalarRule("description", zeroOrOne, stringValue(&b.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&b.Reference)),
	}
	b.Unknown = apply(c, tbl)
	if declared != nil {
		b.Position = *declared
		pos.reset(*declared)
	} else {
		b.Position = pos.take()
	}
	return b
}

func buildEnum(c *context, s *yang.Statement, val *counter) *yang.Enum {
	e := &yang.Enum{Name: identifier(c, s), Meta: s.Meta}
	var declared *float64
	tbl := []rule{
		scalarRule("value", zeroOrOne, numberValue(&declared)),
		scalarRule("if-feature", zeroOrMore, stringList(&e.IfFeatures)),
		scalarRule("status", zeroOrOne, statusValue(&e.Status)),
		scalarRule("description", zeroOrOne, stringValue(&e.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&e.Reference)),
	}
	e.Unknown = apply(c, tbl)
	if declared != nil {
		e.Value = *declared
		val.reset(*declared)
	} else {
		e.Value = val.take()
	}
	return e
}

// parseParts splits a pipe-separated range or length specification into its
// validated parts. Malformed parts are reported and dropped; the surviving
// parts still make it into the model.
func parseParts(c *context, s *yang.Statement, kind, arg string) []yang.Part {
	var parts []yang.Part
	for _, raw := range strings.Split(arg, "|") {
		part := strings.TrimSpace(raw)
		bounds := strings.Split(part, "..")
		if len(bounds) > 2 {
			c.report.Error(s.Meta.Pos,
				"Invalid %s part '%s' in '%s'.", kind, part, c.path())
			continue
		}
		lower, ok := parseBound(c, s, kind, bounds[0])
		if !ok {
			continue
		}
		upper := lower
		if len(bounds) == 2 {
			upper, ok = parseBound(c, s, kind, bounds[1])
			if !ok {
				continue
			}
		}
		if boundsInverted(lower, upper) {
			c.report.Error(s.Meta.Pos,
				"Invalid %s part '%s' in '%s': min mustn't > max.", kind, part, c.path())
			continue
		}
		parts = append(parts, yang.Part{Lower: lower, Upper: upper})
	}
	return parts
}

func parseBound(c *context, s *yang.Statement, kind, text string) (yang.Bound, bool) {
	b := strings.TrimSpace(text)
	switch b {
	case "min":
		return yang.Bound{Keyword: "min"}, true
	case "max":
		return yang.Bound{Keyword: "max"}, true
	}
	v, err := strconv.ParseFloat(b, 64)
	if err != nil {
		c.report.Error(s.Meta.Pos,
			"Invalid %s bound '%s' in '%s'.", kind, b, c.path())
		return yang.Bound{}, false
	}
	return yang.Bound{Value: v}, true
}

// boundsInverted reports lower > upper where that is decidable without
// knowing the base type: two numbers in the wrong order, a "max" lower
// bound paired with anything smaller, or a "min" upper bound paired with
// anything larger.
func boundsInverted(lower, upper yang.Bound) bool {
	switch {
	case lower.Keyword == "" && upper.Keyword == "":
		return lower.Value > upper.Value
	case lower.IsMax():
		return !upper.IsMax()
	case upper.IsMin():
		return !lower.IsMin()
	}
	return false
}

// ParseRangeSpecification parses a pipe-separated range argument on its
// own, outside any statement tree. Diagnostics use the start-of-source
// position and name the synthetic statement the argument was attached to.
func ParseRangeSpecification(arg string) ([]yang.Part, []yang.Diagnostic) {
	return parseSpecification("range", arg)
}

// ParseLengthSpecification is ParseRangeSpecification for length arguments.
func ParseLengthSpecification(arg string) ([]yang.Part, []yang.Diagnostic) {
	return parseSpecification("length", arg)
}

func parseSpecification(kind, arg string) ([]yang.Part, []yang.Diagnostic) {
	s := &yang.Statement{
		Keyword:     kind,
		Argument:    arg,
		HasArgument: true,
		Meta:        yang.Metadata{Pos: yang.Position{Line: 1, Column: 1}},
	}
	rep := &Report{}
	c := &context{stmt: s, report: rep}
	parts := parseParts(c, s, kind, arg)
	return parts, rep.Errors
}
