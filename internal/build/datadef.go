package build

import "github.com/golangsnmp/goyang/yang"

// dataDefRules covers the data definition statements shared by containers,
// lists, groupings, cases and the other node bodies that accept them.
func dataDefRules(dst *[]yang.DataDefinition) []rule {
	return []rule{
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
	}
}

func buildContainer(c *context, s *yang.Statement) *yang.Container {
	n := &yang.Container{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("when", zeroOrOne, whenNode(&n.When)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		scalarRule("presence", zeroOrOne, stringValue(&n.Presence)),
		scalarRule("config", zeroOrOne, booleanValue(&n.Config)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
		nodeRule("typedef", zeroOrMore, typedefList(&n.Typedefs)),
		nodeRule("grouping", zeroOrMore, groupingList(&n.Groupings)),
		nodeRule("action", zeroOrMore, actionList(&n.Actions)),
		nodeRule("notification", zeroOrMore, notificationList(&n.Notifications)),
	}
	tbl = append(tbl, dataDefRules(&n.DataDefs)...)
	n.Unknown = apply(c, tbl)
	return n
}

func buildLeaf(c *context, s *yang.Statement) *yang.Leaf {
	n := &yang.Leaf{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("when", zeroOrOne, whenNode(&n.When)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		nodeRule("type", one, typeNode(&n.Type)),
		scalarRule("units", zeroOrOne, stringValue(&n.Units)),
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		scalarRule("default", zeroOrOne, stringValue(&n.Default)),
		scalarRule("config", zeroOrOne, booleanValue(&n.Config)),
		scalarRule("mandatory", zeroOrOne, booleanValue(&n.Mandatory)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func buildLeafList(c *context, s *yang.Statement) *yang.LeafList {
	n := &yang.LeafList{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("when", zeroOrOne, whenNode(&n.When)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		nodeRule("type", one, typeNode(&n.Type)),
		scalarRule("units", zeroOrOne, stringValue(&n.Units)),
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		scalarRule("default", zeroOrMore, stringList(&n.Defaults)),
		scalarRule("config", zeroOrOne, booleanValue(&n.Config)),
		scalarRule("min-elements", zeroOrOne, numberValue(&n.MinElements)),
		scalarRule("max-elements", zeroOrOne, stringValue(&n.MaxElements)),
		scalarRule("ordered-by", zeroOrOne, stringValue(&n.OrderedBy)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func buildList(c *context, s *yang.Statement) *yang.List {
	n := &yang.List{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("when", zeroOrOne, whenNode(&n.When)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		scalarRule("key", zeroOrOne, stringValue(&n.Key)),
		scalarRule("unique", zeroOrMore, stringList(&n.Uniques)),
		scalarRule("config", zeroOrOne, booleanValue(&n.Config)),
		scalarRule("min-elements", zeroOrOne, numberValue(&n.MinElements)),
		scalarRule("max-elements", zeroOrOne, stringValue(&n.MaxElements)),
		scalarRule("ordered-by", zeroOrOne, stringValue(&n.OrderedBy)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
		nodeRule("typedef", zeroOrMore, typedefList(&n.Typedefs)),
		nodeRule("grouping", zeroOrMore, groupingList(&n.Groupings)),
		nodeRule("action", zeroOrMore, actionList(&n.Actions)),
		nodeRule("notification", zeroOrMore, notificationList(&n.Notifications)),
	}
	tbl = append(tbl, dataDefRules(&n.DataDefs)...)
	n.Unknown = apply(c, tbl)
	return n
}

func buildChoice(c *context, s *yang.Statement) *yang.Choice {
	n := &yang.Choice{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("when", zeroOrOne, whenNode(&n.When)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		scalarRule("default", zeroOrOne, stringValue(&n.Default)),
		scalarRule("config", zeroOrOne, booleanValue(&n.Config)),
		scalarRule("mandatory", zeroOrOne, booleanValue(&n.Mandatory)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
		nodeRule("case", zeroOrMore, func(c *context, s *yang.Statement) {
			n.Cases = append(n.Cases, buildCase(c, s))
		}),
		// Shorthand cases keep their position among explicit ones.
		nodeRule("container", zeroOrMore, func(c *context, s *yang.Statement) {
			n.Cases = append(n.Cases, buildContainer(c, s))
		}),
		nodeRule("leaf", zeroOrMore, func(c *context, s *yang.Statement) {
			n.Cases = append(n.Cases, buildLeaf(c, s))
		}),
		nodeRule("leaf-list", zeroOrMore, func(c *context, s *yang.Statement) {
			n.Cases = append(n.Cases, buildLeafList(c, s))
		}),
		nodeRule("list", zeroOrMore, func(c *context, s *yang.Statement) {
			n.Cases = append(n.Cases, buildList(c, s))
		}),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func buildCase(c *context, s *yang.Statement) *yang.Case {
	n := &yang.Case{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("when", zeroOrOne, whenNode(&n.When)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
	}
	tbl = append(tbl, dataDefRules(&n.DataDefs)...)
	n.Unknown = apply(c, tbl)
	return n
}

func buildUses(c *context, s *yang.Statement) *yang.Uses {
	n := &yang.Uses{Grouping: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("when", zeroOrOne, whenNode(&n.When)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
		nodeRule("refine", zeroOrMore, func(c *context, s *yang.Statement) {
			n.Refines = append(n.Refines, buildRefine(c, s))
		}),
		nodeRule("augment", zeroOrMore, func(c *context, s *yang.Statement) {
			n.Augments = append(n.Augments, buildAugmentation(c, s))
		}),
	}
	n.Unknown = apply(c, tbl)
	return n
}
