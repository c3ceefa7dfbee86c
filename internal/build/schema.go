package build

import "github.com/golangsnmp/goyang/yang"

func typedefList(dst *[]*yang.Typedef) nodeFn {
	return func(c *context, s *yang.Statement) {
		*dst = append(*dst, buildTypedef(c, s))
	}
}

func groupingList(dst *[]*yang.Grouping) nodeFn {
	return func(c *context, s *yang.Statement) {
		*dst = append(*dst, buildGrouping(c, s))
	}
}

func actionList(dst *[]*yang.Action) nodeFn {
	return func(c *context, s *yang.Statement) {
		*dst = append(*dst, buildAction(c, s))
	}
}

func notificationList(dst *[]*yang.Notification) nodeFn {
	return func(c *context, s *yang.Statement) {
		*dst = append(*dst, buildNotification(c, s))
	}
}

func mustList(dst *[]*yang.Must) nodeFn {
	return func(c *context, s *yang.Statement) {
		*dst = append(*dst, buildMust(c, s))
	}
}

func whenNode(dst **yang.When) nodeFn {
	var acc optional[*yang.When]
	return func(c *context, s *yang.Statement) {
		acc.set(buildWhen(c, s))
		*dst = nil
		if acc.ok() {
			*dst = acc.val
		}
	}
}

func buildMust(c *context, s *yang.Statement) *yang.Must {
	m := &yang.Must{Condition: identifier(c, s), Meta: s.Meta}
	tbl := restrictionRules(&m.ErrorMessage, &m.ErrorAppTag, &m.Description, &m.Reference)
	m.Unknown = apply(c, tbl)
	return m
}

func buildWhen(c *context, s *yang.Statement) *yang.When {
	w := &yang.When{Condition: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("description", zeroOrOne, stringValue(&w.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&w.Reference)),
	}
	w.Unknown = apply(c, tbl)
	return w
}

func buildGrouping(c *context, s *yang.Statement) *yang.Grouping {
	n := &yang.Grouping{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
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

func buildIdentity(c *context, s *yang.Statement) *yang.Identity {
	n := &yang.Identity{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("base", zeroOrMore, stringList(&n.Bases)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func buildFeature(c *context, s *yang.Statement) *yang.Feature {
	n := &yang.Feature{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func buildExtension(c *context, s *yang.Statement) *yang.Extension {
	n := &yang.Extension{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("argument", zeroOrOne, func(c *context, s *yang.Statement) {
			n.Argument = buildArgument(c, s)
		}),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func buildArgument(c *context, s *yang.Statement) *yang.Argument {
	a := &yang.Argument{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("yin-element", zeroOrOne, booleanValue(&a.YinElement)),
	}
	a.Unknown = apply(c, tbl)
	return a
}

func buildRpc(c *context, s *yang.Statement) *yang.Rpc {
	n := &yang.Rpc{Name: identifier(c, s), Meta: s.Meta}
	tbl := operationRules(&n.IfFeatures, &n.Status, &n.Typedefs, &n.Groupings,
		&n.Input, &n.Output, &n.Description, &n.Reference)
	n.Unknown = apply(c, tbl)
	return n
}

func buildAction(c *context, s *yang.Statement) *yang.Action {
	n := &yang.Action{Name: identifier(c, s), Meta: s.Meta}
	tbl := operationRules(&n.IfFeatures, &n.Status, &n.Typedefs, &n.Groupings,
		&n.Input, &n.Output, &n.Description, &n.Reference)
	n.Unknown = apply(c, tbl)
	return n
}

func operationRules(ifFeatures *[]string, status **yang.Status,
	typedefs *[]*yang.Typedef, groupings *[]*yang.Grouping,
	input **yang.Input, output **yang.Output, desc, ref **string) []rule {
	return []rule{
		scalarRule("if-feature", zeroOrMore, stringList(ifFeatures)),
		scalarRule("status", zeroOrOne, statusValue(status)),
		scalarRule("description", zeroOrOne, stringValue(desc)),
		scalarRule("reference", zeroOrOne, stringValue(ref)),
		nodeRule("typedef", zeroOrMore, typedefList(typedefs)),
		nodeRule("grouping", zeroOrMore, groupingList(groupings)),
		nodeRule("input", zeroOrOne, func(c *context, s *yang.Statement) {
			*input = buildInput(c, s)
		}),
		nodeRule("output", zeroOrOne, func(c *context, s *yang.Statement) {
			*output = buildOutput(c, s)
		}),
	}
}

func buildInput(c *context, s *yang.Statement) *yang.Input {
	noArgument(c, s)
	n := &yang.Input{Meta: s.Meta}
	tbl := []rule{
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		nodeRule("typedef", zeroOrMore, typedefList(&n.Typedefs)),
		nodeRule("grouping", zeroOrMore, groupingList(&n.Groupings)),
	}
	tbl = append(tbl, dataDefRules(&n.DataDefs)...)
	n.Unknown = apply(c, tbl)
	return n
}

func buildOutput(c *context, s *yang.Statement) *yang.Output {
	noArgument(c, s)
	n := &yang.Output{Meta: s.Meta}
	tbl := []rule{
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		nodeRule("typedef", zeroOrMore, typedefList(&n.Typedefs)),
		nodeRule("grouping", zeroOrMore, groupingList(&n.Groupings)),
	}
	tbl = append(tbl, dataDefRules(&n.DataDefs)...)
	n.Unknown = apply(c, tbl)
	return n
}

func buildNotification(c *context, s *yang.Statement) *yang.Notification {
	n := &yang.Notification{Name: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		nodeRule("typedef", zeroOrMore, typedefList(&n.Typedefs)),
		nodeRule("grouping", zeroOrMore, groupingList(&n.Groupings)),
	}
	tbl = append(tbl, dataDefRules(&n.DataDefs)...)
	n.Unknown = apply(c, tbl)
	return n
}

func buildAugmentation(c *context, s *yang.Statement) *yang.Augmentation {
	n := &yang.Augmentation{Target: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("when", zeroOrOne, whenNode(&n.When)),
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		scalarRule("status", zeroOrOne, statusValue(&n.Status)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
		nodeRule("case", zeroOrMore, func(c *context, s *yang.Statement) {
			n.DataDefs = append(n.DataDefs, buildCase(c, s))
		}),
		nodeRule("action", zeroOrMore, actionList(&n.Actions)),
		nodeRule("notification", zeroOrMore, notificationList(&n.Notifications)),
	}
	tbl = append(tbl, dataDefRules(&n.DataDefs)...)
	n.Unknown = apply(c, tbl)
	return n
}

func buildDeviation(c *context, s *yang.Statement) *yang.Deviation {
	n := &yang.Deviation{Target: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
		nodeRule("deviate", zeroOrMore, func(c *context, s *yang.Statement) {
			n.Items = append(n.Items, buildDeviationItem(c, s))
		}),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func buildDeviationItem(c *context, s *yang.Statement) *yang.DeviationItem {
	n := &yang.DeviationItem{Aspect: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		nodeRule("type", zeroOrOne, typeNode(&n.Type)),
		scalarRule("units", zeroOrOne, stringValue(&n.Units)),
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		scalarRule("unique", zeroOrMore, stringList(&n.Uniques)),
		scalarRule("default", zeroOrMore, stringList(&n.Defaults)),
		scalarRule("config", zeroOrOne, booleanValue(&n.Config)),
		scalarRule("mandatory", zeroOrOne, booleanValue(&n.Mandatory)),
		scalarRule("min-elements", zeroOrOne, numberValue(&n.MinElements)),
		scalarRule("max-elements", zeroOrOne, stringValue(&n.MaxElements)),
	}
	n.Unknown = apply(c, tbl)
	return n
}

func buildRefine(c *context, s *yang.Statement) *yang.Refine {
	n := &yang.Refine{Target: identifier(c, s), Meta: s.Meta}
	tbl := []rule{
		scalarRule("if-feature", zeroOrMore, stringList(&n.IfFeatures)),
		nodeRule("must", zeroOrMore, mustList(&n.Musts)),
		scalarRule("presence", zeroOrOne, stringValue(&n.Presence)),
		scalarRule("default", zeroOrMore, stringList(&n.Defaults)),
		scalarRule("units", zeroOrOne, stringValue(&n.Units)),
		scalarRule("config", zeroOrOne, booleanValue(&n.Config)),
		scalarRule("mandatory", zeroOrOne, booleanValue(&n.Mandatory)),
		scalarRule("min-elements", zeroOrOne, numberValue(&n.MinElements)),
		scalarRule("max-elements", zeroOrOne, stringValue(&n.MaxElements)),
		scalarRule("description", zeroOrOne, stringValue(&n.Description)),
		scalarRule("reference", zeroOrOne, stringValue(&n.Reference)),
	}
	n.Unknown = apply(c, tbl)
	return n
}
