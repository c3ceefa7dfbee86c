package build

import (
	"strings"

	"github.com/golangsnmp/goyang/yang"
)

// context tracks the chain of statements being mapped so diagnostics can
// name the exact location in the tree. Contexts form a linked list back to
// the top-level statement; all of them share one report.
type context struct {
	stmt   *yang.Statement
	parent *context
	report *Report
}

func (c *context) push(s *yang.Statement) *context {
	return &context{stmt: s, parent: c, report: c.report}
}

// path renders the chain from the top-level statement down to the current
// one, such as "/module=acme/container=system/leaf=hostname". Statements
// without a usable argument show up as "<unnamed keyword>".
func (c *context) path() string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	c.render(&b)
	return b.String()
}

func (c *context) render(b *strings.Builder) {
	if c.parent != nil {
		c.parent.render(b)
	}
	b.WriteString(pathSegment(c.stmt))
}

func pathSegment(s *yang.Statement) string {
	name := ""
	if s.HasArgument {
		name = strings.TrimSpace(s.Argument)
	}
	if name == "" {
		name = "<unnamed " + s.Keyword + ">"
	}
	return "/" + s.FullKeyword() + "=" + name
}
