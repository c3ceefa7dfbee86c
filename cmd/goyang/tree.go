package main

import (
	"fmt"
	"io"

	"github.com/golangsnmp/goyang/yang"
)

func writeModuleTree(w io.Writer, m *yang.Module) {
	fmt.Fprintf(w, "module: %s\n", m.Name)
	if m.Namespace != "" {
		fmt.Fprintf(w, "  namespace: %s\n", m.Namespace)
	}
	if m.Prefix != "" {
		fmt.Fprintf(w, "  prefix: %s\n", m.Prefix)
	}
	if rev := m.LatestRevision(); rev != "" {
		fmt.Fprintf(w, "  revision: %s\n", rev)
	}
	for _, b := range m.Body {
		writeBody(w, b, "  ")
	}
}

func writeSubmoduleTree(w io.Writer, sm *yang.Submodule) {
	fmt.Fprintf(w, "submodule: %s\n", sm.Name)
	if sm.BelongsTo != "" {
		fmt.Fprintf(w, "  belongs-to: %s\n", sm.BelongsTo)
	}
	if rev := sm.LatestRevision(); rev != "" {
		fmt.Fprintf(w, "  revision: %s\n", rev)
	}
	for _, b := range sm.Body {
		writeBody(w, b, "  ")
	}
}

func writeBody(w io.Writer, b yang.BodyStatement, indent string) {
	next := indent + "   "
	switch n := b.(type) {
	case *yang.Container:
		fmt.Fprintf(w, "%s+-- container %s\n", indent, n.Name)
		for _, d := range n.DataDefs {
			writeBody(w, d, next)
		}
		for _, a := range n.Actions {
			writeOperation(w, "action", a.Name, a.Input, a.Output, next)
		}
		for _, nt := range n.Notifications {
			writeNotification(w, nt, next)
		}
	case *yang.Leaf:
		fmt.Fprintf(w, "%s+-- leaf %s (%s)\n", indent, n.Name, typeName(n.Type))
	case *yang.LeafList:
		fmt.Fprintf(w, "%s+-- leaf-list %s (%s)\n", indent, n.Name, typeName(n.Type))
	case *yang.List:
		key := ""
		if n.Key != nil {
			key = " [" + *n.Key + "]"
		}
		fmt.Fprintf(w, "%s+-- list %s%s\n", indent, n.Name, key)
		for _, d := range n.DataDefs {
			writeBody(w, d, next)
		}
		for _, a := range n.Actions {
			writeOperation(w, "action", a.Name, a.Input, a.Output, next)
		}
		for _, nt := range n.Notifications {
			writeNotification(w, nt, next)
		}
	case *yang.Choice:
		fmt.Fprintf(w, "%s+-- choice %s\n", indent, n.Name)
		for _, d := range n.Cases {
			writeBody(w, d, next)
		}
	case *yang.Case:
		fmt.Fprintf(w, "%s+-- case %s\n", indent, n.Name)
		for _, d := range n.DataDefs {
			writeBody(w, d, next)
		}
	case *yang.Uses:
		fmt.Fprintf(w, "%s+-- uses %s\n", indent, n.Grouping)
	case *yang.Grouping:
		fmt.Fprintf(w, "%s+-- grouping %s\n", indent, n.Name)
		for _, d := range n.DataDefs {
			writeBody(w, d, next)
		}
	case *yang.Typedef:
		fmt.Fprintf(w, "%s+-- typedef %s (%s)\n", indent, n.Name, typeName(n.Type))
	case *yang.Identity:
		fmt.Fprintf(w, "%s+-- identity %s\n", indent, n.Name)
	case *yang.Feature:
		fmt.Fprintf(w, "%s+-- feature %s\n", indent, n.Name)
	case *yang.Extension:
		fmt.Fprintf(w, "%s+-- extension %s\n", indent, n.Name)
	case *yang.Rpc:
		writeOperation(w, "rpc", n.Name, n.Input, n.Output, indent)
	case *yang.Notification:
		writeNotification(w, n, indent)
	case *yang.Augmentation:
		fmt.Fprintf(w, "%s+-- augment %s\n", indent, n.Target)
		for _, d := range n.DataDefs {
			writeBody(w, d, next)
		}
	case *yang.Deviation:
		fmt.Fprintf(w, "%s+-- deviation %s\n", indent, n.Target)
	}
}

func writeOperation(w io.Writer, kind, name string, in *yang.Input, out *yang.Output, indent string) {
	fmt.Fprintf(w, "%s+-- %s %s\n", indent, kind, name)
	next := indent + "   "
	if in != nil {
		fmt.Fprintf(w, "%s+-- input\n", next)
		for _, d := range in.DataDefs {
			writeBody(w, d, next+"   ")
		}
	}
	if out != nil {
		fmt.Fprintf(w, "%s+-- output\n", next)
		for _, d := range out.DataDefs {
			writeBody(w, d, next+"   ")
		}
	}
}

func writeNotification(w io.Writer, n *yang.Notification, indent string) {
	fmt.Fprintf(w, "%s+-- notification %s\n", indent, n.Name)
	for _, d := range n.DataDefs {
		writeBody(w, d, indent+"   ")
	}
}

func typeName(t *yang.Type) string {
	if t == nil {
		return "?"
	}
	return t.Name
}
