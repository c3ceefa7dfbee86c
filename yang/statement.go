package yang

import (
	"fmt"
	"io"
	"strings"
)

// Statement is one generic YANG statement:
//
//	[prefix:]keyword [argument] (";" / "{" *statement "}")
//
// It is the untyped output of the statement parser and the representation
// used for unknown statements on typed nodes. A Statement tree is built once
// per parse and never mutated afterwards.
type Statement struct {
	Prefix        string // "" for unprefixed keywords
	Keyword       string
	Argument      string
	HasArgument   bool
	Substatements []*Statement
	Meta          Metadata
}

// Arg returns the optional argument of s. The second return value is false
// when s has no argument.
func (s *Statement) Arg() (string, bool) { return s.Argument, s.HasArgument }

// FullKeyword returns the keyword including its prefix, if any.
func (s *Statement) FullKeyword() string {
	if s.Prefix == "" {
		return s.Keyword
	}
	return s.Prefix + ":" + s.Keyword
}

// Write serializes s to w as YANG text, indenting each nesting level by one
// tab beyond indent. The output reproduces the statement structure, not the
// original layout.
func (s *Statement) Write(w io.Writer, indent string) error {
	parts := []string{indent, s.FullKeyword()}
	if s.HasArgument {
		parts = append(parts, fmt.Sprintf(" %q", s.Argument))
	}
	if len(s.Substatements) == 0 {
		_, err := fmt.Fprintf(w, "%s;\n", strings.Join(parts, ""))
		return err
	}
	if _, err := fmt.Fprintf(w, "%s {\n", strings.Join(parts, "")); err != nil {
		return err
	}
	for _, sub := range s.Substatements {
		if err := sub.Write(w, indent+"\t"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s}\n", indent)
	return err
}

// String returns the serialized form of s.
func (s *Statement) String() string {
	var b strings.Builder
	_ = s.Write(&b, "")
	return b.String()
}
