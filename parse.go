package goyang

import (
	"errors"
	"log/slog"

	"github.com/golangsnmp/goyang/internal/build"
	"github.com/golangsnmp/goyang/internal/parser"
	"github.com/golangsnmp/goyang/yang"
)

// ParseResult is the outcome of parsing one YANG source. On success exactly
// one of Module and Submodule is set. Warnings may be present either way.
type ParseResult struct {
	Module    *yang.Module
	Submodule *yang.Submodule
	Errors    []yang.Diagnostic
	Warnings  []yang.Diagnostic
}

// OK reports whether parsing produced a usable module or submodule.
func (r *ParseResult) OK() bool { return len(r.Errors) == 0 }

// Parse parses a single YANG source without resolving its imports or
// includes. The sourceRef names where the text came from (a filename,
// usually) and is recorded on every statement's metadata.
//
// Example:
//
//	res := goyang.Parse("acme.yang", text)
//	if !res.OK() {
//	    for _, d := range res.Errors {
//	        fmt.Println(d)
//	    }
//	}
func Parse(sourceRef, text string, opts ...Option) *ParseResult {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	rep := &build.Report{}
	doc := parseSource(sourceRef, text, rep, cfg.logger)
	res := &ParseResult{Errors: rep.Errors, Warnings: rep.Warnings}
	if res.OK() {
		res.Module = doc.Module
		res.Submodule = doc.Submodule
	}
	return res
}

// parseSource runs the parser and the mapper over one source, converting a
// fatal syntax error into a single diagnostic in rep. This is also the
// parse callback handed to the resolver.
func parseSource(sourceRef, text string, rep *build.Report, logger *slog.Logger) *build.Document {
	stmts, err := parser.Parse(sourceRef, text, logger)
	if err != nil {
		var serr *parser.SyntaxError
		if errors.As(err, &serr) {
			rep.Errors = append(rep.Errors, serr.Diagnostic())
		} else {
			rep.Error(yang.Position{Line: 1, Column: 1}, "%s", err)
		}
		return &build.Document{}
	}
	return build.Build(stmts, rep, logger)
}
