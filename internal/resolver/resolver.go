// Package resolver loads a module and its transitive imports and includes.
// Resolution is strictly sequential and depth-first: every import and every
// include runs to completion before the next one starts, so fetch order and
// diagnostic order are deterministic. The cycle-detection table lives in a
// per-call context and is never shared between calls; cross-call reuse goes
// through the injected cache lookup instead.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/golangsnmp/goyang/internal/build"
	"github.com/golangsnmp/goyang/internal/types"
	"github.com/golangsnmp/goyang/yang"
)

// Kind tells a fetcher whether a module or a submodule is wanted.
type Kind int

const (
	KindModule Kind = iota
	KindSubmodule
)

func (k Kind) String() string {
	if k == KindSubmodule {
		return "submodule"
	}
	return "module"
}

// Request identifies one source to fetch. An empty Revision asks for the
// latest known revision.
type Request struct {
	Name     string
	Revision string
	Kind     Kind
}

// Source is fetched YANG text together with a reference naming where it
// came from, used in diagnostics.
type Source struct {
	Ref  string
	Text string
}

// FetchFunc retrieves the source text for a request. Returned errors are
// not diagnostics: they abort the whole resolution and propagate to the
// caller unchanged.
type FetchFunc func(ctx context.Context, req Request) (Source, error)

// CacheFunc looks up an already resolved module. Revision may be empty.
type CacheFunc func(name, revision string) (*yang.Module, bool)

// ParseFunc parses one source into the typed model, filling rep with the
// diagnostics it produced.
type ParseFunc func(sourceRef, text string, rep *build.Report) *build.Document

// Resolved is one module that took part in a successful resolution.
type Resolved struct {
	Name     string
	Revision string
	Module   *yang.Module
}

// Result aggregates everything a resolution produced. Modules is empty
// whenever Errors is not.
type Result struct {
	Modules  []*Resolved
	Errors   []yang.Diagnostic
	Warnings []yang.Diagnostic
}

// Resolver wires the external collaborators together. The zero value is
// not usable; construct with New.
type Resolver struct {
	fetch FetchFunc
	cache CacheFunc
	parse ParseFunc
	log   types.Logger
}

// New returns a Resolver using fetch for source retrieval, cache for
// cross-call module reuse (may be nil) and parse to turn text into the
// typed model.
func New(fetch FetchFunc, cache CacheFunc, parse ParseFunc, logger *slog.Logger) *Resolver {
	return &Resolver{
		fetch: fetch,
		cache: cache,
		parse: parse,
		log:   types.Logger{L: types.Component(logger, "resolver")},
	}
}

type state int

const (
	beingResolved state = iota
	failed
	resolved
)

// run is the per-call resolution context.
type run struct {
	*Resolver
	ctx    context.Context
	table  map[string]map[string]state
	report *build.Report
	loaded []*Resolved
}

func (r *run) state(name, revision string) (state, bool) {
	s, ok := r.table[name][revision]
	return s, ok
}

func (r *run) setState(name, revision string, s state) {
	revs, ok := r.table[name]
	if !ok {
		revs = make(map[string]state)
		r.table[name] = revs
	}
	revs[revision] = s
}

func revisionLabel(revision string) string {
	if revision == "" {
		return "<unspecified revision>"
	}
	return revision
}

// Resolve loads the named module, all submodules reachable through its
// includes and all modules reachable through its imports. The error return
// is reserved for fetch failures; everything the sources themselves got
// wrong comes back as diagnostics in the Result.
func (rv *Resolver) Resolve(ctx context.Context, name, revision string) (*Result, error) {
	r := &run{
		Resolver: rv,
		ctx:      ctx,
		table:    make(map[string]map[string]state),
		report:   &build.Report{},
	}
	rv.log.Log(slog.LevelDebug, "resolution started",
		slog.String("name", name), slog.String("revision", revisionLabel(revision)))

	if rv.cache != nil {
		if _, ok := rv.cache(name, revision); ok {
			rv.log.Log(slog.LevelDebug, "resolution served from cache",
				slog.String("name", name), slog.String("revision", revisionLabel(revision)))
			return &Result{}, nil
		}
	}

	m, err := r.fetchAndBuild(name, revision)
	if err != nil {
		return nil, err
	}
	if m != nil {
		r.setState(name, revision, resolved)
		r.loaded = append(r.loaded, &Resolved{
			Name:     name,
			Revision: m.LatestRevision(),
			Module:   m,
		})
	}

	res := &Result{Errors: r.report.Errors, Warnings: r.report.Warnings}
	if len(res.Errors) > 0 {
		rv.log.Log(slog.LevelDebug, "resolution failed",
			slog.String("name", name), slog.Int("errors", len(res.Errors)))
		return res, nil
	}
	sort.Slice(r.loaded, func(i, j int) bool {
		if r.loaded[i].Name != r.loaded[j].Name {
			return r.loaded[i].Name < r.loaded[j].Name
		}
		return r.loaded[i].Revision < r.loaded[j].Revision
	})
	res.Modules = r.loaded
	rv.log.Log(slog.LevelDebug, "resolution finished",
		slog.String("name", name), slog.Int("modules", len(res.Modules)),
		slog.Int("warnings", len(res.Warnings)))
	return res, nil
}

// fetchAndBuild retrieves and validates one module, then resolves its
// includes and imports. It performs no cycle-table bookkeeping of its own;
// resolveImport wraps it with that for imported modules. A nil module with
// a nil error means the failure is already in the report.
func (r *run) fetchAndBuild(name, revision string) (*yang.Module, error) {
	src, err := r.fetch(r.ctx, Request{Name: name, Revision: revision, Kind: KindModule})
	if err != nil {
		return nil, fmt.Errorf("fetching module %q: %w", name, err)
	}
	r.log.Trace("module fetched", slog.String("name", name), slog.String("ref", src.Ref))

	before := len(r.report.Errors)
	doc := r.parse(src.Ref, src.Text, r.report)
	if len(r.report.Errors) > before {
		return nil, nil
	}
	if doc.Module == nil {
		r.report.Error(topPos(doc),
			"Expected a module '%s', but found a submodule.", name)
		return nil, nil
	}
	m := doc.Module
	if m.Name != name {
		r.report.Error(m.Meta.Pos,
			"Expected a module named '%s', but found '%s'.", name, m.Name)
		return nil, nil
	}
	if revision != "" {
		if latest := m.LatestRevision(); latest != revision {
			r.report.Error(m.Meta.Pos,
				"Expected revision '%s' of '%s', but found '%s'.",
				revision, name, revisionLabel(latest))
			return nil, nil
		}
	}

	subs, err := r.loadSubmodules(m, m.Includes, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	if len(r.report.Errors) > before {
		return nil, nil
	}
	m = merge(m, subs)

	for _, imp := range m.Imports {
		rev := ""
		if imp.RevisionDate != nil {
			rev = *imp.RevisionDate
		}
		if err := r.resolveImport(imp.Module, rev, imp.Meta.Pos); err != nil {
			return nil, err
		}
		if len(r.report.Errors) > before {
			return nil, nil
		}
	}
	return m, nil
}

// resolveImport resolves one imported module with full cycle and cache
// bookkeeping. Failures land in the report; previously failed keys stay
// silent because their errors were already recorded.
func (r *run) resolveImport(name, revision string, pos yang.Position) error {
	if r.cache != nil {
		if _, ok := r.cache(name, revision); ok {
			r.log.Trace("import served from cache",
				slog.String("name", name), slog.String("revision", revisionLabel(revision)))
			return nil
		}
	}
	switch s, ok := r.state(name, revision); {
	case ok && s == beingResolved:
		r.setState(name, revision, failed)
		r.report.Error(pos, "Detected an import loop for '%s@%s'!",
			name, revisionLabel(revision))
		return nil
	case ok && s == failed:
		return nil
	case ok && s == resolved:
		return nil
	}

	r.setState(name, revision, beingResolved)
	m, err := r.fetchAndBuild(name, revision)
	if err != nil {
		return err
	}
	if m == nil {
		r.setState(name, revision, failed)
		return nil
	}
	r.setState(name, revision, resolved)
	r.loaded = append(r.loaded, &Resolved{
		Name:     name,
		Revision: m.LatestRevision(),
		Module:   m,
	})
	return nil
}

func topPos(doc *build.Document) yang.Position {
	switch {
	case doc.Module != nil:
		return doc.Module.Meta.Pos
	case doc.Submodule != nil:
		return doc.Submodule.Meta.Pos
	}
	return yang.Position{Line: 1, Column: 1}
}
