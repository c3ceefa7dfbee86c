package goyang

import (
	"context"
	"errors"
	"log/slog"

	"github.com/golangsnmp/goyang/internal/build"
	"github.com/golangsnmp/goyang/internal/resolver"
	"github.com/golangsnmp/goyang/yang"
)

// ErrNoFetcher is returned when Resolve is called without a fetcher.
var ErrNoFetcher = errors.New("no module fetcher provided")

// ResolvedModule is one module that took part in a resolution: the one that
// was asked for or any module reached through imports. Revision is the
// module's latest declared revision, empty when it declares none.
type ResolvedModule struct {
	Name     string
	Revision string
	Module   *yang.Module
}

// Resolution is the outcome of a Resolve call. Modules is sorted by name
// and revision and is empty whenever Errors is not.
type Resolution struct {
	Modules  []ResolvedModule
	Errors   []yang.Diagnostic
	Warnings []yang.Diagnostic
}

// OK reports whether resolution succeeded, with or without warnings.
func (r *Resolution) OK() bool { return len(r.Errors) == 0 }

// Resolve loads the named module plus everything reachable from it:
// submodules through includes, merged into their owning module, and other
// modules through imports. Revision may be empty to take the latest the
// fetcher knows. Problems in the sources come back as diagnostics in the
// Resolution; the error return is reserved for fetcher failures, which
// abort resolution and propagate unchanged.
//
// Example:
//
//	fetcher, err := goyang.Dir("testdata/yang")
//	if err != nil {
//	    return err
//	}
//	res, err := goyang.Resolve(ctx, "acme-system", "", fetcher)
func Resolve(ctx context.Context, name, revision string, fetcher Fetcher, opts ...Option) (*Resolution, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if fetcher == nil {
		return nil, ErrNoFetcher
	}

	fetch := func(ctx context.Context, req resolver.Request) (resolver.Source, error) {
		ref, text, err := fetcher.Fetch(ctx, req.Kind.String(), req.Name, req.Revision)
		if err != nil {
			return resolver.Source{}, err
		}
		return resolver.Source{Ref: ref, Text: text}, nil
	}
	var cache resolver.CacheFunc
	if cfg.cache != nil {
		cache = func(name, revision string) (*yang.Module, bool) {
			return cfg.cache(name, revision)
		}
	}
	parse := func(sourceRef, text string, rep *build.Report) *build.Document {
		return parseSource(sourceRef, text, rep, cfg.logger)
	}

	r := resolver.New(fetch, cache, parse, cfg.logger)
	result, err := r.Resolve(ctx, name, revision)
	if err != nil {
		return nil, err
	}

	res := &Resolution{Errors: result.Errors, Warnings: result.Warnings}
	for _, m := range result.Modules {
		res.Modules = append(res.Modules, ResolvedModule{
			Name:     m.Name,
			Revision: m.Revision,
			Module:   m.Module,
		})
	}
	if cfg.logger != nil {
		cfg.logger.Log(ctx, slog.LevelDebug, "resolve done",
			slog.String("name", name), slog.Bool("ok", res.OK()))
	}
	return res, nil
}
