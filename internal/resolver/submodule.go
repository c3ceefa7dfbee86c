package resolver

import (
	"fmt"
	"log/slog"

	"github.com/golangsnmp/goyang/yang"
)

// loadSubmodules fetches every submodule reachable from the given includes,
// depth-first, with nested includes flattened into the returned list right
// after their parent. Includes already seen during this resolution are
// skipped so diamond-shaped include graphs load each submodule once. Any
// validation failure lands in the report and is fatal for the whole
// resolution; only fetch failures come back as an error.
func (r *run) loadSubmodules(owner *yang.Module, includes []*yang.Include, seen map[string]bool) ([]*yang.Submodule, error) {
	var subs []*yang.Submodule
	for _, inc := range includes {
		rev := ""
		if inc.RevisionDate != nil {
			rev = *inc.RevisionDate
		}
		key := inc.Submodule + "@" + rev
		if seen[key] {
			continue
		}
		seen[key] = true

		src, err := r.fetch(r.ctx, Request{Name: inc.Submodule, Revision: rev, Kind: KindSubmodule})
		if err != nil {
			return nil, fmt.Errorf("fetching submodule %q: %w", inc.Submodule, err)
		}
		r.log.Trace("submodule fetched",
			slog.String("name", inc.Submodule), slog.String("ref", src.Ref))

		before := len(r.report.Errors)
		doc := r.parse(src.Ref, src.Text, r.report)
		if len(r.report.Errors) > before {
			return nil, nil
		}
		if doc.Submodule == nil {
			r.report.Error(topPos(doc),
				"Expected a submodule '%s', but found a module.", inc.Submodule)
			return nil, nil
		}
		sub := doc.Submodule
		if sub.Name != inc.Submodule {
			r.report.Error(sub.Meta.Pos,
				"Expected a submodule named '%s', but found '%s'.", inc.Submodule, sub.Name)
			return nil, nil
		}
		if rev != "" {
			if latest := sub.LatestRevision(); latest != rev {
				r.report.Error(sub.Meta.Pos,
					"Expected revision '%s' of '%s', but found '%s'.",
					rev, inc.Submodule, revisionLabel(latest))
				return nil, nil
			}
		}
		if sub.BelongsTo != owner.Name {
			r.report.Error(sub.Meta.Pos,
				"Submodule '%s' belongs to '%s', not to '%s'.",
				sub.Name, sub.BelongsTo, owner.Name)
			return nil, nil
		}
		subs = append(subs, sub)

		nested, err := r.loadSubmodules(owner, sub.Includes, seen)
		if err != nil {
			return nil, err
		}
		if len(r.report.Errors) > before {
			return nil, nil
		}
		subs = append(subs, nested...)
	}
	return subs, nil
}

// merge folds the loaded submodules into their owning module: the module's
// own imports come first, then each submodule's in load order, and the
// body is concatenated the same way. The result is a fresh value; the
// parsed module is left untouched.
func merge(m *yang.Module, subs []*yang.Submodule) *yang.Module {
	if len(subs) == 0 {
		return m
	}
	merged := *m
	merged.Imports = append([]*yang.Import(nil), m.Imports...)
	merged.Body = append([]yang.BodyStatement(nil), m.Body...)
	for _, sub := range subs {
		merged.Imports = append(merged.Imports, sub.Imports...)
		merged.Body = append(merged.Body, sub.Body...)
	}
	return &merged
}
