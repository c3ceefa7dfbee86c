package goyang

import "sync"

// Registry is an in-memory module cache, safe for concurrent use. Its
// Lookup method satisfies CacheLookup, so a shared Registry gives repeated
// Resolve calls cross-call deduplication:
//
//	reg := goyang.NewRegistry()
//	res, err := goyang.Resolve(ctx, "acme-system", "", fetcher,
//	    goyang.WithCache(reg.Lookup))
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]*Module // name -> revision -> module
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]map[string]*Module)}
}

// Add stores a module under its name and latest declared revision,
// replacing any previous entry for that pair.
func (r *Registry) Add(m *Module) {
	if m == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	revs, ok := r.modules[m.Name]
	if !ok {
		revs = make(map[string]*Module)
		r.modules[m.Name] = revs
	}
	revs[m.LatestRevision()] = m
}

// AddResolution stores every module of a successful resolution.
func (r *Registry) AddResolution(res *Resolution) {
	if res == nil {
		return
	}
	for _, rm := range res.Modules {
		r.Add(rm.Module)
	}
}

// Lookup returns the module stored under name and revision. An empty
// revision returns the lexicographically latest one.
func (r *Registry) Lookup(name, revision string) (*Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	revs, ok := r.modules[name]
	if !ok {
		return nil, false
	}
	if revision != "" {
		m, ok := revs[revision]
		return m, ok
	}
	var best string
	var bestM *Module
	for rev, m := range revs {
		if bestM == nil || rev > best {
			best, bestM = rev, m
		}
	}
	return bestM, bestM != nil
}

// Len reports how many (name, revision) pairs are stored.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, revs := range r.modules {
		n += len(revs)
	}
	return n
}
