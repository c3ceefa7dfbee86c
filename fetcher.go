package goyang

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Fetcher retrieves YANG source text for the resolver.
type Fetcher interface {
	// Fetch locates a module or submodule. kind is "module" or
	// "submodule"; revision may be empty, in which case the latest known
	// revision must be returned. The ref names where the text came from
	// and shows up in diagnostics. A fetcher that has no such source
	// returns an error wrapping fs.ErrNotExist.
	Fetch(ctx context.Context, kind, name, revision string) (ref, text string, err error)
}

// candidates lists the file names tried for a module, most specific first.
func candidates(name, revision string) []string {
	if revision != "" {
		return []string{name + "@" + revision + ".yang", name + ".yang"}
	}
	return []string{name + ".yang"}
}

// latestRevisionFile picks the "<name>@<revision>.yang" entry with the
// lexicographically greatest revision, or "" when there is none. Used when
// a request leaves the revision empty and no unrevisioned file exists.
func latestRevisionFile(entries []string, name string) string {
	prefix := name + "@"
	best := ""
	for _, e := range entries {
		if strings.HasPrefix(e, prefix) && strings.HasSuffix(e, ".yang") && e > best {
			best = e
		}
	}
	return best
}

// --- Dir fetcher (single directory, lazy) ---

type dirFetcher struct {
	path string
}

// Dir creates a Fetcher that searches a single directory (no recursion)
// for "<name>@<revision>.yang" and "<name>.yang" files. An empty revision
// prefers "<name>.yang" and otherwise takes the latest revisioned file.
// Files are looked up lazily on each Fetch call.
func Dir(path string) (Fetcher, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	return &dirFetcher{path: path}, nil
}

// MustDir is like Dir but panics on error.
func MustDir(path string) Fetcher {
	f, err := Dir(path)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *dirFetcher) Fetch(ctx context.Context, kind, name, revision string) (string, string, error) {
	for _, file := range candidates(name, revision) {
		fullPath := filepath.Join(f.path, file)
		data, err := os.ReadFile(fullPath)
		if err == nil {
			return fullPath, string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fullPath, "", err
		}
	}
	if revision == "" {
		entries, err := os.ReadDir(f.path)
		if err != nil {
			return "", "", err
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		if file := latestRevisionFile(names, name); file != "" {
			fullPath := filepath.Join(f.path, file)
			data, err := os.ReadFile(fullPath)
			if err != nil {
				return fullPath, "", err
			}
			return fullPath, string(data), nil
		}
	}
	return "", "", fmt.Errorf("%s %q: %w", kind, name, fs.ErrNotExist)
}

// --- FS fetcher (any fs.FS, e.g. embed.FS or fstest.MapFS) ---

type fsFetcher struct {
	fsys fs.FS
}

// FS creates a Fetcher over any fs.FS using the same file naming as Dir.
func FS(fsys fs.FS) Fetcher {
	return &fsFetcher{fsys: fsys}
}

func (f *fsFetcher) Fetch(ctx context.Context, kind, name, revision string) (string, string, error) {
	for _, file := range candidates(name, revision) {
		data, err := fs.ReadFile(f.fsys, file)
		if err == nil {
			return file, string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return file, "", err
		}
	}
	if revision == "" {
		entries, err := fs.ReadDir(f.fsys, ".")
		if err != nil {
			return "", "", err
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		if file := latestRevisionFile(names, name); file != "" {
			data, err := fs.ReadFile(f.fsys, file)
			if err != nil {
				return file, "", err
			}
			return file, string(data), nil
		}
	}
	return "", "", fmt.Errorf("%s %q: %w", kind, name, fs.ErrNotExist)
}

// --- Map fetcher (in-memory, mostly for tests) ---

// MapFetcher serves sources from memory. Keys are "<name>" or
// "<name>@<revision>"; a revisioned request falls back to the bare name,
// an unrevisioned one to the latest revisioned key.
type MapFetcher map[string]string

func (m MapFetcher) Fetch(ctx context.Context, kind, name, revision string) (string, string, error) {
	keys := []string{name}
	if revision != "" {
		keys = []string{name + "@" + revision, name}
	}
	for _, key := range keys {
		if text, ok := m[key]; ok {
			return key + ".yang", text, nil
		}
	}
	if revision == "" {
		prefix := name + "@"
		best := ""
		for key := range m {
			if strings.HasPrefix(key, prefix) && key > best {
				best = key
			}
		}
		if best != "" {
			return best + ".yang", m[best], nil
		}
	}
	return "", "", fmt.Errorf("%s %q: %w", kind, name, fs.ErrNotExist)
}

// --- Multi fetcher ---

type multiFetcher struct {
	fetchers []Fetcher
}

// Multi combines fetchers; each Fetch tries them in order and the first
// hit wins. Only a fetcher error other than fs.ErrNotExist stops the scan.
func Multi(fetchers ...Fetcher) Fetcher {
	return &multiFetcher{fetchers: fetchers}
}

func (f *multiFetcher) Fetch(ctx context.Context, kind, name, revision string) (string, string, error) {
	for _, fetcher := range f.fetchers {
		ref, text, err := fetcher.Fetch(ctx, kind, name, revision)
		if err == nil {
			return ref, text, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return ref, "", err
		}
	}
	return "", "", fmt.Errorf("%s %q: %w", kind, name, fs.ErrNotExist)
}
