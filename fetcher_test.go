package goyang_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/golangsnmp/goyang"
)

func TestMapFetcherRevisionFallback(t *testing.T) {
	f := goyang.MapFetcher{
		"a":            "module a {}",
		"a@2026-01-01": "module a { revision 2026-01-01; }",
	}
	ctx := context.Background()

	ref, text, err := f.Fetch(ctx, "module", "a", "2026-01-01")
	require.NoError(t, err)
	require.Equal(t, "a@2026-01-01.yang", ref)
	require.Contains(t, text, "revision")

	// Unknown revision falls back to the bare name.
	ref, _, err = f.Fetch(ctx, "module", "a", "2020-01-01")
	require.NoError(t, err)
	require.Equal(t, "a.yang", ref)

	// No bare key: an empty revision takes the latest revisioned one.
	f = goyang.MapFetcher{
		"b@2024-01-01": "module b { revision 2024-01-01; }",
		"b@2026-06-30": "module b { revision 2026-06-30; }",
	}
	ref, text, err = f.Fetch(ctx, "module", "b", "")
	require.NoError(t, err)
	require.Equal(t, "b@2026-06-30.yang", ref)
	require.Contains(t, text, "2026-06-30")

	_, _, err = f.Fetch(ctx, "module", "missing", "")
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorContains(t, err, `module "missing"`)
}

func TestFSFetcher(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yang":            {Data: []byte("module a {}")},
		"b@2025-06-01.yang": {Data: []byte("module b {}")},
	}
	f := goyang.FS(fsys)
	ctx := context.Background()

	ref, text, err := f.Fetch(ctx, "module", "a", "")
	require.NoError(t, err)
	require.Equal(t, "a.yang", ref)
	require.Equal(t, "module a {}", text)

	ref, _, err = f.Fetch(ctx, "module", "b", "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, "b@2025-06-01.yang", ref)

	// Without the revision the latest revisioned file is taken.
	ref, _, err = f.Fetch(ctx, "module", "b", "")
	require.NoError(t, err)
	require.Equal(t, "b@2025-06-01.yang", ref)

	_, _, err = f.Fetch(ctx, "module", "c", "")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFSFetcherPicksLatestRevision(t *testing.T) {
	fsys := fstest.MapFS{
		"m@2024-05-01.yang": {Data: []byte("module m { revision 2024-05-01; }")},
		"m@2026-01-15.yang": {Data: []byte("module m { revision 2026-01-15; }")},
		"m@2025-03-20.yang": {Data: []byte("module m { revision 2025-03-20; }")},
	}
	ref, text, err := goyang.FS(fsys).Fetch(context.Background(), "module", "m", "")
	require.NoError(t, err)
	require.Equal(t, "m@2026-01-15.yang", ref)
	require.Contains(t, text, "2026-01-15")

	// An unrevisioned file still wins over revisioned ones.
	fsys["m.yang"] = &fstest.MapFile{Data: []byte("module m {}")}
	ref, _, err = goyang.FS(fsys).Fetch(context.Background(), "module", "m", "")
	require.NoError(t, err)
	require.Equal(t, "m.yang", ref)
}

func TestDirFetcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.yang")
	require.NoError(t, os.WriteFile(path, []byte("module a {}"), 0o644))

	f, err := goyang.Dir(dir)
	require.NoError(t, err)

	ref, text, err := f.Fetch(context.Background(), "module", "a", "")
	require.NoError(t, err)
	require.Equal(t, path, ref)
	require.Equal(t, "module a {}", text)

	_, _, err = f.Fetch(context.Background(), "module", "b", "")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDirFetcherPicksLatestRevision(t *testing.T) {
	dir := t.TempDir()
	for _, rev := range []string{"2024-02-02", "2025-08-08"} {
		file := filepath.Join(dir, "a@"+rev+".yang")
		require.NoError(t, os.WriteFile(file, []byte("module a { revision "+rev+"; }"), 0o644))
	}
	f, err := goyang.Dir(dir)
	require.NoError(t, err)

	ref, text, err := f.Fetch(context.Background(), "module", "a", "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "a@2025-08-08.yang"), ref)
	require.Contains(t, text, "2025-08-08")
}

func TestDirRejectsFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := goyang.Dir(path)
	require.Error(t, err)

	_, err = goyang.Dir(filepath.Join(dir, "absent"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMultiFetcherFirstHitWins(t *testing.T) {
	first := goyang.MapFetcher{"a": "module a {} // first"}
	second := goyang.MapFetcher{
		"a": "module a {} // second",
		"b": "module b {}",
	}
	f := goyang.Multi(first, second)
	ctx := context.Background()

	_, text, err := f.Fetch(ctx, "module", "a", "")
	require.NoError(t, err)
	require.Contains(t, text, "first")

	_, text, err = f.Fetch(ctx, "module", "b", "")
	require.NoError(t, err)
	require.Contains(t, text, "module b")

	_, _, err = f.Fetch(ctx, "module", "c", "")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
