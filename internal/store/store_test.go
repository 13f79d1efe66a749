package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore creates a temporary SQLite store for testing.
func setupStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

func add(t *testing.T, s *store.SQLiteStore, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, s.Add(context.Background(), store.Entry{
			Path:   tree.MustParsePath(p),
			Author: "alice",
		}), "add %s", p)
	}
}

func pathsOf(entries []store.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path.String()
	}
	return out
}

func TestStore_AddAndGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	err := s.Add(ctx, store.Entry{
		Path:        tree.MustParsePath("deps|compile"),
		Description: "Compile classpath",
		Author:      "alice",
	})
	require.NoError(t, err)

	e, err := s.Get(ctx, tree.MustParsePath("deps|compile"))
	require.NoError(t, err)
	assert.Equal(t, "deps|compile", e.Path.String())
	assert.Equal(t, "Compile classpath", e.Description)
	assert.Equal(t, "alice", e.Author)
	assert.Len(t, e.Key, 8)
	assert.NotZero(t, e.CreatedAt)

	j := e.ToJSON()
	assert.Equal(t, 2, j.Depth)
	assert.Equal(t, "deps|compile", j.Path)
}

func TestStore_AddDuplicate(t *testing.T) {
	s := setupStore(t)
	add(t, s, "a")

	err := s.Add(context.Background(), store.Entry{Path: tree.MustParsePath("a"), Author: "bob"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestStore_AddZeroPath(t *testing.T) {
	s := setupStore(t)
	err := s.Add(context.Background(), store.Entry{Author: "bob"})
	assert.ErrorIs(t, err, tree.ErrMalformedPath)
}

func TestStore_GetMissing(t *testing.T) {
	s := setupStore(t)
	_, err := s.Get(context.Background(), tree.MustParsePath("nope"))
	assert.ErrorIs(t, err, store.ErrNotFound)

	ok, err := s.Exists(context.Background(), tree.MustParsePath("nope"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_List(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	add(t, s, "a", "a|x", "ab", "a|x|y", "b", "a|z")

	all, err := s.List(ctx, tree.Path{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a|x", "ab", "a|x|y", "b", "a|z"}, pathsOf(all))

	// "ab" shares a string prefix with "a" but is not a descendant.
	sub, err := s.List(ctx, tree.MustParsePath("a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a|x", "a|x|y", "a|z"}, pathsOf(sub))

	leaf, err := s.List(ctx, tree.MustParsePath("a|x|y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a|x|y"}, pathsOf(leaf))
}

func TestStore_ListWildcardCharacters(t *testing.T) {
	s := setupStore(t)
	add(t, s, "a_b", "a_b|1", "axb", "axb|1", "a%", "a%|1", "aZ|1")

	sub, err := s.List(context.Background(), tree.MustParsePath("a_b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a_b", "a_b|1"}, pathsOf(sub))

	pct, err := s.List(context.Background(), tree.MustParsePath("a%"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a%", "a%|1"}, pathsOf(pct))
}

func TestStore_ListUnicode(t *testing.T) {
	s := setupStore(t)
	add(t, s, "größe", "größe|ä", "größer|b")

	sub, err := s.List(context.Background(), tree.MustParsePath("größe"))
	require.NoError(t, err)
	assert.Equal(t, []string{"größe", "größe|ä"}, pathsOf(sub))
}

func TestStore_CountChildren(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	add(t, s, "a", "a|x", "a|y", "a|x|deep", "ab|z")

	n, err := s.CountChildren(ctx, tree.MustParsePath("a"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.CountChildren(ctx, tree.MustParsePath("a|y"))
	require.NoError(t, err)
	assert.Zero(t, n)

	total, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestStore_Describe(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	add(t, s, "a")

	require.NoError(t, s.Describe(ctx, tree.MustParsePath("a"), "Alpha"))
	e, err := s.Get(ctx, tree.MustParsePath("a"))
	require.NoError(t, err)
	assert.Equal(t, "Alpha", e.Description)

	err = s.Describe(ctx, tree.MustParsePath("missing"), "x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("single", func(t *testing.T) {
		s := setupStore(t)
		add(t, s, "a", "a|x")
		require.NoError(t, s.Delete(ctx, tree.MustParsePath("a")))

		all, err := s.List(ctx, tree.Path{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a|x"}, pathsOf(all))

		assert.ErrorIs(t, s.Delete(ctx, tree.MustParsePath("a")), store.ErrNotFound)
	})

	t.Run("descendants", func(t *testing.T) {
		s := setupStore(t)
		add(t, s, "a", "a|x", "a|x|y", "ab")
		n, err := s.DeleteDescendants(ctx, tree.MustParsePath("a"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		all, err := s.List(ctx, tree.Path{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "ab"}, pathsOf(all))
	})

	t.Run("tree", func(t *testing.T) {
		s := setupStore(t)
		add(t, s, "a", "a|x", "a|x|y", "ab")
		n, err := s.DeleteTree(ctx, tree.MustParsePath("a"))
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		all, err := s.List(ctx, tree.Path{})
		require.NoError(t, err)
		assert.Equal(t, []string{"ab"}, pathsOf(all))

		_, err = s.DeleteTree(ctx, tree.MustParsePath("a"))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestStore_Checkpoint(t *testing.T) {
	s := setupStore(t)
	add(t, s, "a")
	require.NoError(t, s.Checkpoint(context.Background()))
}

func TestStore_Atomic(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		s := setupStore(t)
		err := s.Atomic(ctx, func(rw store.ReadWriter) error {
			for _, p := range []string{"a", "a|b"} {
				if err := rw.Add(ctx, store.Entry{Path: tree.MustParsePath(p), Author: "alice"}); err != nil {
					return err
				}
			}
			// Reads inside the transaction see its own writes.
			ok, err := rw.Exists(ctx, tree.MustParsePath("a|b"))
			require.NoError(t, err)
			assert.True(t, ok)
			return nil
		})
		require.NoError(t, err)

		n, err := s.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("rollback", func(t *testing.T) {
		s := setupStore(t)
		add(t, s, "keep")
		boom := errors.New("boom")
		err := s.Atomic(ctx, func(rw store.ReadWriter) error {
			require.NoError(t, rw.Add(ctx, store.Entry{Path: tree.MustParsePath("a"), Author: "alice"}))
			_, err := rw.DeleteTree(ctx, tree.MustParsePath("keep"))
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		all, err := s.List(ctx, tree.Path{})
		require.NoError(t, err)
		assert.Equal(t, []string{"keep"}, pathsOf(all))
	})
}
