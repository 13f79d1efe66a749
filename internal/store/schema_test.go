package store_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	db := s.DB()

	fsys := fstest.MapFS{
		"m/001_entries.sql": {Data: []byte("CREATE TABLE IF NOT EXISTS entries (id INTEGER PRIMARY KEY)")},
		"m/002_tags.sql":    {Data: []byte("CREATE TABLE tags (name TEXT)")},
		"m/README":          {Data: []byte("ignored")},
	}

	v, err := store.Migrate(ctx, db, fsys, "m")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	// 002 has no IF NOT EXISTS, so a second run would fail if it re-applied.
	v, err = store.Migrate(ctx, db, fsys, "m")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = store.Migrate(ctx, db, fstest.MapFS{"m/001_entries.sql": fsys["m/001_entries.sql"]}, "m")
	assert.ErrorIs(t, err, store.ErrSchemaTooNew)
}

func TestMigrate_BadNames(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"no prefix", fstest.MapFS{"m/entries.sql": {}}},
		{"not a number", fstest.MapFS{"m/abc_entries.sql": {}}},
		{"duplicate", fstest.MapFS{"m/001_a.sql": {}, "m/1_b.sql": {}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Migrate(ctx, s.DB(), tc.fsys, "m")
			assert.Error(t, err)
		})
	}
}
