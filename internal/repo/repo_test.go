package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBFileName(t *testing.T) {
	assert.Equal(t, "seaside.db", DBFileName(""))
	assert.Equal(t, "seaside-plugins.db", DBFileName("plugins"))
	assert.Equal(t, "custom.db", DBFileName("custom.db"))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Init(false, "", false, dir))
	assert.FileExists(t, filepath.Join(dir, Dir, DBFile))
	assert.FileExists(t, filepath.Join(dir, Dir, ".gitignore"))

	err := Init(false, "", false, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(true, "", false, dir))
}

func TestInitLocal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(false, "", false, dir))
	require.NoError(t, Init(false, "scratch", true, dir))

	root := filepath.Join(dir, Dir)
	ignored, err := IsIgnored("scratch", root)
	require.NoError(t, err)
	assert.True(t, ignored)

	ignored, err = IsIgnored("", root)
	require.NoError(t, err)
	assert.False(t, ignored)

	dbs, err := ListDBs(root)
	require.NoError(t, err)
	require.Len(t, dbs, 2)
	byName := map[string]DBInfo{}
	for _, d := range dbs {
		byName[d.Name] = d
	}
	assert.False(t, byName[""].Local)
	assert.True(t, byName["scratch"].Local)
	assert.Equal(t, "seaside-scratch.db", byName["scratch"].File)
}

func TestUnignoreDB(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(false, "", true, dir))
	root := filepath.Join(dir, Dir)

	require.NoError(t, UnignoreDB("", root))
	ignored, err := IsIgnored("", root)
	require.NoError(t, err)
	assert.False(t, ignored)

	content, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), localDBHeader)
	assert.Contains(t, string(content), "config.yaml")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(false, "", false, dir))
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	p, err := Discover("")
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(dir, Dir, DBFile))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(p)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Discover("missing")
	assert.ErrorIs(t, err, ErrNotInitialised)
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(false, "gradle", false, dir))
	t.Chdir(t.TempDir())

	p, err := Locate("gradle", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Dir, "seaside-gradle.db"), p)

	_, err = Locate("", dir)
	assert.ErrorIs(t, err, ErrNotInitialised)

	_, err = Locate("gradle", "")
	assert.ErrorIs(t, err, ErrNotInitialised, "discovery ignores dir")
}
