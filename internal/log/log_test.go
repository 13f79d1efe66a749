package log

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a temporary database for one test.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	orig := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = orig
	})
}

func openRaw(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()
		SetProject("/test/project/.seaside")

		Log(Entry{
			Source:  "catalog:add",
			Author:  "test-user",
			Action:  "add",
			Path:    "plugins|gradle",
			Count:   1,
			Success: true,
		})

		var source, action, path, project string
		var count, success int
		err := openRaw(t).QueryRow("SELECT source, action, path, count, success, project FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &action, &path, &count, &success, &project)
		require.NoError(t, err)
		assert.Equal(t, "catalog:add", source)
		assert.Equal(t, "add", action)
		assert.Equal(t, "plugins|gradle", path)
		assert.Equal(t, 1, count)
		assert.Equal(t, 1, success)
		assert.Equal(t, hash("/test/project/.seaside"), project)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()
		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("success", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("catalog:rm", "remove").
			Author("test-user").
			Path("a|b").
			Count(3).
			Detail("recursive", true).
			Write(nil)

		var author, detail string
		var count, success int
		err := openRaw(t).QueryRow("SELECT author, count, success, detail FROM log ORDER BY id DESC LIMIT 1").
			Scan(&author, &count, &success, &detail)
		require.NoError(t, err)
		assert.Equal(t, "test-user", author)
		assert.Equal(t, 3, count)
		assert.Equal(t, 1, success)
		assert.JSONEq(t, `{"recursive": true}`, detail)
	})

	t.Run("failure", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("catalog:add", "add").Path("x|y").Write(errors.New("parent missing"))

		var success int
		var msg string
		var count sql.NullInt64
		err := openRaw(t).QueryRow("SELECT success, error, count FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &msg, &count)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "parent missing", msg)
		assert.False(t, count.Valid)
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project/.seaside")
	h2 := hash("/home/user/project/.seaside")
	h3 := hash("/home/user/other/.seaside")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 16)
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	orig := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = orig }()

	assert.Equal(t, filepath.Join(home, ".seaside", "log", "seaside-log.db"), DBPath())
}

func TestDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	l := Diagnostic(&buf, "seaside", false)
	l.Debug("hidden")
	l.Info("server ready", "transport", "stdio")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "server ready")
	assert.Contains(t, buf.String(), "stdio")

	buf.Reset()
	Diagnostic(&buf, "seaside", true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestQuery(t *testing.T) {
	useTempDB(t)

	_, err := Query(Filter{})
	assert.ErrorIs(t, err, ErrNotOpen)

	require.NoError(t, Open())
	SetProject("/a/.seaside")
	Event("catalog:add", "add").Author("alice").Path("deps").Count(1).Write(nil)
	Event("catalog:add", "add").Author("alice").Path("deps|compile").Count(1).Detail("parents", true).Write(nil)
	Event("catalog:add", "add").Author("alice").Path("depsx").Write(errors.New("boom"))
	SetProject("/b/.seaside")
	Event("catalog:add", "add").Author("bob").Path("deps").Write(nil)
	SetProject("/a/.seaside")

	all, err := Query(Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "depsx", all[0].Path)
	assert.False(t, all[0].Success)
	assert.Equal(t, "boom", all[0].Error)

	deps, err := Query(Filter{Path: "deps"})
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "deps|compile", deps[0].Path)
	assert.Equal(t, true, deps[0].Detail["parents"])

	last, err := Query(Filter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}
