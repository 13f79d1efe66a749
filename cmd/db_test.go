package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB(t *testing.T) {
	t.Run("list databases", func(t *testing.T) {
		env := newBareEnv(t)
		env.run("init")
		env.run("init", "--db", "gradle")

		out := env.run("db")
		env.contains(out, "seaside.db  shared")
		env.contains(out, "seaside-gradle.db  shared")
	})

	t.Run("mark as local and shared", func(t *testing.T) {
		env := newBareEnv(t)
		env.run("init", "--db", "notes")

		env.contains(env.run("db", "notes", "--local"), "seaside-notes.db marked as local")
		env.contains(env.run("db", "notes"), "seaside-notes.db: local")

		data, err := os.ReadFile(filepath.Join(env.dir, ".seaside", ".gitignore"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "seaside-notes.db")

		env.contains(env.run("db", "notes", "--share"), "marked as shared")
		env.contains(env.run("db", "notes"), "seaside-notes.db: shared")
	})

	t.Run("no catalog", func(t *testing.T) {
		env := newBareEnv(t)

		_, err := env.runErr("db")
		assert.Error(t, err)
	})
}
