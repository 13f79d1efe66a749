package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const depsYAML = `entries:
  - path: deps|compile
    description: Compile classpath
  - path: deps
    description: Dependencies
  - path: deps|runtime
`

func TestImport(t *testing.T) {
	t.Run("yaml in any order", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("deps.yaml", depsYAML)

		env.contains(env.run("import", "deps.yaml"), "3 imported, 0 updated, 0 unchanged")
		env.equals(env.run("tree", "deps", "--ascii", "--order", "name"), "deps\n|-- compile\n`-- runtime")
	})

	t.Run("reimport updates descriptions", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("deps.yaml", depsYAML)
		env.run("import", "deps.yaml")

		env.equals(env.run("import", "deps.yaml"), "0 imported, 0 updated, 3 unchanged")

		env.write("deps.txt", "deps\tBuild dependencies\n")
		env.contains(env.run("import", "deps.txt"), "0 imported, 1 updated")
		env.contains(env.run("find", "Build dependencies"), "deps")
	})

	t.Run("toml", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("tasks.toml", "[[entries]]\npath = \"tasks\"\n\n[[entries]]\npath = \"tasks|build\"\ndescription = \"Assemble\"\n")

		env.contains(env.run("import", "tasks.toml"), "2 imported")
		env.equals(env.run("height", "tasks"), "2")
	})

	t.Run("missing parents", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("orphan.txt", "a|b|c\n")

		_, err := env.runErr("import", "orphan.txt")
		assert.Error(t, err)
		env.equals(env.run("ls", "--paths-only"), "")

		env.contains(env.run("import", "orphan.txt", "-p"), "3 imported")
	})

	t.Run("directory skips hidden", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("in/a.txt", "a\n")
		env.write("in/.hidden/b.txt", "b\n")

		env.contains(env.run("import", "in"), "1 imported")
		env.contains(env.run("import", "in", "--include-hidden"), "1 imported, 0 updated, 1 unchanged")
	})

	t.Run("dry run", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("deps.yaml", depsYAML)

		env.run("import", "deps.yaml", "--dry-run")
		env.equals(env.run("ls", "--paths-only"), "")
	})

	t.Run("json", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("deps.yaml", depsYAML)

		var r map[string]any
		require.NoError(t, json.Unmarshal([]byte(env.stdout("import", "deps.yaml", "-o", "json")), &r))
		assert.EqualValues(t, 3, r["imported"])
	})
}

func TestExport(t *testing.T) {
	t.Run("stdout text", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "deps")
		env.run("add", "deps|compile", "-d", "Compile classpath")

		env.equals(env.stdout("export"), "deps\ndeps|compile\tCompile classpath")
	})

	t.Run("file round trip", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("deps.yaml", depsYAML)
		env.run("import", "deps.yaml")

		env.contains(env.run("export", "deps", "-f", "out/deps.toml"), "Exported 3 entries")
		assert.FileExists(t, filepath.Join(env.dir, "out", "deps.toml"))

		other := newTestEnv(t)
		data, err := os.ReadFile(filepath.Join(env.dir, "out", "deps.toml"))
		require.NoError(t, err)
		other.write("deps.toml", string(data))
		other.contains(other.run("import", "deps.toml"), "3 imported")
		other.equals(other.run("diff", "deps.toml"), "No differences")
	})

	t.Run("refuses overwrite", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "deps")
		env.write("deps.txt", "old\n")

		out, err := env.runErr("export", "-f", "deps.txt")
		assert.Error(t, err)
		env.contains(out, "--force")

		env.run("export", "-f", "deps.txt", "--force")
	})
}

func TestSync(t *testing.T) {
	t.Run("mirrors file", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "deps|compile", "-p")
		env.run("add", "deps|legacy|old", "-p")
		env.write("deps.txt", "deps\ndeps|compile\ndeps|runtime\n")

		env.contains(env.run("sync", "deps.txt"), "1 imported, 0 updated, 2 removed")
		env.equals(env.run("ls", "--paths-only", "--sort"), "deps\ndeps|compile\ndeps|runtime")
	})

	t.Run("scoped to path", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "deps|compile", "-p")
		env.run("add", "tasks")
		env.write("deps.txt", "deps|runtime\n")

		env.contains(env.run("sync", "deps.txt", "--path", "deps"), "1 removed")
		env.equals(env.run("ls", "--paths-only", "--sort"), "deps\ndeps|runtime\ntasks")
	})

	t.Run("dry run", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "stale")
		env.write("empty.txt", "# nothing\n")

		env.contains(env.run("sync", "empty.txt", "--dry-run"), "Would remove: stale")
		env.equals(env.run("ls", "--paths-only"), "stale")
	})
}

func TestHistory(t *testing.T) {
	env := newTestEnv(t)
	env.run("add", "deps")
	_, err := env.runErr("add", "deps")
	require.Error(t, err)

	out := env.run("history")
	env.contains(out, "catalog:add")
	env.contains(out, "tester")

	failed := env.run("history", "--failed")
	env.contains(failed, "FAILED")
	assert.NotContains(t, failed, "  ok  ")

	env.contains(env.run("history", "deps", "-n", "1"), "deps")
}

func TestVacuum(t *testing.T) {
	env := newTestEnv(t)
	env.run("add", "a")

	env.contains(env.run("vacuum", "--dry-run"), "Would reclaim")
	assert.Regexp(t, `^(Nothing to reclaim|Reclaimed .+)\n$`, env.run("vacuum"))
}
