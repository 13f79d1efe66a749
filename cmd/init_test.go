package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	env := newBareEnv(t)

	out := env.run("init")
	env.contains(out, "Initialised seaside catalog")

	assert.FileExists(t, filepath.Join(env.dir, ".seaside", "seaside.db"))
	// init never writes configuration; "seaside config" owns that file.
	assert.NoFileExists(t, filepath.Join(env.dir, ".seaside", "config.yaml"))
}

func TestInit_AlreadyInitialised(t *testing.T) {
	env := newBareEnv(t)
	env.run("init")

	out, err := env.runErr("init")
	assert.Error(t, err)
	env.contains(out, "already exists")
}

func TestInit_Force(t *testing.T) {
	env := newTestEnv(t)
	env.run("add", "deps")

	env.run("init", "--force")

	out := env.run("ls")
	assert.NotContains(t, out, "deps")
}

func TestInit_NamedDatabase(t *testing.T) {
	env := newBareEnv(t)

	env.run("init", "--db", "gradle")
	assert.FileExists(t, filepath.Join(env.dir, ".seaside", "seaside-gradle.db"))

	env.run("config", "author.name", "tester")
	env.run("add", "plugins", "--db", "gradle")

	// The default database does not exist, so plain commands fail.
	_, err := env.runErr("ls")
	assert.Error(t, err)

	env.setenv("SEASIDE_DB", "gradle")
	env.contains(env.run("ls"), "plugins")
}

func TestInit_Local(t *testing.T) {
	env := newBareEnv(t)

	env.run("init", "--local")

	data, err := os.ReadFile(filepath.Join(env.dir, ".seaside", ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "seaside.db")
}

func TestInit_Dir(t *testing.T) {
	env := newBareEnv(t)
	target := t.TempDir()

	env.run("init", "--dir", target)
	assert.FileExists(t, filepath.Join(target, ".seaside", "seaside.db"))
	assert.NoDirExists(t, filepath.Join(env.dir, ".seaside"))

	env.run("config", "author.name", "tester")
	env.run("add", "remote", "--dir", target)
	env.contains(env.run("ls", "--dir", target), "remote")
}

func TestInit_DirAndLocalIncompatible(t *testing.T) {
	env := newBareEnv(t)

	out, err := env.runErr("init", "--dir", t.TempDir(), "--local")
	assert.Error(t, err)
	env.contains(out, "cannot use --local with --dir")
}

func TestUninitialised(t *testing.T) {
	env := newBareEnv(t)
	env.run("config", "author.name", "tester")

	_, err := env.runErr("ls")
	assert.Error(t, err)

	// Commands that need no catalog still work.
	env.run("guide")
	env.run("version")
}
