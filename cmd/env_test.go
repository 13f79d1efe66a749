// The cmd tests build the seaside binary once and drive it as a user would:
// command parsing, extension wiring, the catalog service and SQLite all run
// for real. Package tests under internal/ cover the pieces in isolation.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the seaside binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "seaside-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "seaside"
		if os.PathSeparator == '\\' {
			binaryName = "seaside.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv is a working directory plus a private HOME, so global config and
// the audit log never touch the real user's files.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	env    []string
}

// newBareEnv creates an environment without a catalog.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   home,
		binary: buildBinary(t),
		env:    append(os.Environ(), "HOME="+home, "USERPROFILE="+home, "NO_COLOR=1", "SEASIDE_DB=", "SEASIDE_DIR="),
	}
}

// newTestEnv creates an environment with an initialised catalog and a
// configured author.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newBareEnv(t)
	env.run("init")
	env.run("config", "author.name", "tester")
	return env
}

// run executes seaside with the given args and returns combined output,
// failing the test on a non-zero exit.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("seaside %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes seaside and returns its output and exit error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// stdout executes seaside and returns stdout only, for JSON parsing.
func (e *testEnv) stdout(args ...string) string {
	e.t.Helper()
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	out, err := cmd.Output()
	if err != nil {
		e.t.Fatalf("seaside %v failed: %v", args, err)
	}
	return string(out)
}

// write creates a file relative to the working directory.
func (e *testEnv) write(name, content string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		e.t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		e.t.Fatal(err)
	}
	return p
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// setenv overrides an environment variable for later runs.
func (e *testEnv) setenv(key, value string) {
	e.env = append(e.env, key+"="+value)
}
