// repo_gitignore.go keeps local databases out of version control.
//
// Shared catalogs are committed with the project; local ones are listed in
// .seaside/.gitignore under a marker header. Existing lines and formatting
// are preserved so hand edits survive.

package repo

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const localDBHeader = "# Local databases (not committed)"

func gitignorePath(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = DiscoverDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, ".gitignore"), nil
}

func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines, nil
}

// IgnoreDB marks a database as local. A missing .gitignore is created.
func IgnoreDB(name, dir string) error {
	gitignore, err := gitignorePath(dir)
	if err != nil {
		return err
	}
	file := DBFileName(name)

	content, err := os.ReadFile(gitignore)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	s := string(content)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	if slices.Contains(lines, file) {
		return nil
	}

	if !slices.Contains(lines, localDBHeader) {
		if s != "" && !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		s += "\n" + localDBHeader + "\n"
	}
	s += file + "\n"
	return os.WriteFile(gitignore, []byte(s), 0644)
}

// UnignoreDB marks a database as shared. The local header is dropped once no
// local databases remain below it.
func UnignoreDB(name, dir string) error {
	gitignore, err := gitignorePath(dir)
	if err != nil {
		return err
	}
	file := DBFileName(name)

	content, err := os.ReadFile(gitignore)
	if err != nil {
		return err
	}

	var out []string
	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) != file {
			out = append(out, l)
		}
	}

	result := strings.Join(out, "\n")
	if idx := strings.Index(result, localDBHeader); idx != -1 {
		rest := strings.TrimSpace(result[idx+len(localDBHeader):])
		if !strings.Contains(rest, ".db") {
			result = strings.TrimRight(result[:idx], "\n") + "\n"
		}
	}
	return os.WriteFile(gitignore, []byte(result), 0644)
}

// IsIgnored reports whether a database is listed as local.
func IsIgnored(name, dir string) (bool, error) {
	gitignore, err := gitignorePath(dir)
	if err != nil {
		return false, err
	}
	lines, err := readLines(gitignore)
	if err != nil {
		return false, err
	}
	return slices.Contains(lines, DBFileName(name)), nil
}
