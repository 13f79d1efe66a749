// format.go decodes entry files.
//
// Three encodings carry the same flat entry list:
//
//	# entries.yaml
//	entries:
//	  - path: deps|compile
//	    description: Compile classpath
//
//	# entries.toml
//	[[entries]]
//	path = "deps|compile"
//	description = "Compile classpath"
//
//	# entries.txt: one path per line, optional tab and description
//	deps|compile	Compile classpath
//
// Order inside a file does not matter; Run attaches parents first.

package importer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names an entry file encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
	Text Format = "text"
)

// ErrUnknownFormat is returned for a --format value that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// Record is one entry as written in a file.
type Record struct {
	Path        string `yaml:"path" toml:"path" json:"path"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
}

// File is the document root of YAML and TOML entry files.
type File struct {
	Entries []Record `yaml:"entries" toml:"entries" json:"entries"`
}

// Detect picks a format from a file name. Unrecognised extensions are text.
func Detect(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return Text
	}
}

// ParseFormat validates a format name. "" means detect from the file name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", YAML, TOML, Text:
		return f, nil
	case "yml":
		return YAML, nil
	case "txt":
		return Text, nil
	default:
		return "", fmt.Errorf("%w: %q (use yaml, toml or text)", ErrUnknownFormat, s)
	}
}

// Read decodes entries from r. Every path is parsed; the first malformed
// path fails the whole read with its position.
func Read(r io.Reader, f Format) ([]report.Entry, error) {
	var records []Record
	switch f {
	case YAML, TOML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		var file File
		if f == YAML {
			err = yaml.Unmarshal(data, &file)
		} else {
			err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&file)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", f, err)
		}
		records = file.Entries
	case Text, "":
		var err error
		if records, err = readText(r); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	entries := make([]report.Entry, 0, len(records))
	for i, rec := range records {
		p, err := tree.ParsePath(strings.TrimSpace(rec.Path))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		entries = append(entries, report.Entry{Path: p, Description: rec.Description})
	}
	return entries, nil
}

// readText parses the line format. Blank lines and lines starting with #
// are skipped.
func readText(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		path, desc, _ := strings.Cut(s, "\t")
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("line %d: %w: empty path", line, tree.ErrMalformedPath)
		}
		out = append(out, Record{Path: path, Description: strings.TrimSpace(desc)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return out, nil
}

// ReadFile decodes an entry file, detecting the format from its name unless
// f is set.
func ReadFile(name string, f Format) ([]report.Entry, error) {
	if f == "" {
		f = Detect(name)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	entries, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}
