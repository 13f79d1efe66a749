// Package exporter writes catalog entries to YAML, TOML or text files that
// the importer can read back.
package exporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/importer"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/report"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/tree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures an export operation.
type Options struct {
	Format importer.Format // "" detects from the file name, text for stdout
	Force  bool            // overwrite an existing file
}

// Result contains the outcome of an export operation.
type Result struct {
	Exported int    `json:"exported"`
	File     string `json:"file,omitempty"` // empty when written to the writer
}

// Write encodes entries in format f. Descriptions equal to the path are
// omitted so a round trip does not invent descriptions.
func Write(w io.Writer, f importer.Format, entries []report.Entry) error {
	records := make([]importer.Record, len(entries))
	for i, e := range entries {
		records[i] = importer.Record{Path: e.Path.String(), Description: e.Description}
		if records[i].Description == records[i].Path {
			records[i].Description = ""
		}
	}

	switch f {
	case importer.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(importer.File{Entries: records}); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case importer.TOML:
		if err := toml.NewEncoder(w).Encode(importer.File{Entries: records}); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case importer.Text, "":
		bw := bufio.NewWriter(w)
		for _, r := range records {
			bw.WriteString(r.Path)
			if r.Description != "" {
				bw.WriteString("\t" + strings.ReplaceAll(r.Description, "\n", " "))
			}
			bw.WriteByte('\n')
		}
		return bw.Flush()
	default:
		return fmt.Errorf("%w: %q", importer.ErrUnknownFormat, f)
	}
}

// Run exports root and its descendants, or the whole catalog for the zero
// Path, to dst. An empty dst or "-" writes to w.
func Run(ctx context.Context, w io.Writer, svc service.Service, root tree.Path, dst string, opts Options) (Result, error) {
	var result Result

	entries, err := svc.List(ctx, root)
	if err != nil {
		return result, err
	}
	if len(entries) == 0 && !root.IsZero() {
		return result, fmt.Errorf("no entries found under %s", root)
	}
	out := make([]report.Entry, len(entries))
	for i, e := range entries {
		out[i] = report.Entry{Path: e.Path, Description: e.Description}
	}

	f := opts.Format
	if dst == "" || dst == "-" {
		if f == "" {
			f = importer.Text
		}
		if err := Write(w, f, out); err != nil {
			return result, err
		}
		result.Exported = len(out)
		return result, nil
	}
	if f == "" {
		f = importer.Detect(dst)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return result, fmt.Errorf("creating directory: %w", err)
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.Force {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(dst, flags, 0644)
	if os.IsExist(err) {
		return result, fmt.Errorf("file exists: %s (use --force to overwrite)", dst)
	}
	if err != nil {
		return result, fmt.Errorf("creating file %s: %w", dst, err)
	}

	if err := Write(file, f, out); err != nil {
		file.Close()
		return result, err
	}
	if err := file.Close(); err != nil {
		return result, err
	}

	result.Exported = len(out)
	result.File = dst
	fmt.Fprintf(w, "Exported %d entries -> %s\n", len(out), dst)
	return result, nil
}
